package dto

import "github.com/yunqiuxu/unswtalk/internal/feed"

type CreatePostRequest struct {
	Message string `json:"message"`
}

type CreateCommentRequest struct {
	Message string `json:"message"`
}

type CreateReplyRequest struct {
	Message string `json:"message"`
}

type FeedResponse struct {
	Posts []feed.Post `json:"posts"`
	Pages [][]int     `json:"pages"`
}

// CommentThread is a comment with its replies nested in conversation
// order.
type CommentThread struct {
	feed.Comment
	Replies []feed.Reply `json:"replies"`
}

type PostDetailResponse struct {
	Post     feed.Post       `json:"post"`
	Comments []CommentThread `json:"comments"`
}

type SearchResponse struct {
	Students []feed.Person `json:"students"`
	Posts    []feed.Post   `json:"posts"`
	Pages    [][]int       `json:"pages"`
}
