// Package feed merges, orders and annotates posts, comments and replies
// for display, and runs keyword search over students and posts.
package feed

import (
	"sort"

	"github.com/yunqiuxu/unswtalk/internal/models"
)

// FeedStore is the slice of the record store the assembler reads from.
type FeedStore interface {
	PostsBy(zid string) ([]models.Post, error)
	PostByID(id uint) (*models.Post, error)
	CommentsFor(postID uint) ([]models.Comment, error)
	RepliesFor(commentID uint) ([]models.Reply, error)
	Profile(zid string) (*models.Student, error)
	IsSuspended(zid string) (bool, error)
	SearchStudents(keyword string) ([]models.Student, error)
	SearchPosts(keyword string) ([]models.Post, error)
}

// Post is a display-ready post: author metadata attached, message
// transformed, timestamp reformatted.
type Post struct {
	ID         uint   `json:"id"`
	ZID        string `json:"zid"`
	FullName   string `json:"full_name"`
	ProfileImg string `json:"profile_img"`
	Time       string `json:"time"`
	Message    string `json:"message"`
}

type Comment struct {
	ID         uint   `json:"id"`
	PostID     uint   `json:"post_id"`
	ZID        string `json:"zid"`
	FullName   string `json:"full_name"`
	ProfileImg string `json:"profile_img"`
	Time       string `json:"time"`
	Message    string `json:"message"`
}

type Reply struct {
	ID         uint   `json:"id"`
	CommentID  uint   `json:"comment_id"`
	ZID        string `json:"zid"`
	FullName   string `json:"full_name"`
	ProfileImg string `json:"profile_img"`
	Time       string `json:"time"`
	Message    string `json:"message"`
}

// Person is a search hit on a student.
type Person struct {
	ZID        string `json:"zid"`
	FullName   string `json:"full_name"`
	ProfileImg string `json:"profile_img"`
}

type Assembler struct {
	store FeedStore
}

func NewAssembler(store FeedStore) *Assembler {
	return &Assembler{store: store}
}

// Feed collects every post authored by a non-suspended zid in the input,
// newest first.
func (a *Assembler) Feed(zids []string) ([]Post, error) {
	var raw []models.Post
	for _, zid := range zids {
		suspended, err := a.store.IsSuspended(zid)
		if err != nil {
			return nil, err
		}
		if suspended {
			continue
		}
		posts, err := a.store.PostsBy(zid)
		if err != nil {
			return nil, err
		}
		raw = append(raw, posts...)
	}

	sort.SliceStable(raw, func(i, j int) bool {
		return raw[i].Time > raw[j].Time
	})

	return a.annotatePosts(raw)
}

// Post fetches and annotates a single post. A missing id is a typed error,
// not an absence value: callers always hold an id they just read.
func (a *Assembler) Post(id uint) (*Post, error) {
	raw, err := a.store.PostByID(id)
	if err != nil {
		return nil, err
	}
	annotated, err := a.annotatePosts([]models.Post{*raw})
	if err != nil {
		return nil, err
	}
	return &annotated[0], nil
}

// Comments returns a post's comments in conversation order, earliest
// first — the reverse of the feed ordering.
func (a *Assembler) Comments(postID uint) ([]Comment, error) {
	raw, err := a.store.CommentsFor(postID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(raw, func(i, j int) bool {
		return raw[i].Time < raw[j].Time
	})

	results := make([]Comment, 0, len(raw))
	for _, c := range raw {
		profile, err := a.store.Profile(c.ZID)
		if err != nil {
			return nil, err
		}
		results = append(results, Comment{
			ID:         c.ID,
			PostID:     c.PostID,
			ZID:        c.ZID,
			FullName:   profile.FullName,
			ProfileImg: profile.ProfileImg,
			Time:       TransformTime(c.Time),
			Message:    a.TransformMessage(c.Message),
		})
	}
	return results, nil
}

// Replies returns a comment's replies, earliest first.
func (a *Assembler) Replies(commentID uint) ([]Reply, error) {
	raw, err := a.store.RepliesFor(commentID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(raw, func(i, j int) bool {
		return raw[i].Time < raw[j].Time
	})

	results := make([]Reply, 0, len(raw))
	for _, r := range raw {
		profile, err := a.store.Profile(r.ZID)
		if err != nil {
			return nil, err
		}
		results = append(results, Reply{
			ID:         r.ID,
			CommentID:  r.CommentID,
			ZID:        r.ZID,
			FullName:   profile.FullName,
			ProfileImg: profile.ProfileImg,
			Time:       TransformTime(r.Time),
			Message:    a.TransformMessage(r.Message),
		})
	}
	return results, nil
}

// Search matches students by name substring or exact zid and posts by
// message substring, both with suspended accounts hidden. Posts come back
// newest first, like a feed.
func (a *Assembler) Search(keyword string) ([]Person, []Post, error) {
	students, err := a.store.SearchStudents(keyword)
	if err != nil {
		return nil, nil, err
	}
	people := make([]Person, 0, len(students))
	for _, s := range students {
		suspended, err := a.store.IsSuspended(s.ZID)
		if err != nil {
			return nil, nil, err
		}
		if suspended {
			continue
		}
		people = append(people, Person{
			ZID:        s.ZID,
			FullName:   s.FullName,
			ProfileImg: s.ProfileImg,
		})
	}

	rawPosts, err := a.store.SearchPosts(keyword)
	if err != nil {
		return nil, nil, err
	}
	visible := make([]models.Post, 0, len(rawPosts))
	for _, p := range rawPosts {
		suspended, err := a.store.IsSuspended(p.ZID)
		if err != nil {
			return nil, nil, err
		}
		if !suspended {
			visible = append(visible, p)
		}
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].Time > visible[j].Time
	})

	posts, err := a.annotatePosts(visible)
	if err != nil {
		return nil, nil, err
	}
	return people, posts, nil
}

func (a *Assembler) annotatePosts(raw []models.Post) ([]Post, error) {
	results := make([]Post, 0, len(raw))
	for _, p := range raw {
		profile, err := a.store.Profile(p.ZID)
		if err != nil {
			return nil, err
		}
		results = append(results, Post{
			ID:         p.ID,
			ZID:        p.ZID,
			FullName:   profile.FullName,
			ProfileImg: profile.ProfileImg,
			Time:       TransformTime(p.Time),
			Message:    a.TransformMessage(p.Message),
		})
	}
	return results, nil
}
