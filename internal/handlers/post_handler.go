package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/yunqiuxu/unswtalk/internal/dto"
	"github.com/yunqiuxu/unswtalk/internal/feed"
	"github.com/yunqiuxu/unswtalk/internal/identity"
	"github.com/yunqiuxu/unswtalk/internal/services"
	"github.com/yunqiuxu/unswtalk/internal/social"
	"github.com/yunqiuxu/unswtalk/internal/store"
)

type PostHandler struct {
	contentService *services.ContentService
	assembler      *feed.Assembler
	socialService  *social.Service
}

func NewPostHandler(contentService *services.ContentService, assembler *feed.Assembler, socialService *social.Service) *PostHandler {
	return &PostHandler{
		contentService: contentService,
		assembler:      assembler,
		socialService:  socialService,
	}
}

// Feed handles GET /students/:zid/feed — the student's own posts merged
// with their friends', newest first, with page index ranges attached.
func (h *PostHandler) Feed(c *fiber.Ctx) error {
	zid := c.Params("zid")

	authors, err := h.socialService.FriendsOf(zid)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	authors = append(authors, zid)

	posts, err := h.assembler.Feed(authors)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.JSON(dto.FeedResponse{
		Posts: posts,
		Pages: feed.PageIndex(len(posts)),
	})
}

func (h *PostHandler) CreatePost(c *fiber.Ctx) error {
	zid, err := identity.ZID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	post, err := h.contentService.CreatePost(zid, req.Message)
	if err != nil {
		if errors.Is(err, services.ErrEmptyMessage) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

func (h *PostHandler) DeletePost(c *fiber.Ctx) error {
	zid, err := identity.ZID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	id, err := parseID(c, "post_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid post id",
		})
	}

	if err := h.contentService.DeletePost(id, zid); err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.SendStatus(fiber.StatusOK)
}

// PostDetail handles GET /posts/:post_id — the post plus its comment
// threads with nested replies, conversation order.
func (h *PostHandler) PostDetail(c *fiber.Ctx) error {
	id, err := parseID(c, "post_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid post id",
		})
	}

	post, err := h.assembler.Post(id)
	if err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	comments, err := h.assembler.Comments(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	threads := make([]dto.CommentThread, 0, len(comments))
	for _, comment := range comments {
		replies, err := h.assembler.Replies(comment.ID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Internal server error",
			})
		}
		threads = append(threads, dto.CommentThread{Comment: comment, Replies: replies})
	}

	return c.JSON(dto.PostDetailResponse{Post: *post, Comments: threads})
}

func (h *PostHandler) CreateComment(c *fiber.Ctx) error {
	zid, err := identity.ZID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	postID, err := parseID(c, "post_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid post id",
		})
	}

	var req dto.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	comment, err := h.contentService.CreateComment(postID, zid, req.Message)
	if err != nil {
		if errors.Is(err, services.ErrEmptyMessage) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		if errors.Is(err, store.ErrPostNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

func (h *PostHandler) DeleteComment(c *fiber.Ctx) error {
	zid, err := identity.ZID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	id, err := parseID(c, "comment_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid comment id",
		})
	}

	if err := h.contentService.DeleteComment(id, zid); err != nil {
		if errors.Is(err, store.ErrCommentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.SendStatus(fiber.StatusOK)
}

func (h *PostHandler) CreateReply(c *fiber.Ctx) error {
	zid, err := identity.ZID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	commentID, err := parseID(c, "comment_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid comment id",
		})
	}

	var req dto.CreateReplyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	reply, err := h.contentService.CreateReply(commentID, zid, req.Message)
	if err != nil {
		if errors.Is(err, services.ErrEmptyMessage) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(reply)
}

func (h *PostHandler) DeleteReply(c *fiber.Ctx) error {
	zid, err := identity.ZID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	id, err := parseID(c, "reply_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid reply id",
		})
	}

	if err := h.contentService.DeleteReply(id, zid); err != nil {
		if errors.Is(err, store.ErrReplyNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.SendStatus(fiber.StatusOK)
}

func parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(param), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
