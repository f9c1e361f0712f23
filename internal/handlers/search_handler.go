package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/yunqiuxu/unswtalk/internal/dto"
	"github.com/yunqiuxu/unswtalk/internal/feed"
)

type SearchHandler struct {
	assembler *feed.Assembler
}

func NewSearchHandler(assembler *feed.Assembler) *SearchHandler {
	return &SearchHandler{assembler: assembler}
}

// Search handles GET /search?q=. Matches students by name or exact zid
// and posts by message substring.
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	keyword := strings.TrimSpace(c.Query("q"))
	if keyword == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Missing search keyword",
		})
	}

	students, posts, err := h.assembler.Search(keyword)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.JSON(dto.SearchResponse{
		Students: students,
		Posts:    posts,
		Pages:    feed.PageIndex(len(posts)),
	})
}
