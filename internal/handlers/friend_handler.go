package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/yunqiuxu/unswtalk/internal/dto"
	"github.com/yunqiuxu/unswtalk/internal/identity"
	"github.com/yunqiuxu/unswtalk/internal/services"
	"github.com/yunqiuxu/unswtalk/internal/store"
)

type FriendHandler struct {
	friendService *services.FriendService
}

func NewFriendHandler(friendService *services.FriendService) *FriendHandler {
	return &FriendHandler{friendService: friendService}
}

// ListFriends handles GET /students/:zid/friends.
func (h *FriendHandler) ListFriends(c *fiber.Ctx) error {
	zid := c.Params("zid")

	friends, err := h.friendService.Friends(zid)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(dto.FriendListResponse{Friends: friends})
}

// Suggestions handles GET /me/suggestions. Suggestions are personal,
// so only the authenticated student can see their own.
func (h *FriendHandler) Suggestions(c *fiber.Ctx) error {
	zid, err := identity.ZID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	suggestions, err := h.friendService.Suggestions(zid)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(dto.SuggestionsResponse{Suggestions: suggestions})
}

func (h *FriendHandler) AddFriend(c *fiber.Ctx) error {
	zid, err := identity.ZID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	friendZID := c.Params("zid")
	if err := h.friendService.Add(zid, friendZID); err != nil {
		if errors.Is(err, services.ErrSelfFriend) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		if errors.Is(err, store.ErrStudentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.SendStatus(fiber.StatusCreated)
}

func (h *FriendHandler) RemoveFriend(c *fiber.Ctx) error {
	zid, err := identity.ZID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	friendZID := c.Params("zid")
	if err := h.friendService.Remove(zid, friendZID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.SendStatus(fiber.StatusOK)
}
