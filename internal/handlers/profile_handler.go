package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/yunqiuxu/unswtalk/internal/dto"
	"github.com/yunqiuxu/unswtalk/internal/identity"
	"github.com/yunqiuxu/unswtalk/internal/media"
	"github.com/yunqiuxu/unswtalk/internal/services"
	"github.com/yunqiuxu/unswtalk/internal/store"
)

type ProfileHandler struct {
	accountService *services.AccountService
	media          *media.Storage
}

func NewProfileHandler(accountService *services.AccountService, media *media.Storage) *ProfileHandler {
	return &ProfileHandler{accountService: accountService, media: media}
}

// GetProfile handles GET /students/:zid — anyone logged in can view any
// active profile.
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	student, err := h.accountService.Profile(c.Params("zid"))
	if err != nil {
		if errors.Is(err, store.ErrStudentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(student)
}

// EditProfile handles PUT /me/profile. Only the caller's own profile is
// reachable; the zid comes from the token, never the body.
func (h *ProfileHandler) EditProfile(c *fiber.Ctx) error {
	zid, err := identity.ZID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.EditProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	student, err := h.accountService.EditProfile(zid, &req)
	if err != nil {
		if errors.Is(err, services.ErrWrongOldPassword) ||
			errors.Is(err, services.ErrInvalidPassword) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(student)
}

// UploadAvatar handles POST /me/avatar with multipart/form-data.
func (h *ProfileHandler) UploadAvatar(c *fiber.Ctx) error {
	zid, err := identity.ZID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	file, err := c.FormFile("avatar")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Avatar file is required",
		})
	}
	if !media.AllowedFile(file.Filename) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Only png, jpg, jpeg and gif files are allowed",
		})
	}

	if err := h.media.EnsureStudentDir(zid); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to store avatar",
		})
	}
	diskPath, relPath := h.media.Paths(zid, file.Filename)
	if err := c.SaveFile(file, diskPath); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to store avatar",
		})
	}

	if err := h.accountService.SetAvatar(zid, relPath); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(dto.AvatarResponse{ProfileImg: relPath})
}

// Suspend handles POST /me/suspend — self-service quarantine.
func (h *ProfileHandler) Suspend(c *fiber.Ctx) error {
	zid, err := identity.ZID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	if err := h.accountService.Suspend(zid); err != nil {
		if errors.Is(err, store.ErrStudentNotFound) {
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

// Activate handles POST /me/activate — undo a self-service suspension.
func (h *ProfileHandler) Activate(c *fiber.Ctx) error {
	zid, err := identity.ZID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	if err := h.accountService.Activate(zid); err != nil {
		if errors.Is(err, store.ErrNotSuspended) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.SendStatus(fiber.StatusOK)
}

// DeleteAccount handles DELETE /me — permanent, cascades everything the
// account owns.
func (h *ProfileHandler) DeleteAccount(c *fiber.Ctx) error {
	zid, err := identity.ZID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	if err := h.accountService.Delete(zid); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.SendStatus(fiber.StatusOK)
}
