package handlers

import (
	"errors"

	"plateful/domain"
	"plateful/internal/api/presenters"
	"plateful/pkg/engagement"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	EngagementHandler interface {
		ToggleLike(c *fiber.Ctx) error
		ToggleSave(c *fiber.Ctx) error
		GetLikeStatus(c *fiber.Ctx) error
		GetSaveStatus(c *fiber.Ctx) error
		AddComment(c *fiber.Ctx) error
		DeleteComment(c *fiber.Ctx) error
		GetComments(c *fiber.Ctx) error
	}

	engagementHandler struct {
		engagementService engagement.EngagementService
		validator         *validator.Validate
	}
)

func NewEngagementHandler(engagementService engagement.EngagementService, validator *validator.Validate) EngagementHandler {
	return &engagementHandler{
		engagementService: engagementService,
		validator:         validator,
	}
}

func (h *engagementHandler) ToggleLike(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.ToggleLikeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedToggleLike, err)
	}

	res, err := h.engagementService.ToggleLike(c.Context(), *req, userID)
	if err != nil {
		code := fiber.StatusBadRequest
		if errors.Is(err, domain.ErrRecipeNotFound) {
			code = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, code, domain.MessageFailedToggleLike, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessToggleLike)
}

func (h *engagementHandler) ToggleSave(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.ToggleSaveRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedToggleSave, err)
	}

	res, err := h.engagementService.ToggleSave(c.Context(), *req, userID)
	if err != nil {
		code := fiber.StatusBadRequest
		if errors.Is(err, domain.ErrRecipeNotFound) {
			code = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, code, domain.MessageFailedToggleSave, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessToggleSave)
}

func (h *engagementHandler) GetLikeStatus(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	recipeID := c.Params("id")

	liked, err := h.engagementService.IsLiked(c.Context(), recipeID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedToggleLike, err)
	}

	count, err := h.engagementService.GetLikesCount(c.Context(), recipeID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedToggleLike, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"liked":       liked,
		"likes_count": count,
	}, fiber.StatusOK, domain.MessageSuccessToggleLike)
}

func (h *engagementHandler) GetSaveStatus(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	recipeID := c.Params("id")

	saved, err := h.engagementService.IsSaved(c.Context(), recipeID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedToggleSave, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"saved": saved}, fiber.StatusOK, domain.MessageSuccessToggleSave)
}

func (h *engagementHandler) AddComment(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddCommentRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddComment, err)
	}

	res, err := h.engagementService.AddComment(c.Context(), *req, userID)
	if err != nil {
		code := fiber.StatusBadRequest
		if errors.Is(err, domain.ErrRecipeNotFound) {
			code = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, code, domain.MessageFailedAddComment, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddComment)
}

func (h *engagementHandler) DeleteComment(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	commentID := c.Params("id")

	if err := h.engagementService.DeleteComment(c.Context(), commentID, userID); err != nil {
		code := fiber.StatusBadRequest
		switch {
		case errors.Is(err, domain.ErrCommentNotFound):
			code = fiber.StatusNotFound
		case errors.Is(err, domain.ErrNotCommentOwner):
			code = fiber.StatusForbidden
		}
		return presenters.ErrorResponse(c, code, domain.MessageFailedDeleteComment, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteComment)
}

func (h *engagementHandler) GetComments(c *fiber.Ctx) error {
	recipeID := c.Params("id")

	res, err := h.engagementService.GetComments(c.Context(), recipeID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetComments, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetComments)
}
