package handlers

import (
	"errors"

	"plateful/domain"
	"plateful/internal/api/presenters"
	"plateful/pkg/follow"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FollowHandler interface {
		ToggleFollow(c *fiber.Ctx) error
		IsFollowing(c *fiber.Ctx) error
		GetFollowStats(c *fiber.Ctx) error
		GetFollowers(c *fiber.Ctx) error
		GetFollowing(c *fiber.Ctx) error
	}

	followHandler struct {
		followService follow.FollowService
		validator     *validator.Validate
	}
)

func NewFollowHandler(followService follow.FollowService, validator *validator.Validate) FollowHandler {
	return &followHandler{
		followService: followService,
		validator:     validator,
	}
}

func (h *followHandler) ToggleFollow(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.ToggleFollowRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedToggleFollow, err)
	}

	res, err := h.followService.ToggleFollow(c.Context(), *req, userID)
	if err != nil {
		code := fiber.StatusBadRequest
		if errors.Is(err, domain.ErrUserNotFound) {
			code = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, code, domain.MessageFailedToggleFollow, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessToggleFollow)
}

func (h *followHandler) IsFollowing(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	targetID := c.Params("id")

	following, err := h.followService.IsFollowing(c.Context(), targetID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedToggleFollow, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"following": following}, fiber.StatusOK, domain.MessageSuccessToggleFollow)
}

func (h *followHandler) GetFollowStats(c *fiber.Ctx) error {
	targetID := c.Params("id")

	res, err := h.followService.GetFollowStats(c.Context(), targetID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFollowers, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFollowers)
}

func (h *followHandler) GetFollowers(c *fiber.Ctx) error {
	targetID := c.Params("id")

	res, err := h.followService.GetFollowers(c.Context(), targetID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFollowers, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFollowers)
}

func (h *followHandler) GetFollowing(c *fiber.Ctx) error {
	targetID := c.Params("id")

	res, err := h.followService.GetFollowing(c.Context(), targetID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFollowing, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFollowing)
}
