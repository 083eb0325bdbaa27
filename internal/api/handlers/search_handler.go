package handlers

import (
	"strconv"

	"plateful/domain"
	"plateful/internal/api/presenters"
	"plateful/pkg/search"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	SearchHandler interface {
		SearchRecipes(c *fiber.Ctx) error
		SearchRecipesByIngredient(c *fiber.Ctx) error
		GetTrendingRecipes(c *fiber.Ctx) error
	}

	searchHandler struct {
		searchService search.SearchService
		validator     *validator.Validate
	}
)

func NewSearchHandler(searchService search.SearchService, validator *validator.Validate) SearchHandler {
	return &searchHandler{
		searchService: searchService,
		validator:     validator,
	}
}

func (h *searchHandler) SearchRecipes(c *fiber.Ctx) error {
	req := domain.SearchRecipesRequest{
		Query:      c.Query("query", ""),
		Difficulty: c.Query("difficulty", ""),
	}

	if minCookTime, err := strconv.Atoi(c.Query("min_cook_time", "0")); err == nil && minCookTime > 0 {
		req.MinCookTime = minCookTime
	}
	if maxCookTime, err := strconv.Atoi(c.Query("max_cook_time", "0")); err == nil && maxCookTime > 0 {
		req.MaxCookTime = maxCookTime
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSearchRecipes, err)
	}

	res, err := h.searchService.SearchRecipes(c.Context(), req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSearchRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSearchRecipes)
}

func (h *searchHandler) SearchRecipesByIngredient(c *fiber.Ctx) error {
	ingredient := c.Query("ingredient", "")

	res, err := h.searchService.SearchRecipesByIngredient(c.Context(), ingredient)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSearchByIngredient, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSearchByIngredient)
}

func (h *searchHandler) GetTrendingRecipes(c *fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Query("limit", "12"))
	if err != nil || limit < 1 {
		limit = 12
	}

	res, err := h.searchService.GetTrendingRecipes(c.Context(), limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetTrending, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetTrending)
}
