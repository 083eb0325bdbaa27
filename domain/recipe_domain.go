package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessCreateRecipe    = "recipe created successfully"
	MessageSuccessGetRecipes      = "recipes retrieved successfully"
	MessageSuccessGetRecipeDetail = "recipe detail retrieved successfully"
	MessageSuccessGetSavedRecipes = "saved recipes retrieved successfully"

	MessageFailedCreateRecipe    = "failed to create recipe"
	MessageFailedGetRecipes      = "failed to retrieve recipes"
	MessageFailedGetRecipeDetail = "failed to retrieve recipe detail"
	MessageFailedGetSavedRecipes = "failed to retrieve saved recipes"

	ErrRecipeNotFound    = errors.New("recipe not found")
	ErrUploadImageFailed = errors.New("failed to upload recipe image")
)

type (
	IngredientRequest struct {
		Item     string `json:"item" validate:"required"`
		Quantity string `json:"quantity" validate:"required"`
	}

	CreateRecipeRequest struct {
		Title        string                `json:"title" form:"title" validate:"required,min=3,max=100"`
		Description  string                `json:"description" form:"description" validate:"required,min=10,max=500"`
		PrepTime     int                   `json:"prep_time" form:"prep_time" validate:"required,min=1,max=1440"`
		CookTime     int                   `json:"cook_time" form:"cook_time" validate:"required,min=1,max=1440"`
		Servings     int                   `json:"servings" form:"servings" validate:"required,min=1,max=100"`
		Difficulty   string                `json:"difficulty" form:"difficulty" validate:"required,oneof=Easy Medium Hard"`
		Ingredients  []IngredientRequest   `json:"ingredients" validate:"required,min=1,dive"`
		Instructions []string              `json:"instructions" validate:"required,min=1,dive,required"`
		Image        *multipart.FileHeader `json:"image" form:"image"`
	}

	CreateRecipeResponse struct {
		RecipeID string `json:"recipe_id"`
	}

	// RecipeCard is the feed/search row: the recipe with its author and the
	// aggregate like count.
	RecipeCard struct {
		ID          string       `json:"id"`
		Title       string       `json:"title"`
		Description string       `json:"description"`
		ImageURL    string       `json:"image_url,omitempty"`
		PrepTime    int          `json:"prep_time"`
		CookTime    int          `json:"cook_time"`
		Servings    int          `json:"servings"`
		Difficulty  string       `json:"difficulty"`
		LikesCount  int64        `json:"likes_count"`
		CreatedAt   time.Time    `json:"created_at"`
		Author      *UserProfile `json:"author,omitempty"`
	}

	RecipeIngredient struct {
		Item       string `json:"item"`
		Quantity   string `json:"quantity"`
		OrderIndex int    `json:"order_index"`
	}

	RecipeInstruction struct {
		StepNumber  int    `json:"step_number"`
		Description string `json:"description"`
	}

	RecipeDetail struct {
		RecipeCard
		Ingredients  []RecipeIngredient  `json:"ingredients"`
		Instructions []RecipeInstruction `json:"instructions"`
	}
)
