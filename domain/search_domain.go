package domain

var (
	MessageSuccessSearchRecipes      = "recipes search completed successfully"
	MessageSuccessSearchByIngredient = "ingredient search completed successfully"
	MessageSuccessGetTrending        = "trending recipes retrieved successfully"

	MessageFailedSearchRecipes      = "failed to search recipes"
	MessageFailedSearchByIngredient = "failed to search recipes by ingredient"
	MessageFailedGetTrending        = "failed to retrieve trending recipes"
)

type (
	SearchRecipesRequest struct {
		Query       string `json:"query" validate:"omitempty,max=100"`
		Difficulty  string `json:"difficulty" validate:"omitempty,oneof=Easy Medium Hard all"`
		MinCookTime int    `json:"min_cook_time" validate:"omitempty,min=0"`
		MaxCookTime int    `json:"max_cook_time" validate:"omitempty,min=0"`
	}
)
