package search

import (
	"context"
	"sort"

	"plateful/domain"
	"plateful/entities"
	"plateful/pkg/recipe"

	"github.com/google/uuid"
)

// trendingWindow is how many of the most recent recipes are considered when
// ranking by likes, so "trending" is most-liked-among-recent rather than an
// all-time ranking.
const trendingWindow = 50

type (
	SearchService interface {
		SearchRecipes(ctx context.Context, req domain.SearchRecipesRequest) ([]domain.RecipeCard, error)
		SearchRecipesByIngredient(ctx context.Context, ingredient string) ([]domain.RecipeCard, error)
		GetTrendingRecipes(ctx context.Context, limit int) ([]domain.RecipeCard, error)
	}

	searchService struct {
		searchRepository SearchRepository
		recipeRepository recipe.RecipeRepository
	}
)

func NewSearchService(searchRepository SearchRepository, recipeRepository recipe.RecipeRepository) SearchService {
	return &searchService{
		searchRepository: searchRepository,
		recipeRepository: recipeRepository,
	}
}

func (s *searchService) toCards(ctx context.Context, recipes []*entities.Recipe) ([]domain.RecipeCard, error) {
	ids := make([]uuid.UUID, 0, len(recipes))
	for _, rec := range recipes {
		ids = append(ids, rec.ID)
	}

	counts, err := s.recipeRepository.LikeCountsByRecipeIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	cards := make([]domain.RecipeCard, 0, len(recipes))
	for _, rec := range recipes {
		cards = append(cards, recipe.ToRecipeCard(rec, counts[rec.ID]))
	}
	return cards, nil
}

func (s *searchService) SearchRecipes(ctx context.Context, req domain.SearchRecipesRequest) ([]domain.RecipeCard, error) {
	recipes, err := s.searchRepository.SearchRecipes(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.toCards(ctx, recipes)
}

func (s *searchService) SearchRecipesByIngredient(ctx context.Context, ingredient string) ([]domain.RecipeCard, error) {
	ids, err := s.searchRepository.FindRecipeIDsByIngredient(ctx, ingredient)
	if err != nil {
		return nil, err
	}

	recipes, err := s.searchRepository.GetRecipesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return s.toCards(ctx, recipes)
}

func (s *searchService) GetTrendingRecipes(ctx context.Context, limit int) ([]domain.RecipeCard, error) {
	recipes, err := s.searchRepository.GetRecentRecipes(ctx, trendingWindow)
	if err != nil {
		return nil, err
	}

	cards, err := s.toCards(ctx, recipes)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(cards, func(i, j int) bool {
		return cards[i].LikesCount > cards[j].LikesCount
	})

	if limit > 0 && len(cards) > limit {
		cards = cards[:limit]
	}

	return cards, nil
}
