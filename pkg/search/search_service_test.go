package search

import (
	"context"
	"testing"

	"plateful/domain"
	"plateful/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockSearchRepository struct {
	mock.Mock
}

func (m *MockSearchRepository) SearchRecipes(ctx context.Context, req domain.SearchRecipesRequest) ([]*entities.Recipe, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Recipe), args.Error(1)
}

func (m *MockSearchRepository) FindRecipeIDsByIngredient(ctx context.Context, ingredient string) ([]uuid.UUID, error) {
	args := m.Called(ctx, ingredient)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockSearchRepository) GetRecipesByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Recipe, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Recipe), args.Error(1)
}

func (m *MockSearchRepository) GetRecentRecipes(ctx context.Context, limit int) ([]*entities.Recipe, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Recipe), args.Error(1)
}

type MockRecipeRepository struct {
	mock.Mock
}

func (m *MockRecipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe, ingredients []*entities.Ingredient, instructions []*entities.Instruction) error {
	args := m.Called(ctx, recipe, ingredients, instructions)
	return args.Error(0)
}

func (m *MockRecipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) GetRecipes(ctx context.Context) ([]*entities.Recipe, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) GetSavedRecipes(ctx context.Context, userID string) ([]*entities.Recipe, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) LikeCountsByRecipeIDs(ctx context.Context, recipeIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	args := m.Called(ctx, recipeIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]int64), args.Error(1)
}

func TestSearchRecipes_PassesFilters(t *testing.T) {
	searchRepo := new(MockSearchRepository)
	recipeRepo := new(MockRecipeRepository)
	service := NewSearchService(searchRepo, recipeRepo)

	req := domain.SearchRecipesRequest{Query: "ramen", Difficulty: "Medium", MaxCookTime: 60}
	found := []*entities.Recipe{{ID: uuid.New(), Title: "Spicy Ramen", Difficulty: "Medium"}}

	searchRepo.On("SearchRecipes", mock.Anything, req).Return(found, nil)
	recipeRepo.On("LikeCountsByRecipeIDs", mock.Anything, mock.Anything).
		Return(map[uuid.UUID]int64{}, nil)

	res, err := service.SearchRecipes(context.Background(), req)

	assert.NoError(t, err)
	assert.Len(t, res, 1)
	assert.Equal(t, "Spicy Ramen", res[0].Title)
	searchRepo.AssertExpectations(t)
}

func TestSearchRecipesByIngredient_NoMatches(t *testing.T) {
	searchRepo := new(MockSearchRepository)
	recipeRepo := new(MockRecipeRepository)
	service := NewSearchService(searchRepo, recipeRepo)

	searchRepo.On("FindRecipeIDsByIngredient", mock.Anything, "durian").Return([]uuid.UUID{}, nil)
	searchRepo.On("GetRecipesByIDs", mock.Anything, []uuid.UUID{}).Return([]*entities.Recipe{}, nil)
	recipeRepo.On("LikeCountsByRecipeIDs", mock.Anything, mock.Anything).
		Return(map[uuid.UUID]int64{}, nil)

	res, err := service.SearchRecipesByIngredient(context.Background(), "durian")

	assert.NoError(t, err)
	assert.Empty(t, res)
}

func TestGetTrendingRecipes_RanksByLikes(t *testing.T) {
	searchRepo := new(MockSearchRepository)
	recipeRepo := new(MockRecipeRepository)
	service := NewSearchService(searchRepo, recipeRepo)

	quiet := &entities.Recipe{ID: uuid.New(), Title: "Quiet Salad"}
	popular := &entities.Recipe{ID: uuid.New(), Title: "Popular Pasta"}
	middling := &entities.Recipe{ID: uuid.New(), Title: "Middling Soup"}

	searchRepo.On("GetRecentRecipes", mock.Anything, trendingWindow).
		Return([]*entities.Recipe{quiet, popular, middling}, nil)
	recipeRepo.On("LikeCountsByRecipeIDs", mock.Anything, mock.Anything).
		Return(map[uuid.UUID]int64{popular.ID: 10, middling.ID: 4, quiet.ID: 1}, nil)

	res, err := service.GetTrendingRecipes(context.Background(), 2)

	assert.NoError(t, err)
	assert.Len(t, res, 2)
	assert.Equal(t, "Popular Pasta", res[0].Title)
	assert.Equal(t, "Middling Soup", res[1].Title)
}

func TestGetTrendingRecipes_LimitLargerThanWindow(t *testing.T) {
	searchRepo := new(MockSearchRepository)
	recipeRepo := new(MockRecipeRepository)
	service := NewSearchService(searchRepo, recipeRepo)

	only := &entities.Recipe{ID: uuid.New(), Title: "Only Dish"}
	searchRepo.On("GetRecentRecipes", mock.Anything, trendingWindow).
		Return([]*entities.Recipe{only}, nil)
	recipeRepo.On("LikeCountsByRecipeIDs", mock.Anything, mock.Anything).
		Return(map[uuid.UUID]int64{}, nil)

	res, err := service.GetTrendingRecipes(context.Background(), 100)

	assert.NoError(t, err)
	assert.Len(t, res, 1)
}
