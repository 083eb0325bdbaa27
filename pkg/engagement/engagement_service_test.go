package engagement

import (
	"context"
	"testing"

	"plateful/domain"
	"plateful/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockEngagementRepository struct {
	mock.Mock
}

func (m *MockEngagementRepository) ToggleLike(ctx context.Context, userID, recipeID string) (bool, error) {
	args := m.Called(ctx, userID, recipeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockEngagementRepository) ToggleSave(ctx context.Context, userID, recipeID string) (bool, error) {
	args := m.Called(ctx, userID, recipeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockEngagementRepository) IsLiked(ctx context.Context, userID, recipeID string) (bool, error) {
	args := m.Called(ctx, userID, recipeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockEngagementRepository) IsSaved(ctx context.Context, userID, recipeID string) (bool, error) {
	args := m.Called(ctx, userID, recipeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockEngagementRepository) CountLikes(ctx context.Context, recipeID string) (int64, error) {
	args := m.Called(ctx, recipeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEngagementRepository) CreateComment(ctx context.Context, comment *entities.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockEngagementRepository) GetCommentByID(ctx context.Context, id string) (*entities.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Comment), args.Error(1)
}

func (m *MockEngagementRepository) DeleteComment(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEngagementRepository) GetComments(ctx context.Context, recipeID string) ([]*entities.Comment, error) {
	args := m.Called(ctx, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Comment), args.Error(1)
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

func TestToggleLike_RecipeNotFound(t *testing.T) {
	engagementRepo := new(MockEngagementRepository)
	recipeRepo := new(MockRecipeRepository)
	service := NewEngagementService(engagementRepo, recipeRepo)

	recipeID := uuid.NewString()
	recipeRepo.On("GetRecipeByID", mock.Anything, recipeID).Return(nil, gorm.ErrRecordNotFound)

	_, err := service.ToggleLike(context.Background(), domain.ToggleLikeRequest{RecipeID: recipeID}, uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
	engagementRepo.AssertNotCalled(t, "ToggleLike", mock.Anything, mock.Anything, mock.Anything)
}

func TestToggleLike_ReturnsNewStateAndCount(t *testing.T) {
	engagementRepo := new(MockEngagementRepository)
	recipeRepo := new(MockRecipeRepository)
	service := NewEngagementService(engagementRepo, recipeRepo)

	recipeID := uuid.NewString()
	userID := uuid.NewString()

	recipeRepo.On("GetRecipeByID", mock.Anything, recipeID).Return(&entities.Recipe{}, nil)
	engagementRepo.On("ToggleLike", mock.Anything, userID, recipeID).Return(true, nil)
	engagementRepo.On("CountLikes", mock.Anything, recipeID).Return(int64(4), nil)

	res, err := service.ToggleLike(context.Background(), domain.ToggleLikeRequest{RecipeID: recipeID}, userID)

	assert.NoError(t, err)
	assert.True(t, res.Liked)
	assert.Equal(t, int64(4), res.LikesCount)
}

func TestToggleSave_ReturnsNewState(t *testing.T) {
	engagementRepo := new(MockEngagementRepository)
	recipeRepo := new(MockRecipeRepository)
	service := NewEngagementService(engagementRepo, recipeRepo)

	recipeID := uuid.NewString()
	userID := uuid.NewString()

	recipeRepo.On("GetRecipeByID", mock.Anything, recipeID).Return(&entities.Recipe{}, nil)
	engagementRepo.On("ToggleSave", mock.Anything, userID, recipeID).Return(false, nil)

	res, err := service.ToggleSave(context.Background(), domain.ToggleSaveRequest{RecipeID: recipeID}, userID)

	assert.NoError(t, err)
	assert.False(t, res.Saved)
}

func TestAddComment_EmptyContent(t *testing.T) {
	engagementRepo := new(MockEngagementRepository)
	recipeRepo := new(MockRecipeRepository)
	service := NewEngagementService(engagementRepo, recipeRepo)

	_, err := service.AddComment(context.Background(), domain.AddCommentRequest{
		RecipeID: uuid.NewString(),
		Content:  "   ",
	}, uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrCommentEmpty)
	recipeRepo.AssertNotCalled(t, "GetRecipeByID", mock.Anything, mock.Anything)
}

func TestAddComment_Success(t *testing.T) {
	engagementRepo := new(MockEngagementRepository)
	recipeRepo := new(MockRecipeRepository)
	service := NewEngagementService(engagementRepo, recipeRepo)

	recipeID := uuid.NewString()
	userID := uuid.NewString()

	recipeRepo.On("GetRecipeByID", mock.Anything, recipeID).Return(&entities.Recipe{}, nil)
	engagementRepo.On("CreateComment", mock.Anything, mock.AnythingOfType("*entities.Comment")).Return(nil)

	res, err := service.AddComment(context.Background(), domain.AddCommentRequest{
		RecipeID: recipeID,
		Content:  "  looks delicious  ",
	}, userID)

	assert.NoError(t, err)
	assert.Equal(t, "looks delicious", res.Content)
	assert.Equal(t, recipeID, res.RecipeID)
}

func TestDeleteComment_NotOwner(t *testing.T) {
	engagementRepo := new(MockEngagementRepository)
	recipeRepo := new(MockRecipeRepository)
	service := NewEngagementService(engagementRepo, recipeRepo)

	commentID := uuid.NewString()
	owner := uuid.New()

	engagementRepo.On("GetCommentByID", mock.Anything, commentID).Return(&entities.Comment{
		ID:     uuid.New(),
		UserID: owner,
	}, nil)

	err := service.DeleteComment(context.Background(), commentID, uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrNotCommentOwner)
	engagementRepo.AssertNotCalled(t, "DeleteComment", mock.Anything, mock.Anything)
}

func TestDeleteComment_Success(t *testing.T) {
	engagementRepo := new(MockEngagementRepository)
	recipeRepo := new(MockRecipeRepository)
	service := NewEngagementService(engagementRepo, recipeRepo)

	commentID := uuid.NewString()
	owner := uuid.New()

	engagementRepo.On("GetCommentByID", mock.Anything, commentID).Return(&entities.Comment{
		ID:     uuid.New(),
		UserID: owner,
	}, nil)
	engagementRepo.On("DeleteComment", mock.Anything, commentID).Return(nil)

	err := service.DeleteComment(context.Background(), commentID, owner.String())

	assert.NoError(t, err)
	engagementRepo.AssertExpectations(t)
}

func TestDeleteComment_NotFound(t *testing.T) {
	engagementRepo := new(MockEngagementRepository)
	recipeRepo := new(MockRecipeRepository)
	service := NewEngagementService(engagementRepo, recipeRepo)

	commentID := uuid.NewString()
	engagementRepo.On("GetCommentByID", mock.Anything, commentID).Return(nil, gorm.ErrRecordNotFound)

	err := service.DeleteComment(context.Background(), commentID, uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrCommentNotFound)
}

func TestGetComments_IncludesAuthor(t *testing.T) {
	engagementRepo := new(MockEngagementRepository)
	recipeRepo := new(MockRecipeRepository)
	service := NewEngagementService(engagementRepo, recipeRepo)

	recipeID := uuid.New()
	author := &entities.User{ID: uuid.New(), Username: "testcook"}

	engagementRepo.On("GetComments", mock.Anything, recipeID.String()).Return([]*entities.Comment{
		{ID: uuid.New(), RecipeID: recipeID, UserID: author.ID, Content: "nice", User: author},
	}, nil)

	res, err := service.GetComments(context.Background(), recipeID.String())

	assert.NoError(t, err)
	assert.Len(t, res, 1)
	assert.NotNil(t, res[0].Author)
	assert.Equal(t, "testcook", res[0].Author.Username)
}
