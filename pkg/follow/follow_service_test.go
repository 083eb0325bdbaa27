package follow

import (
	"context"
	"testing"

	"plateful/domain"
	"plateful/entities"
	"plateful/pkg/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockFollowRepository struct {
	mock.Mock
}

func (m *MockFollowRepository) ToggleFollow(ctx context.Context, followerID, followingID string) (bool, error) {
	args := m.Called(ctx, followerID, followingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFollowRepository) IsFollowing(ctx context.Context, followerID, followingID string) (bool, error) {
	args := m.Called(ctx, followerID, followingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFollowRepository) CountFollowers(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFollowRepository) CountFollowing(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFollowRepository) GetFollowers(ctx context.Context, userID string) ([]*entities.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.User), args.Error(1)
}

func (m *MockFollowRepository) GetFollowing(ctx context.Context, userID string) ([]*entities.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.User), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, u *entities.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, u *entities.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) SearchUsers(ctx context.Context, query string, limit int) ([]*user.UserWithStats, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*user.UserWithStats), args.Error(1)
}

func (m *MockUserRepository) GetUsersWithStats(ctx context.Context, limit int) ([]*user.UserWithStats, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*user.UserWithStats), args.Error(1)
}

func TestToggleFollow_SelfFollow(t *testing.T) {
	followRepo := new(MockFollowRepository)
	userRepo := new(MockUserRepository)
	service := NewFollowService(followRepo, userRepo)

	userID := uuid.NewString()

	_, err := service.ToggleFollow(context.Background(), domain.ToggleFollowRequest{FollowingID: userID}, userID)

	assert.ErrorIs(t, err, domain.ErrSelfFollow)
	followRepo.AssertNotCalled(t, "ToggleFollow", mock.Anything, mock.Anything, mock.Anything)
}

func TestToggleFollow_TargetMissing(t *testing.T) {
	followRepo := new(MockFollowRepository)
	userRepo := new(MockUserRepository)
	service := NewFollowService(followRepo, userRepo)

	targetID := uuid.NewString()
	userRepo.On("GetUserByID", mock.Anything, targetID).Return(nil, gorm.ErrRecordNotFound)

	_, err := service.ToggleFollow(context.Background(), domain.ToggleFollowRequest{FollowingID: targetID}, uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestToggleFollow_Success(t *testing.T) {
	followRepo := new(MockFollowRepository)
	userRepo := new(MockUserRepository)
	service := NewFollowService(followRepo, userRepo)

	userID := uuid.NewString()
	targetID := uuid.NewString()

	userRepo.On("GetUserByID", mock.Anything, targetID).Return(&entities.User{ID: uuid.New()}, nil)
	followRepo.On("ToggleFollow", mock.Anything, userID, targetID).Return(true, nil)

	res, err := service.ToggleFollow(context.Background(), domain.ToggleFollowRequest{FollowingID: targetID}, userID)

	assert.NoError(t, err)
	assert.True(t, res.Following)
}

func TestGetFollowStats(t *testing.T) {
	followRepo := new(MockFollowRepository)
	userRepo := new(MockUserRepository)
	service := NewFollowService(followRepo, userRepo)

	targetID := uuid.NewString()
	followRepo.On("CountFollowers", mock.Anything, targetID).Return(int64(12), nil)
	followRepo.On("CountFollowing", mock.Anything, targetID).Return(int64(5), nil)

	res, err := service.GetFollowStats(context.Background(), targetID)

	assert.NoError(t, err)
	assert.Equal(t, int64(12), res.Followers)
	assert.Equal(t, int64(5), res.Following)
}

func TestGetFollowers_MapsProfiles(t *testing.T) {
	followRepo := new(MockFollowRepository)
	userRepo := new(MockUserRepository)
	service := NewFollowService(followRepo, userRepo)

	targetID := uuid.NewString()
	followRepo.On("GetFollowers", mock.Anything, targetID).Return([]*entities.User{
		{ID: uuid.New(), Username: "alice"},
		{ID: uuid.New(), Username: "bob"},
	}, nil)

	res, err := service.GetFollowers(context.Background(), targetID)

	assert.NoError(t, err)
	assert.Len(t, res, 2)
	assert.Equal(t, "alice", res[0].Username)
}
