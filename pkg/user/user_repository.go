package user

import (
	"context"
	"plateful/entities"

	"gorm.io/gorm"
)

type (
	UserRepository interface {
		CreateUser(ctx context.Context, user *entities.User) error
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
		GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
		GetUserByUsername(ctx context.Context, username string) (*entities.User, error)
		UpdateUser(ctx context.Context, user *entities.User) error
		SearchUsers(ctx context.Context, query string, limit int) ([]*UserWithStats, error)
		GetUsersWithStats(ctx context.Context, limit int) ([]*UserWithStats, error)
	}

	// UserWithStats is the scan target for listings that attach aggregate
	// recipe and follower counts in a single grouped query.
	UserWithStats struct {
		entities.User
		RecipeCount   int64
		FollowerCount int64
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) statsQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&entities.User{}).
		Select("users.*, COUNT(DISTINCT recipes.id) AS recipe_count, COUNT(DISTINCT follows.id) AS follower_count").
		Joins("LEFT JOIN recipes ON recipes.user_id = users.id").
		Joins("LEFT JOIN follows ON follows.following_id = users.id").
		Group("users.id")
}

func (r *userRepository) SearchUsers(ctx context.Context, query string, limit int) ([]*UserWithStats, error) {
	var users []*UserWithStats
	pattern := "%" + query + "%"

	if err := r.statsQuery(ctx).
		Where("users.username ILIKE ? OR users.full_name ILIKE ?", pattern, pattern).
		Limit(limit).
		Scan(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}

func (r *userRepository) GetUsersWithStats(ctx context.Context, limit int) ([]*UserWithStats, error) {
	var users []*UserWithStats

	if err := r.statsQuery(ctx).
		Limit(limit).
		Scan(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}
