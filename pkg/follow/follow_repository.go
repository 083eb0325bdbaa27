package follow

import (
	"context"
	"errors"
	"plateful/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FollowRepository interface {
		ToggleFollow(ctx context.Context, followerID, followingID string) (bool, error)
		IsFollowing(ctx context.Context, followerID, followingID string) (bool, error)
		CountFollowers(ctx context.Context, userID string) (int64, error)
		CountFollowing(ctx context.Context, userID string) (int64, error)
		GetFollowers(ctx context.Context, userID string) ([]*entities.User, error)
		GetFollowing(ctx context.Context, userID string) ([]*entities.User, error)
	}

	followRepository struct {
		db *gorm.DB
	}
)

func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

// ToggleFollow flips the follow row for the pair inside a transaction; the
// unique pair index backs it up under concurrent toggles.
func (r *followRepository) ToggleFollow(ctx context.Context, followerID, followingID string) (bool, error) {
	followerUUID, err := uuid.Parse(followerID)
	if err != nil {
		return false, err
	}
	followingUUID, err := uuid.Parse(followingID)
	if err != nil {
		return false, err
	}

	var following bool
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing entities.Follow
		err := tx.Where("follower_id = ? AND following_id = ?", followerUUID, followingUUID).First(&existing).Error
		if err == nil {
			following = false
			return tx.Delete(&existing).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		following = true
		return tx.Create(&entities.Follow{
			ID:          uuid.New(),
			FollowerID:  followerUUID,
			FollowingID: followingUUID,
		}).Error
	})
	if err != nil {
		return false, err
	}

	return following, nil
}

func (r *followRepository) IsFollowing(ctx context.Context, followerID, followingID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Follow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *followRepository) CountFollowers(ctx context.Context, userID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Follow{}).
		Where("following_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *followRepository) CountFollowing(ctx context.Context, userID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Follow{}).
		Where("follower_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *followRepository) GetFollowers(ctx context.Context, userID string) ([]*entities.User, error) {
	var users []*entities.User
	if err := r.db.WithContext(ctx).
		Joins("JOIN follows ON follows.follower_id = users.id").
		Where("follows.following_id = ?", userID).
		Order("follows.created_at desc").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *followRepository) GetFollowing(ctx context.Context, userID string) ([]*entities.User, error) {
	var users []*entities.User
	if err := r.db.WithContext(ctx).
		Joins("JOIN follows ON follows.following_id = users.id").
		Where("follows.follower_id = ?", userID).
		Order("follows.created_at desc").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
