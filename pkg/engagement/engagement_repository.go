package engagement

import (
	"context"
	"errors"
	"plateful/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	EngagementRepository interface {
		ToggleLike(ctx context.Context, userID, recipeID string) (bool, error)
		ToggleSave(ctx context.Context, userID, recipeID string) (bool, error)
		IsLiked(ctx context.Context, userID, recipeID string) (bool, error)
		IsSaved(ctx context.Context, userID, recipeID string) (bool, error)
		CountLikes(ctx context.Context, recipeID string) (int64, error)
		CreateComment(ctx context.Context, comment *entities.Comment) error
		GetCommentByID(ctx context.Context, id string) (*entities.Comment, error)
		DeleteComment(ctx context.Context, id string) error
		GetComments(ctx context.Context, recipeID string) ([]*entities.Comment, error)
	}

	engagementRepository struct {
		db *gorm.DB
	}
)

func NewEngagementRepository(db *gorm.DB) EngagementRepository {
	return &engagementRepository{db: db}
}

// ToggleLike flips the like row for the (user, recipe) pair inside a
// transaction. The unique pair index keeps a concurrent toggle from inserting
// a duplicate.
func (r *engagementRepository) ToggleLike(ctx context.Context, userID, recipeID string) (bool, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return false, err
	}
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return false, err
	}

	var liked bool
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing entities.Like
		err := tx.Where("user_id = ? AND recipe_id = ?", userUUID, recipeUUID).First(&existing).Error
		if err == nil {
			liked = false
			return tx.Delete(&existing).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		liked = true
		return tx.Create(&entities.Like{
			ID:       uuid.New(),
			UserID:   userUUID,
			RecipeID: recipeUUID,
		}).Error
	})
	if err != nil {
		return false, err
	}

	return liked, nil
}

func (r *engagementRepository) ToggleSave(ctx context.Context, userID, recipeID string) (bool, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return false, err
	}
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return false, err
	}

	var saved bool
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing entities.SavedRecipe
		err := tx.Where("user_id = ? AND recipe_id = ?", userUUID, recipeUUID).First(&existing).Error
		if err == nil {
			saved = false
			return tx.Delete(&existing).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		saved = true
		return tx.Create(&entities.SavedRecipe{
			ID:       uuid.New(),
			UserID:   userUUID,
			RecipeID: recipeUUID,
		}).Error
	})
	if err != nil {
		return false, err
	}

	return saved, nil
}

func (r *engagementRepository) IsLiked(ctx context.Context, userID, recipeID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Like{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *engagementRepository) IsSaved(ctx context.Context, userID, recipeID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.SavedRecipe{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *engagementRepository) CountLikes(ctx context.Context, recipeID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Like{}).
		Where("recipe_id = ?", recipeID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *engagementRepository) CreateComment(ctx context.Context, comment *entities.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Preload("User").First(comment, "id = ?", comment.ID).Error
}

func (r *engagementRepository) GetCommentByID(ctx context.Context, id string) (*entities.Comment, error) {
	var comment entities.Comment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *engagementRepository) DeleteComment(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Comment{}).Error
}

func (r *engagementRepository) GetComments(ctx context.Context, recipeID string) ([]*entities.Comment, error) {
	var comments []*entities.Comment
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("recipe_id = ?", recipeID).
		Order("created_at desc").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}
