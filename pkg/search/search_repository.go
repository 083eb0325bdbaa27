package search

import (
	"context"
	"plateful/domain"
	"plateful/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	SearchRepository interface {
		SearchRecipes(ctx context.Context, req domain.SearchRecipesRequest) ([]*entities.Recipe, error)
		FindRecipeIDsByIngredient(ctx context.Context, ingredient string) ([]uuid.UUID, error)
		GetRecipesByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Recipe, error)
		GetRecentRecipes(ctx context.Context, limit int) ([]*entities.Recipe, error)
	}

	searchRepository struct {
		db *gorm.DB
	}
)

func NewSearchRepository(db *gorm.DB) SearchRepository {
	return &searchRepository{db: db}
}

func (r *searchRepository) SearchRecipes(ctx context.Context, req domain.SearchRecipesRequest) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe

	query := r.db.WithContext(ctx).Preload("User")

	if req.Query != "" {
		pattern := "%" + req.Query + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	if req.Difficulty != "" && req.Difficulty != "all" {
		query = query.Where("difficulty = ?", req.Difficulty)
	}

	if req.MinCookTime > 0 {
		query = query.Where("cook_time >= ?", req.MinCookTime)
	}
	if req.MaxCookTime > 0 {
		query = query.Where("cook_time <= ?", req.MaxCookTime)
	}

	if err := query.Order("created_at desc").Find(&recipes).Error; err != nil {
		return nil, err
	}

	return recipes, nil
}

func (r *searchRepository) FindRecipeIDsByIngredient(ctx context.Context, ingredient string) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&entities.Ingredient{}).
		Distinct("recipe_id").
		Where("item ILIKE ?", "%"+ingredient+"%").
		Pluck("recipe_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *searchRepository) GetRecipesByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if len(ids) == 0 {
		return recipes, nil
	}

	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("id IN ?", ids).
		Order("created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *searchRepository) GetRecentRecipes(ctx context.Context, limit int) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("User").
		Order("created_at desc").
		Limit(limit).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}
