package recipe

import (
	"context"
	"errors"

	"plateful/domain"
	"plateful/entities"
	"plateful/internal/utils/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.CreateRecipeResponse, error)
		GetRecipes(ctx context.Context) ([]domain.RecipeCard, error)
		GetRecipeByID(ctx context.Context, recipeID string) (domain.RecipeDetail, error)
		GetSavedRecipes(ctx context.Context, userID string) ([]domain.RecipeCard, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		s3               storage.AwsS3
	}
)

func NewRecipeService(recipeRepository RecipeRepository, s3 storage.AwsS3) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		s3:               s3,
	}
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.CreateRecipeResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.CreateRecipeResponse{}, domain.ErrParseUUID
	}

	imageURL := ""
	if req.Image != nil {
		key := s.s3.ObjectKey(userID, req.Image.Filename)
		url, err := s.s3.UploadFile(ctx, req.Image, key)
		if err != nil {
			return domain.CreateRecipeResponse{}, domain.ErrUploadImageFailed
		}
		imageURL = url
	}

	recipe := entities.Recipe{
		ID:          uuid.New(),
		UserID:      userUUID,
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    imageURL,
		PrepTime:    req.PrepTime,
		CookTime:    req.CookTime,
		Servings:    req.Servings,
		Difficulty:  req.Difficulty,
	}

	ingredients := make([]*entities.Ingredient, 0, len(req.Ingredients))
	for i, ingredient := range req.Ingredients {
		ingredients = append(ingredients, &entities.Ingredient{
			ID:         uuid.New(),
			Item:       ingredient.Item,
			Quantity:   ingredient.Quantity,
			OrderIndex: i,
		})
	}

	instructions := make([]*entities.Instruction, 0, len(req.Instructions))
	for i, description := range req.Instructions {
		instructions = append(instructions, &entities.Instruction{
			ID:          uuid.New(),
			StepNumber:  i + 1,
			Description: description,
		})
	}

	if err := s.recipeRepository.CreateRecipe(ctx, &recipe, ingredients, instructions); err != nil {
		return domain.CreateRecipeResponse{}, err
	}

	return domain.CreateRecipeResponse{RecipeID: recipe.ID.String()}, nil
}

// ToRecipeCard converts a recipe row plus its like count into the listing
// shape shared by the feed, search, and trending responses.
func ToRecipeCard(recipe *entities.Recipe, likesCount int64) domain.RecipeCard {
	card := domain.RecipeCard{
		ID:          recipe.ID.String(),
		Title:       recipe.Title,
		Description: recipe.Description,
		ImageURL:    recipe.ImageURL,
		PrepTime:    recipe.PrepTime,
		CookTime:    recipe.CookTime,
		Servings:    recipe.Servings,
		Difficulty:  recipe.Difficulty,
		LikesCount:  likesCount,
		CreatedAt:   recipe.CreatedAt,
	}
	if recipe.User != nil {
		card.Author = &domain.UserProfile{
			ID:        recipe.User.ID.String(),
			Username:  recipe.User.Username,
			FullName:  recipe.User.FullName,
			AvatarURL: recipe.User.AvatarURL,
			Bio:       recipe.User.Bio,
			CreatedAt: recipe.User.CreatedAt,
		}
	}
	return card
}

func (s *recipeService) toCards(ctx context.Context, recipes []*entities.Recipe) ([]domain.RecipeCard, error) {
	ids := make([]uuid.UUID, 0, len(recipes))
	for _, recipe := range recipes {
		ids = append(ids, recipe.ID)
	}

	counts, err := s.recipeRepository.LikeCountsByRecipeIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	cards := make([]domain.RecipeCard, 0, len(recipes))
	for _, recipe := range recipes {
		cards = append(cards, ToRecipeCard(recipe, counts[recipe.ID]))
	}
	return cards, nil
}

func (s *recipeService) GetRecipes(ctx context.Context) ([]domain.RecipeCard, error) {
	recipes, err := s.recipeRepository.GetRecipes(ctx)
	if err != nil {
		return nil, err
	}
	return s.toCards(ctx, recipes)
}

func (s *recipeService) GetRecipeByID(ctx context.Context, recipeID string) (domain.RecipeDetail, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeDetail{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeDetail{}, err
	}

	counts, err := s.recipeRepository.LikeCountsByRecipeIDs(ctx, []uuid.UUID{recipe.ID})
	if err != nil {
		return domain.RecipeDetail{}, err
	}

	detail := domain.RecipeDetail{
		RecipeCard: ToRecipeCard(recipe, counts[recipe.ID]),
	}

	detail.Ingredients = make([]domain.RecipeIngredient, 0, len(recipe.Ingredients))
	for _, ingredient := range recipe.Ingredients {
		detail.Ingredients = append(detail.Ingredients, domain.RecipeIngredient{
			Item:       ingredient.Item,
			Quantity:   ingredient.Quantity,
			OrderIndex: ingredient.OrderIndex,
		})
	}

	detail.Instructions = make([]domain.RecipeInstruction, 0, len(recipe.Instructions))
	for _, instruction := range recipe.Instructions {
		detail.Instructions = append(detail.Instructions, domain.RecipeInstruction{
			StepNumber:  instruction.StepNumber,
			Description: instruction.Description,
		})
	}

	return detail, nil
}

func (s *recipeService) GetSavedRecipes(ctx context.Context, userID string) ([]domain.RecipeCard, error) {
	recipes, err := s.recipeRepository.GetSavedRecipes(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.toCards(ctx, recipes)
}
