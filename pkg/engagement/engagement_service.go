package engagement

import (
	"context"
	"errors"
	"strings"

	"plateful/domain"
	"plateful/entities"
	"plateful/pkg/recipe"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	EngagementService interface {
		ToggleLike(ctx context.Context, req domain.ToggleLikeRequest, userID string) (domain.ToggleLikeResponse, error)
		ToggleSave(ctx context.Context, req domain.ToggleSaveRequest, userID string) (domain.ToggleSaveResponse, error)
		IsLiked(ctx context.Context, recipeID, userID string) (bool, error)
		IsSaved(ctx context.Context, recipeID, userID string) (bool, error)
		GetLikesCount(ctx context.Context, recipeID string) (int64, error)
		AddComment(ctx context.Context, req domain.AddCommentRequest, userID string) (domain.CommentResponse, error)
		DeleteComment(ctx context.Context, commentID, userID string) error
		GetComments(ctx context.Context, recipeID string) ([]domain.CommentResponse, error)
	}

	engagementService struct {
		engagementRepository EngagementRepository
		recipeRepository     recipe.RecipeRepository
	}
)

func NewEngagementService(engagementRepository EngagementRepository, recipeRepository recipe.RecipeRepository) EngagementService {
	return &engagementService{
		engagementRepository: engagementRepository,
		recipeRepository:     recipeRepository,
	}
}

func (s *engagementService) ToggleLike(ctx context.Context, req domain.ToggleLikeRequest, userID string) (domain.ToggleLikeResponse, error) {
	if _, err := s.recipeRepository.GetRecipeByID(ctx, req.RecipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ToggleLikeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.ToggleLikeResponse{}, err
	}

	liked, err := s.engagementRepository.ToggleLike(ctx, userID, req.RecipeID)
	if err != nil {
		return domain.ToggleLikeResponse{}, err
	}

	count, err := s.engagementRepository.CountLikes(ctx, req.RecipeID)
	if err != nil {
		return domain.ToggleLikeResponse{}, err
	}

	return domain.ToggleLikeResponse{Liked: liked, LikesCount: count}, nil
}

func (s *engagementService) ToggleSave(ctx context.Context, req domain.ToggleSaveRequest, userID string) (domain.ToggleSaveResponse, error) {
	if _, err := s.recipeRepository.GetRecipeByID(ctx, req.RecipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ToggleSaveResponse{}, domain.ErrRecipeNotFound
		}
		return domain.ToggleSaveResponse{}, err
	}

	saved, err := s.engagementRepository.ToggleSave(ctx, userID, req.RecipeID)
	if err != nil {
		return domain.ToggleSaveResponse{}, err
	}

	return domain.ToggleSaveResponse{Saved: saved}, nil
}

func (s *engagementService) IsLiked(ctx context.Context, recipeID, userID string) (bool, error) {
	return s.engagementRepository.IsLiked(ctx, userID, recipeID)
}

func (s *engagementService) IsSaved(ctx context.Context, recipeID, userID string) (bool, error) {
	return s.engagementRepository.IsSaved(ctx, userID, recipeID)
}

func (s *engagementService) GetLikesCount(ctx context.Context, recipeID string) (int64, error) {
	return s.engagementRepository.CountLikes(ctx, recipeID)
}

func toCommentResponse(comment *entities.Comment) domain.CommentResponse {
	res := domain.CommentResponse{
		ID:        comment.ID.String(),
		RecipeID:  comment.RecipeID.String(),
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}
	if comment.User != nil {
		res.Author = &domain.UserProfile{
			ID:        comment.User.ID.String(),
			Username:  comment.User.Username,
			FullName:  comment.User.FullName,
			AvatarURL: comment.User.AvatarURL,
			CreatedAt: comment.User.CreatedAt,
		}
	}
	return res
}

func (s *engagementService) AddComment(ctx context.Context, req domain.AddCommentRequest, userID string) (domain.CommentResponse, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return domain.CommentResponse{}, domain.ErrCommentEmpty
	}

	if _, err := s.recipeRepository.GetRecipeByID(ctx, req.RecipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CommentResponse{}, domain.ErrRecipeNotFound
		}
		return domain.CommentResponse{}, err
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.CommentResponse{}, domain.ErrParseUUID
	}
	recipeUUID, err := uuid.Parse(req.RecipeID)
	if err != nil {
		return domain.CommentResponse{}, domain.ErrParseUUID
	}

	comment := entities.Comment{
		ID:       uuid.New(),
		RecipeID: recipeUUID,
		UserID:   userUUID,
		Content:  content,
	}

	if err := s.engagementRepository.CreateComment(ctx, &comment); err != nil {
		return domain.CommentResponse{}, err
	}

	return toCommentResponse(&comment), nil
}

func (s *engagementService) DeleteComment(ctx context.Context, commentID, userID string) error {
	comment, err := s.engagementRepository.GetCommentByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCommentNotFound
		}
		return err
	}

	if comment.UserID.String() != userID {
		return domain.ErrNotCommentOwner
	}

	return s.engagementRepository.DeleteComment(ctx, commentID)
}

func (s *engagementService) GetComments(ctx context.Context, recipeID string) ([]domain.CommentResponse, error) {
	comments, err := s.engagementRepository.GetComments(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		result = append(result, toCommentResponse(comment))
	}
	return result, nil
}
