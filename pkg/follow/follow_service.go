package follow

import (
	"context"
	"errors"

	"plateful/domain"
	"plateful/entities"
	"plateful/pkg/user"

	"gorm.io/gorm"
)

type (
	FollowService interface {
		ToggleFollow(ctx context.Context, req domain.ToggleFollowRequest, userID string) (domain.ToggleFollowResponse, error)
		IsFollowing(ctx context.Context, followingID, userID string) (bool, error)
		GetFollowStats(ctx context.Context, targetID string) (domain.FollowStats, error)
		GetFollowers(ctx context.Context, targetID string) ([]domain.UserProfile, error)
		GetFollowing(ctx context.Context, targetID string) ([]domain.UserProfile, error)
	}

	followService struct {
		followRepository FollowRepository
		userRepository   user.UserRepository
	}
)

func NewFollowService(followRepository FollowRepository, userRepository user.UserRepository) FollowService {
	return &followService{
		followRepository: followRepository,
		userRepository:   userRepository,
	}
}

func (s *followService) ToggleFollow(ctx context.Context, req domain.ToggleFollowRequest, userID string) (domain.ToggleFollowResponse, error) {
	if req.FollowingID == userID {
		return domain.ToggleFollowResponse{}, domain.ErrSelfFollow
	}

	if _, err := s.userRepository.GetUserByID(ctx, req.FollowingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ToggleFollowResponse{}, domain.ErrUserNotFound
		}
		return domain.ToggleFollowResponse{}, err
	}

	following, err := s.followRepository.ToggleFollow(ctx, userID, req.FollowingID)
	if err != nil {
		return domain.ToggleFollowResponse{}, err
	}

	return domain.ToggleFollowResponse{Following: following}, nil
}

func (s *followService) IsFollowing(ctx context.Context, followingID, userID string) (bool, error) {
	return s.followRepository.IsFollowing(ctx, userID, followingID)
}

func (s *followService) GetFollowStats(ctx context.Context, targetID string) (domain.FollowStats, error) {
	followers, err := s.followRepository.CountFollowers(ctx, targetID)
	if err != nil {
		return domain.FollowStats{}, err
	}

	following, err := s.followRepository.CountFollowing(ctx, targetID)
	if err != nil {
		return domain.FollowStats{}, err
	}

	return domain.FollowStats{Followers: followers, Following: following}, nil
}

func toProfiles(users []*entities.User) []domain.UserProfile {
	profiles := make([]domain.UserProfile, 0, len(users))
	for _, u := range users {
		profiles = append(profiles, domain.UserProfile{
			ID:        u.ID.String(),
			Username:  u.Username,
			FullName:  u.FullName,
			AvatarURL: u.AvatarURL,
			Bio:       u.Bio,
			CreatedAt: u.CreatedAt,
		})
	}
	return profiles
}

func (s *followService) GetFollowers(ctx context.Context, targetID string) ([]domain.UserProfile, error) {
	users, err := s.followRepository.GetFollowers(ctx, targetID)
	if err != nil {
		return nil, err
	}
	return toProfiles(users), nil
}

func (s *followService) GetFollowing(ctx context.Context, targetID string) ([]domain.UserProfile, error) {
	users, err := s.followRepository.GetFollowing(ctx, targetID)
	if err != nil {
		return nil, err
	}
	return toProfiles(users), nil
}
