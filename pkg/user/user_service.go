package user

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"

	"plateful/domain"
	"plateful/entities"
	"plateful/internal/utils/mailing"
	"plateful/internal/utils/storage"
	"plateful/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// popularUserWindow bounds how many profiles are considered when ranking by
// follower count.
const popularUserWindow = 50

const searchUserLimit = 20

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.UserProfile, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Me(ctx context.Context, userID string) (domain.UserProfile, error)
		UpdateUser(ctx context.Context, req domain.UpdateUserRequest, userID string) (domain.UserProfile, error)
		SearchUsers(ctx context.Context, query string) ([]domain.UserSummary, error)
		GetPopularUsers(ctx context.Context, limit int) ([]domain.UserSummary, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		s3             storage.AwsS3
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService, s3 storage.AwsS3) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		s3:             s3,
	}
}

func toUserProfile(user *entities.User) domain.UserProfile {
	return domain.UserProfile{
		ID:        user.ID.String(),
		Username:  user.Username,
		Email:     user.Email,
		FullName:  user.FullName,
		AvatarURL: user.AvatarURL,
		Bio:       user.Bio,
		CreatedAt: user.CreatedAt,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.UserProfile, error) {
	if _, err := s.userRepository.GetUserByUsername(ctx, req.Username); err == nil {
		return domain.UserProfile{}, domain.ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.UserProfile{}, err
	}

	if _, err := s.userRepository.GetUserByEmail(ctx, req.Email); err == nil {
		return domain.UserProfile{}, domain.ErrEmailAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.UserProfile{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.UserProfile{}, err
	}

	user := entities.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		AvatarURL:    fmt.Sprintf("https://api.dicebear.com/7.x/avataaars/svg?seed=%s", req.Username),
		Role:         domain.RoleUser,
	}

	if err := s.userRepository.CreateUser(ctx, &user); err != nil {
		return domain.UserProfile{}, err
	}

	go func() {
		body := fmt.Sprintf(
			"<p>Hi %s,</p><p>Welcome to Plateful! Your account is ready. Share your first recipe and start following other cooks.</p>",
			user.FullName,
		)
		if err := mailing.SendMail(user.Email, "Welcome to Plateful", body); err != nil {
			log.Printf("failed to send welcome mail to %s: %v", user.Email, err)
		}
	}()

	return toUserProfile(&user), nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrCredentialsInvalid
		}
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrCredentialsInvalid
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role)

	return domain.LoginResponse{
		Token: token,
		User:  toUserProfile(user),
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.UserProfile, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserProfile{}, domain.ErrUserNotFound
		}
		return domain.UserProfile{}, err
	}

	return toUserProfile(user), nil
}

func (s *userService) UpdateUser(ctx context.Context, req domain.UpdateUserRequest, userID string) (domain.UserProfile, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserProfile{}, domain.ErrUserNotFound
		}
		return domain.UserProfile{}, err
	}

	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if req.Bio != "" {
		user.Bio = req.Bio
	}
	if req.Avatar != nil {
		key := s.s3.ObjectKey(user.ID.String(), req.Avatar.Filename)
		url, err := s.s3.UploadFile(ctx, req.Avatar, key)
		if err != nil {
			return domain.UserProfile{}, domain.ErrUploadAvatarFailed
		}
		user.AvatarURL = url
	}

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return domain.UserProfile{}, err
	}

	return toUserProfile(user), nil
}

func toUserSummary(user *UserWithStats) domain.UserSummary {
	return domain.UserSummary{
		ID:            user.ID.String(),
		Username:      user.Username,
		FullName:      user.FullName,
		AvatarURL:     user.AvatarURL,
		Bio:           user.Bio,
		RecipeCount:   user.RecipeCount,
		FollowerCount: user.FollowerCount,
	}
}

func (s *userService) SearchUsers(ctx context.Context, query string) ([]domain.UserSummary, error) {
	users, err := s.userRepository.SearchUsers(ctx, query, searchUserLimit)
	if err != nil {
		return nil, err
	}

	result := make([]domain.UserSummary, 0, len(users))
	for _, user := range users {
		result = append(result, toUserSummary(user))
	}

	return result, nil
}

func (s *userService) GetPopularUsers(ctx context.Context, limit int) ([]domain.UserSummary, error) {
	users, err := s.userRepository.GetUsersWithStats(ctx, popularUserWindow)
	if err != nil {
		return nil, err
	}

	result := make([]domain.UserSummary, 0, len(users))
	for _, user := range users {
		result = append(result, toUserSummary(user))
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].FollowerCount > result[j].FollowerCount
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}

	return result, nil
}
