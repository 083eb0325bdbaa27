package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessRegister        = "account created successfully"
	MessageSuccessLogin           = "login success"
	MessageSuccessGetMe           = "user profile retrieved successfully"
	MessageSuccessUpdateUser      = "profile updated successfully"
	MessageSuccessSearchUsers     = "users retrieved successfully"
	MessageSuccessGetPopularUsers = "popular users retrieved successfully"

	MessageFailedRegister        = "failed to create account"
	MessageFailedLogin           = "failed to login"
	MessageFailedGetMe           = "failed to retrieve user profile"
	MessageFailedUpdateUser      = "failed to update profile"
	MessageFailedSearchUsers     = "failed to retrieve users"
	MessageFailedGetPopularUsers = "failed to retrieve popular users"

	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrCredentialsInvalid = errors.New("invalid email or password")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrUploadAvatarFailed = errors.New("failed to upload avatar")
)

type (
	RegisterRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6"`
		FullName string `json:"full_name" validate:"required"`
		Username string `json:"username" validate:"required,min=3,max=30,alphanum"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string      `json:"token"`
		User  UserProfile `json:"user"`
	}

	UpdateUserRequest struct {
		FullName string                `json:"full_name" form:"full_name" validate:"omitempty"`
		Bio      string                `json:"bio" form:"bio" validate:"omitempty,max=500"`
		Avatar   *multipart.FileHeader `json:"avatar" form:"avatar"`
	}

	UserProfile struct {
		ID        string    `json:"id"`
		Username  string    `json:"username"`
		Email     string    `json:"email,omitempty"`
		FullName  string    `json:"full_name"`
		AvatarURL string    `json:"avatar_url,omitempty"`
		Bio       string    `json:"bio,omitempty"`
		CreatedAt time.Time `json:"created_at"`
	}

	// UserSummary carries the per-user stats attached to search and
	// popular-user listings.
	UserSummary struct {
		ID            string `json:"id"`
		Username      string `json:"username"`
		FullName      string `json:"full_name"`
		AvatarURL     string `json:"avatar_url,omitempty"`
		Bio           string `json:"bio,omitempty"`
		RecipeCount   int64  `json:"recipe_count"`
		FollowerCount int64  `json:"follower_count"`
	}
)
