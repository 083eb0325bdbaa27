package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessToggleLike    = "like toggled successfully"
	MessageSuccessToggleSave    = "save toggled successfully"
	MessageSuccessAddComment    = "comment added successfully"
	MessageSuccessDeleteComment = "comment deleted successfully"
	MessageSuccessGetComments   = "comments retrieved successfully"

	MessageFailedToggleLike    = "failed to toggle like"
	MessageFailedToggleSave    = "failed to toggle save"
	MessageFailedAddComment    = "failed to add comment"
	MessageFailedDeleteComment = "failed to delete comment"
	MessageFailedGetComments   = "failed to retrieve comments"

	ErrCommentEmpty    = errors.New("comment cannot be empty")
	ErrCommentNotFound = errors.New("comment not found")
	ErrNotCommentOwner = errors.New("you can only delete your own comments")
)

type (
	ToggleLikeRequest struct {
		RecipeID string `json:"recipe_id" validate:"required,uuid"`
	}

	ToggleLikeResponse struct {
		Liked      bool  `json:"liked"`
		LikesCount int64 `json:"likes_count"`
	}

	ToggleSaveRequest struct {
		RecipeID string `json:"recipe_id" validate:"required,uuid"`
	}

	ToggleSaveResponse struct {
		Saved bool `json:"saved"`
	}

	AddCommentRequest struct {
		RecipeID string `json:"recipe_id" validate:"required,uuid"`
		Content  string `json:"content" validate:"required"`
	}

	CommentResponse struct {
		ID        string       `json:"id"`
		RecipeID  string       `json:"recipe_id"`
		Content   string       `json:"content"`
		CreatedAt time.Time    `json:"created_at"`
		Author    *UserProfile `json:"author,omitempty"`
	}
)
