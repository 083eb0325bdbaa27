package domain

import (
	"errors"
)

var (
	MessageSuccessToggleFollow = "follow toggled successfully"
	MessageSuccessGetFollowers = "followers retrieved successfully"
	MessageSuccessGetFollowing = "following retrieved successfully"

	MessageFailedToggleFollow = "failed to toggle follow"
	MessageFailedGetFollowers = "failed to retrieve followers"
	MessageFailedGetFollowing = "failed to retrieve following"

	ErrSelfFollow = errors.New("you cannot follow yourself")
)

type (
	ToggleFollowRequest struct {
		FollowingID string `json:"following_id" validate:"required,uuid"`
	}

	ToggleFollowResponse struct {
		Following bool `json:"following"`
	}

	FollowStats struct {
		Followers int64 `json:"followers"`
		Following int64 `json:"following"`
	}
)
