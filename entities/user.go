package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Username     string    `gorm:"uniqueIndex" json:"username"`
	Email        string    `gorm:"uniqueIndex" json:"email"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"full_name"`
	AvatarURL    string    `json:"avatar_url,omitempty"`
	Bio          string    `gorm:"type:text" json:"bio,omitempty"`
	Role         string    `gorm:"default:user" json:"role"`

	Recipes  []*Recipe  `gorm:"foreignKey:UserID"`
	Comments []*Comment `gorm:"foreignKey:UserID"`
	Timestamp
}
