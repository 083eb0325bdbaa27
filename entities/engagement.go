package entities

import (
	"github.com/google/uuid"
)

// Likes and saved recipes are existence rows. The composite unique index is
// what keeps concurrent toggles from inserting the same pair twice.
type Like struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID uuid.UUID `gorm:"uniqueIndex:idx_likes_recipe_user" json:"recipe_id"`
	UserID   uuid.UUID `gorm:"uniqueIndex:idx_likes_recipe_user" json:"user_id"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
	User   *User   `gorm:"foreignKey:UserID"`
	Timestamp
}

type SavedRecipe struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID uuid.UUID `gorm:"uniqueIndex:idx_saved_recipe_user" json:"recipe_id"`
	UserID   uuid.UUID `gorm:"uniqueIndex:idx_saved_recipe_user" json:"user_id"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
	User   *User   `gorm:"foreignKey:UserID"`
	Timestamp
}

type Comment struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID uuid.UUID `gorm:"index" json:"recipe_id"`
	UserID   uuid.UUID `json:"user_id"`
	Content  string    `gorm:"type:text" json:"content"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
	User   *User   `gorm:"foreignKey:UserID"`
	Timestamp
}
