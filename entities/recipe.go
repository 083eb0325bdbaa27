package entities

import (
	"github.com/google/uuid"
)

type Recipe struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	ImageURL    string    `json:"image_url,omitempty"`
	PrepTime    int       `json:"prep_time"` // minutes
	CookTime    int       `json:"cook_time"` // minutes
	Servings    int       `json:"servings"`
	Difficulty  string    `json:"difficulty"` // Easy, Medium, Hard

	User         *User          `gorm:"foreignKey:UserID"`
	Ingredients  []*Ingredient  `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	Instructions []*Instruction `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	Timestamp
}

type Ingredient struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID   uuid.UUID `gorm:"index" json:"recipe_id"`
	Item       string    `json:"item"`
	Quantity   string    `json:"quantity"`
	OrderIndex int       `json:"order_index"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
	Timestamp
}

type Instruction struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID    uuid.UUID `gorm:"index" json:"recipe_id"`
	StepNumber  int       `json:"step_number"`
	Description string    `gorm:"type:text" json:"description"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
	Timestamp
}
