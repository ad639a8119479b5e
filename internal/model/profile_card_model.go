package model

import (
	"time"

	"github.com/google/uuid"
)

// Card themes accepted at write time; the first entry is the default.
var CardThemes = []string{"blue", "purple", "green", "orange", "pink"}

// ProfileCard is the persisted shareable card. Skills are stored as a
// JSON-encoded string column and decoded at the usecase boundary.
type ProfileCard struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(100)" json:"name"`
	Bio          string    `gorm:"type:varchar(200)" json:"bio"`
	Skills       string    `gorm:"type:text" json:"skills"`
	ProfileImage string    `gorm:"type:text" json:"profile_image"`
	Theme        string    `gorm:"type:varchar(20);default:blue" json:"theme"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (c *ProfileCard) TableName() string {
	return "profile_cards"
}
