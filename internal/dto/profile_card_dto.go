package dto

import "time"

type CreateProfileCardRequest struct {
	Name         string   `json:"name" validate:"required,min=1,max=100"`
	Bio          string   `json:"bio" validate:"max=200"`
	Skills       []string `json:"skills" validate:"required,min=1,max=10,dive,min=1"`
	ProfileImage string   `json:"profileImage" validate:"omitempty,url"`
	Theme        string   `json:"theme" validate:"omitempty,oneof=blue purple green orange pink"`
}

// UpdateProfileCardRequest is a partial patch: only non-nil fields are
// written.
type UpdateProfileCardRequest struct {
	Name         *string   `json:"name" validate:"omitempty,min=1,max=100"`
	Bio          *string   `json:"bio" validate:"omitempty,max=200"`
	Skills       *[]string `json:"skills" validate:"omitempty,min=1,max=10,dive,min=1"`
	ProfileImage *string   `json:"profileImage" validate:"omitempty,url"`
	Theme        *string   `json:"theme" validate:"omitempty,oneof=blue purple green orange pink"`
}

type ListProfileCardsRequest struct {
	Limit  int `json:"limit" query:"limit" validate:"omitempty,min=1,max=100"`
	Offset int `json:"offset" query:"offset" validate:"omitempty,min=0"`
}

// ProfileCardDTO is the wire shape of a card, with skills decoded from
// the stored string encoding.
type ProfileCardDTO struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Bio          string    `json:"bio"`
	Skills       []string  `json:"skills"`
	ProfileImage string    `json:"profileImage,omitempty"`
	Theme        string    `json:"theme"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CreateProfileCardResponse struct {
	Card     ProfileCardDTO `json:"card"`
	ShareURL string         `json:"shareUrl"`
}
