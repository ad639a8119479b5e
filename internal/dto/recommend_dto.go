package dto

import "github.com/KlayvemGuimaraes/carrer-path-ai/internal/model"

// UserProfileRequest is the recommend/explain input. The endpoint also
// accepts the same fields wrapped in a "profile" object.
type UserProfileRequest struct {
	Role       string   `json:"role" validate:"required"`
	Seniority  string   `json:"seniority" validate:"required,oneof=junior mid senior"`
	TargetArea string   `json:"targetArea" validate:"omitempty"`
	Goals      []string `json:"goals" validate:"omitempty,dive,min=1"`
	BudgetUSD  *float64 `json:"budgetUSD" validate:"omitempty,gte=0"`
}

// WrappedProfileRequest matches the `{profile: {...}}` body shape.
type WrappedProfileRequest struct {
	Profile *UserProfileRequest `json:"profile"`
}

func (r *UserProfileRequest) ToModel() *model.UserProfile {
	return &model.UserProfile{
		Role:       r.Role,
		Seniority:  r.Seniority,
		TargetArea: r.TargetArea,
		Goals:      r.Goals,
		BudgetUSD:  r.BudgetUSD,
	}
}

type RecommendationResponse struct {
	Items []model.RecommendationItem `json:"items" validate:"omitempty,dive"`
}
