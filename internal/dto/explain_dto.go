package dto

import "github.com/KlayvemGuimaraes/carrer-path-ai/internal/model"

// ExplainRequest delegates a profile and its recommendations to the
// text-generation collaborator, optionally with a user question.
type ExplainRequest struct {
	Profile         *UserProfileRequest    `json:"profile" validate:"required"`
	Recommendations RecommendationResponse `json:"recommendations"`
	Question        string                 `json:"question"`
}

type ExplainResponse struct {
	Answer string `json:"answer"`
}

// StudyPlanRequest turns a profile and its recommendation list into a
// week-by-week study plan.
type StudyPlanRequest struct {
	Profile *UserProfileRequest        `json:"profile" validate:"required"`
	Items   []model.RecommendationItem `json:"items" validate:"omitempty,dive"`
}
