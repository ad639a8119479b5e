package model

// Certification levels as they appear in the catalog file.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// Profile seniority values accepted by the recommender.
const (
	SeniorityJunior = "junior"
	SeniorityMid    = "mid"
	SenioritySenior = "senior"
)

// Certification is one entry of the static catalog. Records are loaded
// once at startup and never mutated; recommendation items reference
// them directly instead of copying.
type Certification struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Provider         string   `json:"provider"`
	Area             string   `json:"area,omitempty"`
	Level            string   `json:"level"`
	Skills           []string `json:"skills"`
	Roles            []string `json:"roles"`
	Prerequisites    []string `json:"prerequisites"`
	DurationHours    *float64 `json:"durationHours,omitempty"`
	EstimatedCostUSD *float64 `json:"estimatedCostUSD,omitempty"`
}

// UserProfile is the per-request input to scoring. Never persisted.
type UserProfile struct {
	Role       string   `json:"role"`
	Seniority  string   `json:"seniority"`
	TargetArea string   `json:"targetArea,omitempty"`
	Goals      []string `json:"goals"`
	BudgetUSD  *float64 `json:"budgetUSD,omitempty"`
}

// RecommendationItem pairs a catalog certification with its score for
// one profile. Reasons are in rule order, one per rule that fired.
type RecommendationItem struct {
	Certification *Certification `json:"certification" validate:"required"`
	Score         int            `json:"score"`
	Reasons       []string       `json:"reasons"`
}
