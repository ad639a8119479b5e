package dto

// EvalRequest identifies the external profile to evaluate. GitHub
// accepts either field; LinkedIn requires the URL.
type EvalRequest struct {
	URL      string `json:"url" query:"url" validate:"omitempty,url"`
	Username string `json:"username" query:"username" validate:"omitempty"`
}
