package dto

import "github.com/KlayvemGuimaraes/carrer-path-ai/internal/model"

// CertSearchRequest carries the optional catalog filters. All present
// filters are combined with AND.
type CertSearchRequest struct {
	Area  string `json:"area" query:"area" validate:"omitempty"`
	Level string `json:"level" query:"level" validate:"omitempty,oneof=beginner intermediate advanced"`
	Role  string `json:"role" query:"role" validate:"omitempty"`
	Query string `json:"query" query:"query" validate:"omitempty"`
	Limit int    `json:"limit" query:"limit" validate:"omitempty,min=1,max=100"`
}

type CertSearchResponse struct {
	Items []model.Certification `json:"items"`
}
