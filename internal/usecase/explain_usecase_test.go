package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/KlayvemGuimaraes/carrer-path-ai/internal/apperr"
	"github.com/KlayvemGuimaraes/carrer-path-ai/internal/dto"
	"github.com/KlayvemGuimaraes/carrer-path-ai/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	prompt string
	answer string
	err    error
}

func (s *stubGenerator) GenerateText(ctx context.Context, model string, prompt string) (string, error) {
	s.prompt = prompt
	return s.answer, s.err
}

func explainRequest() *dto.ExplainRequest {
	return &dto.ExplainRequest{
		Profile: &dto.UserProfileRequest{
			Role:       "Cloud Engineer",
			Seniority:  "mid",
			TargetArea: "cloud",
			Goals:      []string{"kubernetes"},
		},
		Recommendations: dto.RecommendationResponse{
			Items: []model.RecommendationItem{
				{
					Certification: &model.Certification{
						ID: "cka", Name: "Kubernetes Admin", Provider: "CNCF",
						Level: model.LevelIntermediate, Area: "cloud",
					},
					Score:   75,
					Reasons: []string{"aligned to role"},
				},
			},
		},
		Question: "Which one first?",
	}
}

func TestExplainBuildsPromptFromRequest(t *testing.T) {
	gen := &stubGenerator{answer: "Start with the Kubernetes Admin."}
	uc := NewExplainUsecase(gen)

	answer, err := uc.Explain(context.Background(), explainRequest())
	require.NoError(t, err)
	assert.Equal(t, "Start with the Kubernetes Admin.", answer)

	assert.Contains(t, gen.prompt, "Cloud Engineer")
	assert.Contains(t, gen.prompt, "Kubernetes Admin")
	assert.Contains(t, gen.prompt, "Score 75")
	assert.Contains(t, gen.prompt, "aligned to role")
	assert.Contains(t, gen.prompt, "Which one first?")
}

func TestExplainWithoutGenerator(t *testing.T) {
	uc := NewExplainUsecase(nil)

	_, err := uc.Explain(context.Background(), explainRequest())
	var uerr *apperr.UpstreamError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, "gemini", uerr.Service)
}

func TestExplainWrapsGeneratorFailure(t *testing.T) {
	gen := &stubGenerator{err: errors.New("quota exceeded")}
	uc := NewExplainUsecase(gen)

	_, err := uc.Explain(context.Background(), explainRequest())
	var uerr *apperr.UpstreamError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, "gemini", uerr.Service)
}

func TestExplainSkipsItemWithoutCertification(t *testing.T) {
	gen := &stubGenerator{answer: "ok"}
	uc := NewExplainUsecase(gen)

	req := explainRequest()
	req.Recommendations.Items = append([]model.RecommendationItem{{Score: 10}}, req.Recommendations.Items...)

	_, err := uc.Explain(context.Background(), req)
	require.NoError(t, err)
	assert.Contains(t, gen.prompt, "1. Kubernetes Admin")
	assert.NotContains(t, gen.prompt, "2.")
}

func TestExplainPromptOmitsEmptyQuestion(t *testing.T) {
	gen := &stubGenerator{answer: "ok"}
	uc := NewExplainUsecase(gen)

	req := explainRequest()
	req.Question = ""
	_, err := uc.Explain(context.Background(), req)
	require.NoError(t, err)
	assert.NotContains(t, gen.prompt, "User question")
}
