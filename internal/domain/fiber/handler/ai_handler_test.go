package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/KlayvemGuimaraes/carrer-path-ai/internal/studyplan"
	"github.com/KlayvemGuimaraes/carrer-path-ai/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cannedGenerator struct {
	answer string
}

func (g cannedGenerator) GenerateText(ctx context.Context, model string, prompt string) (string, error) {
	return g.answer, nil
}

const explainBody = `{
	"profile": {"role": "Cloud Engineer", "seniority": "mid"},
	"recommendations": {"items": [
		{"certification": {"id": "c1", "name": "Cloud Foundations", "provider": "Acme", "level": "beginner"}, "score": 70, "reasons": ["aligned to role"]}
	]},
	"question": "where to start?"
}`

func TestExplainEndpoint(t *testing.T) {
	app := fiber.New()
	NewAIHandler(usecase.NewExplainUsecase(cannedGenerator{answer: "Start with Cloud Foundations."})).RegisterRoutes(app)

	resp, err := app.Test(jsonRequest(fiber.MethodPost, "/api/ai/explain", explainBody))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Answer string `json:"answer"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "Start with Cloud Foundations.", body.Answer)
}

func TestExplainEndpointUnconfigured(t *testing.T) {
	app := fiber.New()
	NewAIHandler(usecase.NewExplainUsecase(nil)).RegisterRoutes(app)

	resp, err := app.Test(jsonRequest(fiber.MethodPost, "/api/ai/explain", explainBody))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestExplainEndpointRequiresProfile(t *testing.T) {
	app := fiber.New()
	NewAIHandler(usecase.NewExplainUsecase(nil)).RegisterRoutes(app)

	resp, err := app.Test(jsonRequest(fiber.MethodPost, "/api/ai/explain", `{"question":"hi"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestExplainEndpointRejectsItemWithoutCertification(t *testing.T) {
	app := fiber.New()
	NewAIHandler(usecase.NewExplainUsecase(cannedGenerator{answer: "ok"})).RegisterRoutes(app)

	resp, err := app.Test(jsonRequest(fiber.MethodPost, "/api/ai/explain", `{
		"profile": {"role": "Cloud Engineer", "seniority": "mid"},
		"recommendations": {"items": [{"score": 10}]}
	}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestStudyPlanEndpointRejectsItemWithoutCertification(t *testing.T) {
	app := fiber.New()
	NewAIHandler(usecase.NewExplainUsecase(nil)).RegisterRoutes(app)

	resp, err := app.Test(jsonRequest(fiber.MethodPost, "/api/study-plan", `{
		"profile": {"role": "Cloud Engineer", "seniority": "mid"},
		"items": [{"score": 10}]
	}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestStudyPlanEndpoint(t *testing.T) {
	app := fiber.New()
	NewAIHandler(usecase.NewExplainUsecase(nil)).RegisterRoutes(app)

	resp, err := app.Test(jsonRequest(fiber.MethodPost, "/api/study-plan", `{
		"profile": {"role": "Cloud Engineer", "seniority": "junior", "targetArea": "cloud"},
		"items": [
			{"certification": {"id": "c1", "name": "Cloud Foundations", "provider": "Acme", "level": "beginner"}, "score": 70}
		]
	}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var plan studyplan.Plan
	decodeBody(t, resp, &plan)
	assert.Equal(t, 2, plan.TotalWeeks)
	assert.Equal(t, []string{"c1"}, plan.SuggestionOrder)
}
