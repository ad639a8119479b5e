package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/KlayvemGuimaraes/carrer-path-ai/internal/catalog"
	"github.com/KlayvemGuimaraes/carrer-path-ai/internal/model"
	"github.com/KlayvemGuimaraes/carrer-path-ai/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }

func recommendApp() *fiber.App {
	cat := catalog.New([]model.Certification{
		{
			ID: "c1", Name: "Cloud Foundations", Provider: "Acme", Area: "cloud",
			Level: model.LevelBeginner, Skills: []string{"cloud basics"},
			Roles: []string{"Cloud Engineer"}, EstimatedCostUSD: f64(100),
		},
		{
			ID: "c2", Name: "Security Essentials", Provider: "SecOrg", Area: "security",
			Level: model.LevelBeginner, Skills: []string{"threats"},
			Roles: []string{"Security Analyst"},
		},
	})

	app := fiber.New()
	NewRecommendHandler(usecase.NewRecommendUsecase(cat)).RegisterRoutes(app)
	return app
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestRecommendEndpoint(t *testing.T) {
	app := recommendApp()

	resp, err := app.Test(jsonRequest(fiber.MethodPost, "/api/recommend",
		`{"role":"Cloud Engineer","seniority":"junior","targetArea":"cloud"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Items []model.RecommendationItem `json:"items"`
	}
	decodeBody(t, resp, &body)
	require.NotEmpty(t, body.Items)
	assert.Equal(t, "c1", body.Items[0].Certification.ID)
	assert.Equal(t, 90, body.Items[0].Score)
}

func TestRecommendEndpointWrappedBody(t *testing.T) {
	app := recommendApp()

	resp, err := app.Test(jsonRequest(fiber.MethodPost, "/api/recommend",
		`{"profile":{"role":"Cloud Engineer","seniority":"junior"}}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRecommendEndpointValidation(t *testing.T) {
	app := recommendApp()

	resp, err := app.Test(jsonRequest(fiber.MethodPost, "/api/recommend",
		`{"role":"Cloud Engineer","seniority":"principal"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var body struct {
		Error   string            `json:"error"`
		Details map[string]string `json:"details"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "ValidationError", body.Error)
	assert.Contains(t, body.Details, "seniority")
}

func TestRecommendEndpointInvalidJSON(t *testing.T) {
	app := recommendApp()

	resp, err := app.Test(jsonRequest(fiber.MethodPost, "/api/recommend", `{not json`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCertificationsEndpoint(t *testing.T) {
	app := recommendApp()

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/certifications?area=cloud", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Items []model.Certification `json:"items"`
	}
	decodeBody(t, resp, &body)
	require.Len(t, body.Items, 1)
	assert.Equal(t, "c1", body.Items[0].ID)
}

func TestCertificationsEndpointLimitValidation(t *testing.T) {
	app := recommendApp()

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/certifications?limit=200", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}
