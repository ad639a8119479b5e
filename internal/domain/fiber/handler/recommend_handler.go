package handler

import (
	"github.com/KlayvemGuimaraes/carrer-path-ai/internal/dto"
	"github.com/KlayvemGuimaraes/carrer-path-ai/internal/usecase"
	"github.com/KlayvemGuimaraes/carrer-path-ai/internal/util"
	"github.com/gofiber/fiber/v2"
)

type RecommendHandler struct {
	uc *usecase.RecommendUsecase
}

func NewRecommendHandler(uc *usecase.RecommendUsecase) *RecommendHandler {
	return &RecommendHandler{uc: uc}
}

func (h *RecommendHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/api/recommend", h.Recommend)
	app.Get("/api/certifications", h.Search)
}

func (h *RecommendHandler) Recommend(c *fiber.Ctx) error {
	profile, err := parseProfileBody(c)
	if err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "invalid JSON body", err)
	}
	if err := util.ValidateStruct(profile); err != nil {
		return util.MapError(c, err)
	}

	items := h.uc.Recommend(profile.ToModel())
	return c.JSON(dto.RecommendationResponse{Items: items})
}

// parseProfileBody accepts both a bare profile object and the wrapped
// {profile: {...}} shape.
func parseProfileBody(c *fiber.Ctx) (*dto.UserProfileRequest, error) {
	var wrapped dto.WrappedProfileRequest
	if err := c.BodyParser(&wrapped); err == nil && wrapped.Profile != nil {
		return wrapped.Profile, nil
	}

	var profile dto.UserProfileRequest
	if err := c.BodyParser(&profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (h *RecommendHandler) Search(c *fiber.Ctx) error {
	var req dto.CertSearchRequest
	if err := c.QueryParser(&req); err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "invalid query parameters", err)
	}
	if err := util.ValidateStruct(&req); err != nil {
		return util.MapError(c, err)
	}

	items := h.uc.Search(&req)
	return c.JSON(dto.CertSearchResponse{Items: items})
}
