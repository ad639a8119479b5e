package handler

import (
	"github.com/KlayvemGuimaraes/carrer-path-ai/internal/dto"
	"github.com/KlayvemGuimaraes/carrer-path-ai/internal/studyplan"
	"github.com/KlayvemGuimaraes/carrer-path-ai/internal/usecase"
	"github.com/KlayvemGuimaraes/carrer-path-ai/internal/util"
	"github.com/gofiber/fiber/v2"
)

type AIHandler struct {
	uc *usecase.ExplainUsecase
}

func NewAIHandler(uc *usecase.ExplainUsecase) *AIHandler {
	return &AIHandler{uc: uc}
}

func (h *AIHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/api/ai/explain", h.Explain)
	app.Post("/api/study-plan", h.StudyPlan)
}

func (h *AIHandler) Explain(c *fiber.Ctx) error {
	var req dto.ExplainRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "invalid JSON body", err)
	}
	if err := util.ValidateStruct(&req); err != nil {
		return util.MapError(c, err)
	}

	answer, err := h.uc.Explain(c.Context(), &req)
	if err != nil {
		return util.MapError(c, err)
	}
	return c.JSON(dto.ExplainResponse{Answer: answer})
}

func (h *AIHandler) StudyPlan(c *fiber.Ctx) error {
	var req dto.StudyPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "invalid JSON body", err)
	}
	if err := util.ValidateStruct(&req); err != nil {
		return util.MapError(c, err)
	}

	plan := studyplan.Build(req.Profile.ToModel(), req.Items)
	return c.JSON(plan)
}
