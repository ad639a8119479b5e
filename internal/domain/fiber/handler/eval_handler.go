package handler

import (
	"time"

	"github.com/KlayvemGuimaraes/carrer-path-ai/internal/apperr"
	"github.com/KlayvemGuimaraes/carrer-path-ai/internal/dto"
	"github.com/KlayvemGuimaraes/carrer-path-ai/internal/middleware"
	"github.com/KlayvemGuimaraes/carrer-path-ai/internal/service"
	"github.com/KlayvemGuimaraes/carrer-path-ai/internal/util"
	"github.com/gofiber/fiber/v2"
)

type EvalHandler struct {
	github   *service.GitHubService
	linkedin *service.LinkedInService
}

func NewEvalHandler(github *service.GitHubService, linkedin *service.LinkedInService) *EvalHandler {
	return &EvalHandler{github: github, linkedin: linkedin}
}

func (h *EvalHandler) RegisterRoutes(app *fiber.App) {
	// The evaluators fan out to third parties; keep them on a tighter
	// limit than the global one.
	limit := middleware.RateLimiter(10, 1*time.Minute)
	app.Get("/api/eval/github", limit, h.GitHub)
	app.Post("/api/eval/github", limit, h.GitHub)
	app.Get("/api/eval/linkedin", limit, h.LinkedIn)
	app.Post("/api/eval/linkedin", limit, h.LinkedIn)
}

func parseEvalRequest(c *fiber.Ctx) (*dto.EvalRequest, error) {
	var req dto.EvalRequest
	if c.Method() == fiber.MethodGet {
		if err := c.QueryParser(&req); err != nil {
			return nil, err
		}
	} else if err := c.BodyParser(&req); err != nil {
		return nil, err
	}
	if err := util.ValidateStruct(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

func (h *EvalHandler) GitHub(c *fiber.Ctx) error {
	req, err := parseEvalRequest(c)
	if err != nil {
		return util.MapError(c, err)
	}

	eval, err := h.github.Evaluate(c.Context(), req.URL, req.Username)
	if err != nil {
		return util.MapError(c, err)
	}
	return c.JSON(eval)
}

func (h *EvalHandler) LinkedIn(c *fiber.Ctx) error {
	req, err := parseEvalRequest(c)
	if err != nil {
		return util.MapError(c, err)
	}
	if req.URL == "" {
		return util.MapError(c, apperr.NewValidationError("url is required", map[string]string{
			"url": "failed required constraint",
		}))
	}

	eval, err := h.linkedin.Evaluate(c.Context(), req.URL)
	if err != nil {
		return util.MapError(c, err)
	}
	return c.JSON(eval)
}
