package handler

import (
	"github.com/KlayvemGuimaraes/carrer-path-ai/internal/dto"
	"github.com/KlayvemGuimaraes/carrer-path-ai/internal/usecase"
	"github.com/KlayvemGuimaraes/carrer-path-ai/internal/util"
	"github.com/gofiber/fiber/v2"
)

type ProfileCardHandler struct {
	uc *usecase.ProfileCardUsecase
}

func NewProfileCardHandler(uc *usecase.ProfileCardUsecase) *ProfileCardHandler {
	return &ProfileCardHandler{uc: uc}
}

func (h *ProfileCardHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/api/profile-cards", h.Create)
	app.Get("/api/profile-cards", h.List)
	app.Get("/api/profile-cards/:id", h.Get)
	app.Put("/api/profile-cards/:id", h.Update)
	app.Delete("/api/profile-cards/:id", h.Delete)
}

func (h *ProfileCardHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateProfileCardRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "invalid JSON body", err)
	}
	if err := util.ValidateStruct(&req); err != nil {
		return util.MapError(c, err)
	}

	created, err := h.uc.Create(&req)
	if err != nil {
		return util.MapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *ProfileCardHandler) Get(c *fiber.Ctx) error {
	card, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return util.MapError(c, err)
	}
	return c.JSON(fiber.Map{"card": card})
}

func (h *ProfileCardHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateProfileCardRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "invalid JSON body", err)
	}
	if err := util.ValidateStruct(&req); err != nil {
		return util.MapError(c, err)
	}

	card, err := h.uc.Update(c.Params("id"), &req)
	if err != nil {
		return util.MapError(c, err)
	}
	return c.JSON(fiber.Map{"card": card})
}

func (h *ProfileCardHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return util.MapError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *ProfileCardHandler) List(c *fiber.Ctx) error {
	var req dto.ListProfileCardsRequest
	if err := c.QueryParser(&req); err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "invalid query parameters", err)
	}
	if err := util.ValidateStruct(&req); err != nil {
		return util.MapError(c, err)
	}

	cards, total, pagination, err := h.uc.List(&req)
	if err != nil {
		return util.MapError(c, err)
	}
	return c.JSON(fiber.Map{
		"cards":      cards,
		"total":      total,
		"pagination": pagination,
	})
}
