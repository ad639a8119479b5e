package util

import (
	"errors"

	"github.com/KlayvemGuimaraes/carrer-path-ai/internal/apperr"
	"github.com/KlayvemGuimaraes/carrer-path-ai/internal/config"
	"github.com/gofiber/fiber/v2"
)

// ErrorBody is the error envelope for every non-2xx response.
type ErrorBody struct {
	Error      string `json:"error"`
	Details    any    `json:"details,omitempty"`
	DevMessage string `json:"dev_message,omitempty"`
}

// ErrorResponse sends the standard error envelope. The wrapped cause
// is only exposed outside production.
func ErrorResponse(c *fiber.Ctx, status int, message string, errs ...error) error {
	body := ErrorBody{Error: message}
	if config.LoadAppConfig().Env != "production" && len(errs) > 0 && errs[0] != nil {
		body.DevMessage = errs[0].Error()
	}
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	return c.Status(status).JSON(body)
}

// MapError translates the error taxonomy to its boundary shape:
// validation failures become 422 with field details, missing records
// 404, upstream failures 502, anything else a generic 500.
func MapError(c *fiber.Ctx, err error) error {
	var verr *apperr.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(ErrorBody{
			Error:   "ValidationError",
			Details: verr.Fields,
		})
	}
	if errors.Is(err, apperr.ErrNotFound) {
		return ErrorResponse(c, fiber.StatusNotFound, "not found")
	}
	var uerr *apperr.UpstreamError
	if errors.As(err, &uerr) {
		return ErrorResponse(c, fiber.StatusBadGateway, uerr.Error(), uerr.Err)
	}
	return ErrorResponse(c, fiber.StatusInternalServerError, "internal error", err)
}
