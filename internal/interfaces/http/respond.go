package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/tu-usuario/wms-inventory/internal/application/dto"
)

// invalidBody respuesta 400 para cuerpos que no parsean.
func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).
		JSON(dto.NewError("Invalid request body").WithRecovery("Send a valid JSON body"))
}

// storeUnavailable respuesta 503 cuando el store no responde.
func storeUnavailable(c *fiber.Ctx) error {
	return c.Status(fiber.StatusServiceUnavailable).
		JSON(dto.NewError("Database unavailable").WithRecovery("Retry the request later"))
}

// internalError respuesta 500 con detalle suprimido; el error real queda en el log.
func internalError(c *fiber.Ctx, err error) error {
	log.Error().Err(err).Str("path", c.Path()).Msg("error interno no anticipado")
	return c.Status(fiber.StatusInternalServerError).
		JSON(dto.NewError("Internal server error").WithCriticality(dto.CriticalityUnknown))
}
