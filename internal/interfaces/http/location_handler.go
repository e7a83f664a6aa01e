package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/wms-inventory/internal/application/dto"
	"github.com/tu-usuario/wms-inventory/internal/application/usecase"
	"github.com/tu-usuario/wms-inventory/internal/domain"
)

// LocationHandler maneja las peticiones HTTP de ubicaciones.
type LocationHandler struct {
	uc *usecase.LocationUseCase
}

// NewLocationHandler construye el handler.
func NewLocationHandler(uc *usecase.LocationUseCase) *LocationHandler {
	return &LocationHandler{uc: uc}
}

// Create godoc
// @Summary      Crear ubicación
// @Tags         locations
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateLocationRequest  true  "aisle, bin"
// @Success      200   {object}  dto.LocationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /locations [post]
func (h *LocationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLocationRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}

	// Mensajes distintos por campo, como espera el contrato de la API.
	if strings.TrimSpace(in.Aisle) == "" {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.NewError("Aisle identifier cannot be empty"))
	}
	if strings.TrimSpace(in.Bin) == "" {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.NewError("Bin identifier cannot be empty"))
	}

	resp, err := h.uc.Create(in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.NewError("Location already exists"))
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("Invalid location"))
		default:
			return internalError(c, err)
		}
	}
	return c.JSON(resp)
}

// Update godoc
// @Summary      Actualizar ubicación
// @Tags         locations
// @Accept       json
// @Produce      json
// @Param        id    path      int                        true  "ID de la ubicación"
// @Param        body  body      dto.CreateLocationRequest  true  "aisle, bin"
// @Success      200   {object}  dto.LocationResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /locations/{id} [put]
func (h *LocationHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("Invalid location id"))
	}

	var in dto.CreateLocationRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}

	resp, err := h.uc.Update(int64(id), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrLocationNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.NewError("Location not found"))
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.NewError("Location already exists"))
		default:
			return internalError(c, err)
		}
	}
	return c.JSON(resp)
}

// GetByID godoc
// @Summary      Obtener ubicación por ID
// @Tags         locations
// @Produce      json
// @Param        id   path      int  true  "ID de la ubicación"
// @Success      200  {object}  dto.LocationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /locations/{id} [get]
func (h *LocationHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("Invalid location id"))
	}

	resp, err := h.uc.GetByID(int64(id))
	if err != nil {
		if errors.Is(err, domain.ErrLocationNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.NewError("Location not found"))
		}
		return internalError(c, err)
	}
	return c.JSON(resp)
}

// List godoc
// @Summary      Listar ubicaciones
// @Tags         locations
// @Produce      json
// @Success      200  {array}   dto.LocationResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /locations [get]
func (h *LocationHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(list)
}
