package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/wms-inventory/internal/application/dto"
	"github.com/tu-usuario/wms-inventory/internal/application/stock"
	"github.com/tu-usuario/wms-inventory/internal/domain"
)

// StockHandler maneja las peticiones HTTP de ajustes de stock.
type StockHandler struct {
	uc *stock.AdjustUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *stock.AdjustUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Inbound godoc
// @Summary      Registrar entrada de stock
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body      dto.StockOperationRequest  true  "product_id, location_id, quantity"
// @Success      200   {object}  dto.StockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /stock/inbound [post]
func (h *StockHandler) Inbound(c *fiber.Ctx) error {
	var in dto.StockOperationRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}

	s, err := h.uc.AdjustInbound(c.Context(), in.ProductID, in.LocationID, in.Quantity)
	if err != nil {
		return h.adjustError(c, err)
	}
	return c.JSON(dto.ToStockResponse(s))
}

// Outbound godoc
// @Summary      Registrar salida de stock
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body      dto.StockOperationRequest  true  "product_id, location_id, quantity"
// @Success      200   {object}  dto.StockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /stock/outbound [post]
func (h *StockHandler) Outbound(c *fiber.Ctx) error {
	var in dto.StockOperationRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}

	s, err := h.uc.AdjustOutbound(c.Context(), in.ProductID, in.LocationID, in.Quantity)
	if err != nil {
		return h.adjustError(c, err)
	}
	return c.JSON(dto.ToStockResponse(s))
}

// List godoc
// @Summary      Listar todo el stock
// @Tags         stock
// @Produce      json
// @Success      200  {array}   dto.StockResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /stock [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	items := make([]dto.StockResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *dto.ToStockResponse(s))
	}
	return c.JSON(items)
}

// adjustError traduce los errores del núcleo de stock al envelope HTTP.
// La salida insuficiente responde 400 (paridad con el contrato observado).
func (h *StockHandler) adjustError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidQuantity):
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.NewError("Quantity must be a positive integer").
				WithRecovery("Provide a quantity greater than zero"))
	case errors.Is(err, domain.ErrProductNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.NewError("Product not found"))
	case errors.Is(err, domain.ErrLocationNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.NewError("Location not found"))
	case errors.Is(err, domain.ErrStockNotFound):
		return c.Status(fiber.StatusNotFound).
			JSON(dto.NewError("No stock found for this product at the specified location"))
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.NewError("Insufficient stock").
				WithRecovery("Reduce the requested quantity or register an inbound first"))
	case errors.Is(err, domain.ErrStoreUnavailable):
		return storeUnavailable(c)
	default:
		return internalError(c, err)
	}
}
