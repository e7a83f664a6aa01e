package dto

import "github.com/tu-usuario/wms-inventory/internal/domain/entity"

// StockOperationRequest body para POST /stock/inbound y POST /stock/outbound.
type StockOperationRequest struct {
	ProductID  int64 `json:"product_id"`
	LocationID int64 `json:"location_id"`
	Quantity   int64 `json:"quantity"`
}

// StockResponse salida de una fila de stock.
type StockResponse struct {
	ProductID  int64 `json:"product_id"`
	LocationID int64 `json:"location_id"`
	Quantity   int64 `json:"quantity"`
}

// ToStockResponse mapea la entidad al DTO de salida.
func ToStockResponse(s *entity.Stock) *StockResponse {
	if s == nil {
		return nil
	}
	return &StockResponse{
		ProductID:  s.ProductID,
		LocationID: s.LocationID,
		Quantity:   s.Quantity,
	}
}
