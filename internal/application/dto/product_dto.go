package dto

import (
	"github.com/tu-usuario/wms-inventory/internal/domain/entity"
	"github.com/tu-usuario/wms-inventory/pkg/timefmt"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	SKU         string `json:"sku"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
}

// ProductResponse salida de un producto. Timestamps en formato fijo UTC.
type ProductResponse struct {
	ID          int64  `json:"id"`
	SKU         string `json:"sku"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// ToProductResponse mapea la entidad al DTO de salida.
func ToProductResponse(p *entity.Product) *ProductResponse {
	if p == nil {
		return nil
	}
	return &ProductResponse{
		ID:          p.ID,
		SKU:         p.SKU,
		Name:        p.Name,
		Category:    p.Category,
		Description: p.Description,
		CreatedAt:   timefmt.Format(p.CreatedAt),
		UpdatedAt:   timefmt.Format(p.UpdatedAt),
	}
}
