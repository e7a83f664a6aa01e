package dto

import (
	"github.com/tu-usuario/wms-inventory/internal/domain/entity"
	"github.com/tu-usuario/wms-inventory/pkg/timefmt"
)

// CreateLocationRequest entrada para crear o actualizar una ubicación.
type CreateLocationRequest struct {
	Aisle string `json:"aisle"`
	Bin   string `json:"bin"`
}

// LocationResponse salida de una ubicación.
type LocationResponse struct {
	ID        int64  `json:"id"`
	Aisle     string `json:"aisle"`
	Bin       string `json:"bin"`
	CreatedAt string `json:"created_at"`
}

// ToLocationResponse mapea la entidad al DTO de salida.
func ToLocationResponse(l *entity.Location) *LocationResponse {
	if l == nil {
		return nil
	}
	return &LocationResponse{
		ID:        l.ID,
		Aisle:     l.Aisle,
		Bin:       l.Bin,
		CreatedAt: timefmt.Format(l.CreatedAt),
	}
}
