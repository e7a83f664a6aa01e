package entity

import "time"

// LowStockThreshold es el umbral fijo (exclusivo) de alerta de stock bajo:
// cantidades >= 20 no notifican; por debajo de 20, incluido 0, sí.
const LowStockThreshold = 20

// Stock representa la cantidad actual de un producto en una ubicación.
// Identidad compuesta (ProductID, LocationID); invariante: Quantity >= 0.
type Stock struct {
	ProductID  int64
	LocationID int64
	Quantity   int64
	UpdatedAt  time.Time
}

// IsLow indica si la cantidad quedó por debajo del umbral de alerta.
func (s *Stock) IsLow() bool {
	return s.Quantity < LowStockThreshold
}
