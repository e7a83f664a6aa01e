package entity

import "time"

// Product representa un producto (SKU) del catálogo del almacén.
// El stock se maneja por ubicación en Stock, nunca sobre el producto.
type Product struct {
	ID          int64
	SKU         string // único a nivel global
	Name        string
	Category    string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
