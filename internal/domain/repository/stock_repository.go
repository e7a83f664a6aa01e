package repository

import "github.com/tu-usuario/wms-inventory/internal/domain/entity"

// StockRepository define el puerto para consultar y mutar stock por producto+ubicación.
// Las mutaciones se usan dentro de transacciones para garantizar consistencia.
type StockRepository interface {
	// Get devuelve nil (sin error) cuando no existe fila para el par.
	Get(productID, locationID int64) (*entity.Stock, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE);
	// nil cuando no existe.
	GetForUpdate(productID, locationID int64) (*entity.Stock, error)
	// Increment aplica el delta de forma atómica (upsert con incremento),
	// creando la fila si no existe, y devuelve el stock resultante.
	Increment(productID, locationID, delta int64) (*entity.Stock, error)
	List() ([]*entity.Stock, error)
}
