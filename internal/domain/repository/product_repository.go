package repository

import "github.com/tu-usuario/wms-inventory/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	// Create persiste el producto y asigna ID y timestamps desde el store.
	Create(product *entity.Product) error
	// GetByID devuelve nil (sin error) cuando el producto no existe.
	GetByID(id int64) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	List() ([]*entity.Product, error)
}
