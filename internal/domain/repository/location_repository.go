package repository

import "github.com/tu-usuario/wms-inventory/internal/domain/entity"

// LocationRepository define el puerto de persistencia para Location (DIP).
type LocationRepository interface {
	Create(location *entity.Location) error
	// GetByID devuelve nil (sin error) cuando la ubicación no existe.
	GetByID(id int64) (*entity.Location, error)
	GetByAisleBin(aisle, bin string) (*entity.Location, error)
	Update(location *entity.Location) error
	List() ([]*entity.Location, error)
}
