package usecase

import (
	"strings"

	"github.com/tu-usuario/wms-inventory/internal/application/dto"
	"github.com/tu-usuario/wms-inventory/internal/domain"
	"github.com/tu-usuario/wms-inventory/internal/domain/entity"
	"github.com/tu-usuario/wms-inventory/internal/domain/repository"
)

// LocationUseCase casos de uso CRUD para ubicaciones de almacenamiento.
type LocationUseCase struct {
	repo repository.LocationRepository
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(repo repository.LocationRepository) *LocationUseCase {
	return &LocationUseCase{repo: repo}
}

// Create crea una ubicación. Pasillo y casilla no pueden quedar vacíos tras
// recortar espacios; el par (aisle, bin) es único.
func (uc *LocationUseCase) Create(in dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	in.Aisle = strings.TrimSpace(in.Aisle)
	in.Bin = strings.TrimSpace(in.Bin)
	if in.Aisle == "" || in.Bin == "" {
		return nil, domain.ErrInvalidInput
	}

	existing, err := uc.repo.GetByAisleBin(in.Aisle, in.Bin)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	location := &entity.Location{
		Aisle: in.Aisle,
		Bin:   in.Bin,
	}
	if err := uc.repo.Create(location); err != nil {
		return nil, err
	}
	return dto.ToLocationResponse(location), nil
}

// Update reasigna pasillo y casilla de una ubicación existente.
func (uc *LocationUseCase) Update(id int64, in dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	location, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, domain.ErrLocationNotFound
	}

	location.Aisle = in.Aisle
	location.Bin = in.Bin
	if err := uc.repo.Update(location); err != nil {
		return nil, err
	}
	return dto.ToLocationResponse(location), nil
}

// GetByID obtiene una ubicación por ID.
func (uc *LocationUseCase) GetByID(id int64) (*dto.LocationResponse, error) {
	location, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, domain.ErrLocationNotFound
	}
	return dto.ToLocationResponse(location), nil
}

// List lista todas las ubicaciones.
func (uc *LocationUseCase) List() ([]dto.LocationResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.LocationResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *dto.ToLocationResponse(l))
	}
	return items, nil
}
