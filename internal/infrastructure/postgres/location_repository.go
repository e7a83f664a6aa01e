package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/wms-inventory/internal/domain"
	"github.com/tu-usuario/wms-inventory/internal/domain/entity"
	"github.com/tu-usuario/wms-inventory/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo implementación del puerto LocationRepository sobre PostgreSQL (usable con pool o tx).
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador de persistencia para ubicaciones. Pasar pool o tx (Querier).
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

// Create persiste una nueva ubicación; el store asigna ID y created_at.
func (r *LocationRepo) Create(location *entity.Location) error {
	query := `
		INSERT INTO locations (aisle, bin)
		VALUES ($1, $2)
		RETURNING id, created_at`
	err := r.q.QueryRow(context.Background(), query, location.Aisle, location.Bin).
		Scan(&location.ID, &location.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert location: %w", err)
	}
	return nil
}

// GetByID obtiene una ubicación por ID; nil cuando no existe.
func (r *LocationRepo) GetByID(id int64) (*entity.Location, error) {
	query := `
		SELECT id, aisle, bin, created_at
		FROM locations WHERE id = $1`
	var l entity.Location
	err := r.q.QueryRow(context.Background(), query, id).Scan(&l.ID, &l.Aisle, &l.Bin, &l.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	return &l, nil
}

// GetByAisleBin obtiene una ubicación por el par (aisle, bin); nil cuando no existe.
func (r *LocationRepo) GetByAisleBin(aisle, bin string) (*entity.Location, error) {
	query := `
		SELECT id, aisle, bin, created_at
		FROM locations WHERE aisle = $1 AND bin = $2`
	var l entity.Location
	err := r.q.QueryRow(context.Background(), query, aisle, bin).Scan(&l.ID, &l.Aisle, &l.Bin, &l.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location by aisle/bin: %w", err)
	}
	return &l, nil
}

// Update reasigna pasillo y casilla.
func (r *LocationRepo) Update(location *entity.Location) error {
	query := `
		UPDATE locations SET aisle = $2, bin = $3
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, location.ID, location.Aisle, location.Bin)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update location: %w", err)
	}
	return nil
}

// List lista todas las ubicaciones ordenadas por ID.
func (r *LocationRepo) List() ([]*entity.Location, error) {
	query := `
		SELECT id, aisle, bin, created_at
		FROM locations ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()

	var out []*entity.Location
	for rows.Next() {
		var l entity.Location
		if err := rows.Scan(&l.ID, &l.Aisle, &l.Bin, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		out = append(out, &l)
	}
	return out, rows.Err()
}
