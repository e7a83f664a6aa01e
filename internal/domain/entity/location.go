package entity

import "time"

// Location representa una posición física de almacenamiento (pasillo + casilla).
// El par (Aisle, Bin) es único.
type Location struct {
	ID        int64
	Aisle     string
	Bin       string
	CreatedAt time.Time
}
