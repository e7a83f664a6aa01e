package dto

import "github.com/google/uuid"

// Niveles de criticidad del envelope de error.
const (
	CriticalityCritical    = "critical"
	CriticalityNonCritical = "non-critical"
	CriticalityUnknown     = "unknown"
)

// ErrorResponse envelope uniforme de error de la API.
// ID es un identificador opaco de correlación (uuid v4) por ocurrencia.
type ErrorResponse struct {
	Criticality        string `json:"criticality"`
	ID                 string `json:"id"`
	Detail             string `json:"detail"`
	RecoverySuggestion string `json:"recoverySuggestion,omitempty"`
}

// NewError construye un envelope con criticidad "critical" por defecto.
func NewError(detail string) ErrorResponse {
	return ErrorResponse{
		Criticality: CriticalityCritical,
		ID:          uuid.New().String(),
		Detail:      detail,
	}
}

// WithRecovery añade una sugerencia de recuperación legible para el cliente.
func (e ErrorResponse) WithRecovery(suggestion string) ErrorResponse {
	e.RecoverySuggestion = suggestion
	return e
}

// WithCriticality fija la criticidad ("critical", "non-critical", "unknown").
func (e ErrorResponse) WithCriticality(criticality string) ErrorResponse {
	e.Criticality = criticality
	return e
}
