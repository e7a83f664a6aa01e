package timefmt

import "time"

// LayoutUTC es el formato fijo de timestamps en todas las respuestas de la API:
// ISO 8601 en UTC con precisión de segundos y sufijo Z, sin fracciones.
// Ejemplo: 2023-01-01T00:00:00Z
const LayoutUTC = "2006-01-02T15:04:05Z"

// Format serializa un time.Time al formato de la API.
// Los instantes naive se asumen UTC; cualquier otra zona se convierte.
func Format(t time.Time) string {
	return t.UTC().Format(LayoutUTC)
}
