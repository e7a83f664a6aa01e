package notify

import "fmt"

// alertPayload es el cuerpo fijo de la alerta de stock bajo.
// Contrato de wire con el servicio de notificaciones: no cambiar los campos.
type alertPayload struct {
	Level    string `json:"level"`
	Category string `json:"category"`
	Title    string `json:"title"`
	Message  string `json:"message"`
}

func buildAlertPayload(productID, locationID, quantity int64) alertPayload {
	return alertPayload{
		Level:    "Warning",
		Category: "stock alerts",
		Title:    fmt.Sprintf("Low stock alert for product %d at location %d", productID, locationID),
		Message:  fmt.Sprintf("Stock level is %d. Consider restocking.", quantity),
	}
}
