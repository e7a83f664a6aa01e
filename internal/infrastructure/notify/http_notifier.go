package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/tu-usuario/wms-inventory/internal/application/stock"
)

var _ stock.Notifier = (*HTTPNotifier)(nil)

// HTTPNotifier entrega alertas de stock bajo vía POST JSON al servicio externo.
// Mejor esfuerzo: todo fallo de entrega se registra y se devuelve como error
// benigno; nunca interrumpe el ajuste que lo originó. URL vacía = no-op.
type HTTPNotifier struct {
	url        string
	httpClient *http.Client
}

// NewHTTPNotifier construye el gateway con timeout acotado para que la entrega
// no pueda colgar la petición de ajuste.
func NewHTTPNotifier(url string, timeout time.Duration) *HTTPNotifier {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &HTTPNotifier{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// NotifyLowStock envía la alerta. Sin URL configurada registra y retorna nil.
func (n *HTTPNotifier) NotifyLowStock(ctx context.Context, productID, locationID, quantity int64) error {
	if n.url == "" {
		log.Warn().
			Str("evento", "notification-url-undefined").
			Msg("sin URL del servicio de notificaciones, se omite la alerta")
		return nil
	}

	payload := buildAlertPayload(productID, locationID, quantity)
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal alerta: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("crear request de alerta: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		log.Error().
			Str("evento", "alert-failed").
			Err(err).
			Int64("product_id", productID).
			Int64("location_id", locationID).
			Msg("fallo al entregar la alerta de stock bajo")
		return fmt.Errorf("entregar alerta: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Error().
			Str("evento", "alert-failed").
			Int("status", resp.StatusCode).
			Int64("product_id", productID).
			Int64("location_id", locationID).
			Msg("el servicio de notificaciones respondió con error")
		return fmt.Errorf("entregar alerta: status %d", resp.StatusCode)
	}
	return nil
}
