package notify

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// El payload es un contrato de wire fijo con el servicio de notificaciones.
func TestBuildAlertPayload_FormaFija(t *testing.T) {
	p := buildAlertPayload(1, 101, 15)

	assert.Equal(t, "Warning", p.Level)
	assert.Equal(t, "stock alerts", p.Category)
	assert.Equal(t, "Low stock alert for product 1 at location 101", p.Title)
	assert.Equal(t, "Stock level is 15. Consider restocking.", p.Message)
}

func TestHTTPNotifier_EntregaExitosa(t *testing.T) {
	var got map[string]string
	var contentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &got))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"success"}`))
	}))
	defer srv.Close()

	n := NewHTTPNotifier(srv.URL, 2*time.Second)
	err := n.NotifyLowStock(context.Background(), 1, 101, 15)
	require.NoError(t, err)

	assert.Equal(t, "application/json", contentType)
	assert.Equal(t, map[string]string{
		"level":    "Warning",
		"category": "stock alerts",
		"title":    "Low stock alert for product 1 at location 101",
		"message":  "Stock level is 15. Consider restocking.",
	}, got)
}

// Respuesta no-2xx: el error se devuelve como valor benigno, no como pánico.
func TestHTTPNotifier_RespuestaDeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	n := NewHTTPNotifier(srv.URL, 2*time.Second)
	err := n.NotifyLowStock(context.Background(), 1, 1, 5)
	assert.Error(t, err)
}

// Servicio inalcanzable: mismo contrato, error benigno.
func TestHTTPNotifier_ServicioInalcanzable(t *testing.T) {
	n := NewHTTPNotifier("http://127.0.0.1:1", 500*time.Millisecond)
	err := n.NotifyLowStock(context.Background(), 1, 1, 5)
	assert.Error(t, err)
}

// URL vacía: no-op registrado, sin error y sin petición alguna.
func TestHTTPNotifier_SinURLConfigurada(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	n := NewHTTPNotifier("", 2*time.Second)
	err := n.NotifyLowStock(context.Background(), 1, 1, 5)

	require.NoError(t, err)
	assert.False(t, called, "sin URL no debe salir ninguna petición")
}
