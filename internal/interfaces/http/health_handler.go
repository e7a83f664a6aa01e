package http

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/wms-inventory/pkg/timefmt"
)

// Pinger comprueba la conectividad con el almacén de datos.
// *pgxpool.Pool la satisface directamente.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler expone las sondas de salud estilo Kubernetes.
type HealthHandler struct {
	db Pinger
}

// NewHealthHandler construye el handler de salud.
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

type componentStatus struct {
	Status  string         `json:"status"`
	Details map[string]any `json:"details,omitempty"`
}

type healthResponse struct {
	Status     string                     `json:"status"`
	Timestamp  string                     `json:"timestamp"`
	Components map[string]componentStatus `json:"components,omitempty"`
}

func (h *HealthHandler) checkDatabase(ctx context.Context) componentStatus {
	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		return componentStatus{
			Status:  "DOWN",
			Details: map[string]any{"error": err.Error()},
		}
	}
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0
	return componentStatus{
		Status:  "UP",
		Details: map[string]any{"responseTime": fmt.Sprintf("%.2fms", elapsed)},
	}
}

func (h *HealthHandler) fullCheck(c *fiber.Ctx) error {
	components := map[string]componentStatus{
		"application": {Status: "UP"},
		"database":    h.checkDatabase(c.Context()),
	}

	overall := "UP"
	for _, comp := range components {
		if comp.Status != "UP" {
			overall = "DOWN"
			break
		}
	}

	resp := healthResponse{
		Status:     overall,
		Timestamp:  timefmt.Format(time.Now()),
		Components: components,
	}
	if overall != "UP" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(resp)
	}
	return c.JSON(resp)
}

// Check godoc
// @Summary      Estado general del servicio
// @Tags         health
// @Produce      json
// @Success      200  {object}  healthResponse
// @Failure      503  {object}  healthResponse
// @Router       /health [get]
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	return h.fullCheck(c)
}

// Liveness godoc
// @Summary      Sonda de vida
// @Tags         health
// @Produce      json
// @Success      200  {object}  healthResponse
// @Router       /health/liveness [get]
func (h *HealthHandler) Liveness(c *fiber.Ctx) error {
	// La sonda de vida no toca la base de datos.
	return c.JSON(healthResponse{
		Status:    "UP",
		Timestamp: timefmt.Format(time.Now()),
	})
}

// Readiness godoc
// @Summary      Sonda de disponibilidad
// @Tags         health
// @Produce      json
// @Success      200  {object}  healthResponse
// @Failure      503  {object}  healthResponse
// @Router       /health/readiness [get]
func (h *HealthHandler) Readiness(c *fiber.Ctx) error {
	return h.fullCheck(c)
}

// Startup godoc
// @Summary      Sonda de arranque
// @Tags         health
// @Produce      json
// @Success      200  {object}  healthResponse
// @Failure      503  {object}  healthResponse
// @Router       /health/startup [get]
func (h *HealthHandler) Startup(c *fiber.Ctx) error {
	return h.fullCheck(c)
}
