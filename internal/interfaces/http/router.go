package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/wms-inventory/internal/application/stock"
	"github.com/tu-usuario/wms-inventory/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC  *usecase.ProductUseCase
	LocationUC *usecase.LocationUseCase
	StockUC    *stock.AdjustUseCase
	DB         Pinger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "WMS Inventory Management System"})
	})

	// Sondas de salud estilo Kubernetes
	healthHandler := NewHealthHandler(deps.DB)
	health := app.Group("/health")
	health.Get("/", healthHandler.Check)
	health.Get("/liveness", healthHandler.Liveness)
	health.Get("/readiness", healthHandler.Readiness)
	health.Get("/startup", healthHandler.Startup)

	// Products
	products := app.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)

	// Locations
	locations := app.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Post("/", locationHandler.Create)
	locations.Get("/", locationHandler.List)
	locations.Get("/:id", locationHandler.GetByID)
	locations.Put("/:id", locationHandler.Update)

	// Stock: entradas, salidas y consulta
	stockGroup := app.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC)
	stockGroup.Post("/inbound", stockHandler.Inbound)
	stockGroup.Post("/outbound", stockHandler.Outbound)
	stockGroup.Get("/", stockHandler.List)
}
