package stock

import (
	"context"

	"github.com/tu-usuario/wms-inventory/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando un
// repositorio de stock atado a esa tx. Garantiza atomicidad del ajuste:
// la verificación de suficiencia y el decremento ven la misma fila bloqueada.
type TxRunner interface {
	Run(ctx context.Context, fn func(stockRepo repository.StockRepository) error) error
}

// Notifier define el puerto de salida hacia el servicio de alertas de stock bajo.
// La implementación concreta absorbe los fallos de entrega (los registra y devuelve
// un error benigno); el caso de uso nunca propaga ese error al caller.
type Notifier interface {
	NotifyLowStock(ctx context.Context, productID, locationID, quantity int64) error
}
