package stock

import (
	"context"

	"github.com/tu-usuario/wms-inventory/internal/domain"
	"github.com/tu-usuario/wms-inventory/internal/domain/entity"
	"github.com/tu-usuario/wms-inventory/internal/domain/repository"
)

// AdjustUseCase aplica ajustes de entrada/salida sobre el stock de un
// (producto, ubicación) con validación estricta y alerta de stock bajo como
// efecto secundario posterior al commit.
//
// Orden de validación (contrato observable, no reordenar):
//  1. signo de la cantidad
//  2. existencia: producto y ubicación en entradas; fila de stock en salidas
//  3. suficiencia en salidas
//  4. mutación + notificación
type AdjustUseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	locationRepo repository.LocationRepository
	stockRepo    repository.StockRepository
	notifier     Notifier
}

// NewAdjustUseCase construye el caso de uso. stockRepo se usa solo para
// lecturas fuera de transacción (listado); las mutaciones pasan por txRunner.
func NewAdjustUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
	stockRepo repository.StockRepository,
	notifier Notifier,
) *AdjustUseCase {
	return &AdjustUseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		locationRepo: locationRepo,
		stockRepo:    stockRepo,
		notifier:     notifier,
	}
}

// AdjustInbound incrementa el stock del par (productID, locationID) en quantity,
// creando la fila si no existe. Producto y ubicación deben existir.
func (uc *AdjustUseCase) AdjustInbound(ctx context.Context, productID, locationID, quantity int64) (*entity.Stock, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}

	location, err := uc.locationRepo.GetByID(locationID)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, domain.ErrLocationNotFound
	}

	var updated *entity.Stock
	err = uc.txRunner.Run(ctx, func(stockRepo repository.StockRepository) error {
		// Upsert atómico con incremento: crea la fila con quantity si no existe,
		// si existe suma y refresca updated_at. Una sola sentencia, sin carrera
		// find-then-act.
		updated, err = stockRepo.Increment(productID, locationID, quantity)
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.dispatchLowStockAlert(ctx, updated)
	return updated, nil
}

// AdjustOutbound descuenta quantity del stock existente del par. No consulta
// producto ni ubicación: solo importa la presencia de la fila de stock.
// Si la cantidad solicitada excede la existente, falla sin mutación parcial.
func (uc *AdjustUseCase) AdjustOutbound(ctx context.Context, productID, locationID, quantity int64) (*entity.Stock, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	var updated *entity.Stock
	err := uc.txRunner.Run(ctx, func(stockRepo repository.StockRepository) error {
		// Bloquea la fila (SELECT FOR UPDATE) para que la verificación de
		// suficiencia y el decremento sean atómicos frente a ajustes concurrentes.
		current, err := stockRepo.GetForUpdate(productID, locationID)
		if err != nil {
			return err
		}
		if current == nil {
			return domain.ErrStockNotFound
		}
		if current.Quantity < quantity {
			return domain.ErrInsufficientStock
		}
		updated, err = stockRepo.Increment(productID, locationID, -quantity)
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.dispatchLowStockAlert(ctx, updated)
	return updated, nil
}

// List devuelve todas las filas de stock.
func (uc *AdjustUseCase) List(ctx context.Context) ([]*entity.Stock, error) {
	return uc.stockRepo.List()
}

// dispatchLowStockAlert dispara la alerta si la cantidad resultante quedó por
// debajo del umbral. Mejor esfuerzo: el gateway ya registró el fallo, aquí se
// descarta el error benigno para no afectar el ajuste ya confirmado.
// No hay de-duplicación: cada ajuste bajo el umbral vuelve a notificar.
func (uc *AdjustUseCase) dispatchLowStockAlert(ctx context.Context, s *entity.Stock) {
	if s == nil || !s.IsLow() {
		return
	}
	_ = uc.notifier.NotifyLowStock(ctx, s.ProductID, s.LocationID, s.Quantity)
}
