package stock_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/wms-inventory/internal/application/stock"
	"github.com/tu-usuario/wms-inventory/internal/domain"
	"github.com/tu-usuario/wms-inventory/internal/domain/entity"
	"github.com/tu-usuario/wms-inventory/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los puertos del caso de uso
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[int64]*entity.Product
	getCalls int
}

func (f *fakeProductRepo) Create(p *entity.Product) error { panic("no usado") }
func (f *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	f.getCalls++
	return f.products[id], nil
}
func (f *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) { panic("no usado") }
func (f *fakeProductRepo) List() ([]*entity.Product, error)            { panic("no usado") }

type fakeLocationRepo struct {
	locations map[int64]*entity.Location
	getCalls  int
}

func (f *fakeLocationRepo) Create(l *entity.Location) error { panic("no usado") }
func (f *fakeLocationRepo) GetByID(id int64) (*entity.Location, error) {
	f.getCalls++
	return f.locations[id], nil
}
func (f *fakeLocationRepo) GetByAisleBin(aisle, bin string) (*entity.Location, error) {
	panic("no usado")
}
func (f *fakeLocationRepo) Update(l *entity.Location) error   { panic("no usado") }
func (f *fakeLocationRepo) List() ([]*entity.Location, error) { panic("no usado") }

type fakeStockRepo struct {
	rows           map[string]*entity.Stock
	incrementCalls int
}

func stockKey(productID, locationID int64) string {
	return fmt.Sprintf("%d/%d", productID, locationID)
}

func (f *fakeStockRepo) Get(productID, locationID int64) (*entity.Stock, error) {
	return f.rows[stockKey(productID, locationID)], nil
}

func (f *fakeStockRepo) GetForUpdate(productID, locationID int64) (*entity.Stock, error) {
	return f.rows[stockKey(productID, locationID)], nil
}

func (f *fakeStockRepo) Increment(productID, locationID, delta int64) (*entity.Stock, error) {
	f.incrementCalls++
	key := stockKey(productID, locationID)
	s, ok := f.rows[key]
	if !ok {
		s = &entity.Stock{ProductID: productID, LocationID: locationID}
		f.rows[key] = s
	}
	s.Quantity += delta
	s.UpdatedAt = time.Now().UTC()
	return &entity.Stock{ProductID: s.ProductID, LocationID: s.LocationID, Quantity: s.Quantity, UpdatedAt: s.UpdatedAt}, nil
}

func (f *fakeStockRepo) List() ([]*entity.Stock, error) {
	out := make([]*entity.Stock, 0, len(f.rows))
	for _, s := range f.rows {
		out = append(out, s)
	}
	return out, nil
}

type fakeTxRunner struct {
	stockRepo *fakeStockRepo
	beginErr  error
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(repository.StockRepository) error) error {
	if f.beginErr != nil {
		return f.beginErr
	}
	return fn(f.stockRepo)
}

type notifiedAlert struct {
	ProductID  int64
	LocationID int64
	Quantity   int64
}

type fakeNotifier struct {
	alerts []notifiedAlert
	err    error
}

func (f *fakeNotifier) NotifyLowStock(ctx context.Context, productID, locationID, quantity int64) error {
	f.alerts = append(f.alerts, notifiedAlert{productID, locationID, quantity})
	return f.err
}

// ──────────────────────────────────────────────────────────────────────────────
// Armado del caso de uso con estado inicial
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	uc        *stock.AdjustUseCase
	products  *fakeProductRepo
	locations *fakeLocationRepo
	stocks    *fakeStockRepo
	notifier  *fakeNotifier
}

// newFixture crea el caso de uso con el producto 1 y la ubicación 1 existentes.
func newFixture(t *testing.T, initial map[string]*entity.Stock) *fixture {
	t.Helper()
	if initial == nil {
		initial = map[string]*entity.Stock{}
	}
	products := &fakeProductRepo{products: map[int64]*entity.Product{
		1: {ID: 1, SKU: "SKU-001", Name: "Cajas"},
	}}
	locations := &fakeLocationRepo{locations: map[int64]*entity.Location{
		1: {ID: 1, Aisle: "A1", Bin: "B1"},
	}}
	stocks := &fakeStockRepo{rows: initial}
	notifier := &fakeNotifier{}
	uc := stock.NewAdjustUseCase(&fakeTxRunner{stockRepo: stocks}, products, locations, stocks, notifier)
	return &fixture{uc: uc, products: products, locations: locations, stocks: stocks, notifier: notifier}
}

func existingStock(productID, locationID, quantity int64) map[string]*entity.Stock {
	return map[string]*entity.Stock{
		stockKey(productID, locationID): {ProductID: productID, LocationID: locationID, Quantity: quantity},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Entradas (inbound)
// ──────────────────────────────────────────────────────────────────────────────

// Escenario A: almacén vacío, entrada de 10 → crea la fila y notifica (10 < 20).
func TestAdjustInbound_CreaFilaYNotifica(t *testing.T) {
	f := newFixture(t, nil)

	s, err := f.uc.AdjustInbound(context.Background(), 1, 1, 10)
	require.NoError(t, err)

	assert.Equal(t, int64(1), s.ProductID)
	assert.Equal(t, int64(1), s.LocationID)
	assert.Equal(t, int64(10), s.Quantity)
	require.Len(t, f.notifier.alerts, 1, "cantidad resultante 10 < 20 debe notificar exactamente una vez")
	assert.Equal(t, notifiedAlert{1, 1, 10}, f.notifier.alerts[0])
}

// Escenario B: stock 10 + entrada de 15 → 25, sin notificación (25 >= 20).
func TestAdjustInbound_IncrementaSinNotificar(t *testing.T) {
	f := newFixture(t, existingStock(1, 1, 10))

	s, err := f.uc.AdjustInbound(context.Background(), 1, 1, 15)
	require.NoError(t, err)

	assert.Equal(t, int64(25), s.Quantity)
	assert.Empty(t, f.notifier.alerts, "25 >= 20 no debe notificar")
}

// Entradas repetidas acumulan: q1 + q2.
func TestAdjustInbound_EntradasRepetidasAcumulan(t *testing.T) {
	f := newFixture(t, nil)

	_, err := f.uc.AdjustInbound(context.Background(), 1, 1, 7)
	require.NoError(t, err)
	s, err := f.uc.AdjustInbound(context.Background(), 1, 1, 5)
	require.NoError(t, err)

	assert.Equal(t, int64(12), s.Quantity)
}

// Escenario F: cantidad 0 falla antes de tocar el store o el notificador.
func TestAdjustInbound_CantidadCeroRechazada(t *testing.T) {
	f := newFixture(t, nil)

	_, err := f.uc.AdjustInbound(context.Background(), 1, 1, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	assert.Zero(t, f.stocks.incrementCalls, "no debe haber mutación")
	assert.Empty(t, f.notifier.alerts, "no debe haber notificación")
	assert.Empty(t, f.stocks.rows, "no debe crearse fila alguna")
}

func TestAdjustInbound_CantidadNegativaRechazada(t *testing.T) {
	f := newFixture(t, nil)

	_, err := f.uc.AdjustInbound(context.Background(), 1, 1, -5)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

// El chequeo de cantidad va antes que el de existencia: producto inexistente
// con cantidad inválida reporta cantidad inválida y no consulta repositorios.
func TestAdjustInbound_OrdenDeValidacion_CantidadPrimero(t *testing.T) {
	f := newFixture(t, nil)

	_, err := f.uc.AdjustInbound(context.Background(), 99, 99, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	assert.Zero(t, f.products.getCalls, "no debe consultarse el producto")
	assert.Zero(t, f.locations.getCalls, "no debe consultarse la ubicación")
}

// Producto antes que ubicación: ambos inexistentes reporta producto.
func TestAdjustInbound_ProductoInexistente(t *testing.T) {
	f := newFixture(t, nil)

	_, err := f.uc.AdjustInbound(context.Background(), 99, 99, 5)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.Zero(t, f.locations.getCalls, "la ubicación no debe consultarse si el producto no existe")
	assert.Zero(t, f.stocks.incrementCalls)
}

func TestAdjustInbound_UbicacionInexistente(t *testing.T) {
	f := newFixture(t, nil)

	_, err := f.uc.AdjustInbound(context.Background(), 1, 99, 5)
	assert.ErrorIs(t, err, domain.ErrLocationNotFound)
	assert.Zero(t, f.stocks.incrementCalls)
}

// ──────────────────────────────────────────────────────────────────────────────
// Salidas (outbound)
// ──────────────────────────────────────────────────────────────────────────────

// Escenario C: stock 25, salida de 20 → 5 y notifica.
func TestAdjustOutbound_DecrementaYNotifica(t *testing.T) {
	f := newFixture(t, existingStock(1, 1, 25))

	s, err := f.uc.AdjustOutbound(context.Background(), 1, 1, 20)
	require.NoError(t, err)

	assert.Equal(t, int64(5), s.Quantity)
	require.Len(t, f.notifier.alerts, 1)
	assert.Equal(t, notifiedAlert{1, 1, 5}, f.notifier.alerts[0])
}

// Escenario D: stock 5, salida de 10 → stock insuficiente, fila intacta.
func TestAdjustOutbound_InsuficienteSinMutacionParcial(t *testing.T) {
	f := newFixture(t, existingStock(1, 1, 5))

	_, err := f.uc.AdjustOutbound(context.Background(), 1, 1, 10)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	remaining, _ := f.stocks.Get(1, 1)
	assert.Equal(t, int64(5), remaining.Quantity, "la cantidad debe quedar exactamente como estaba")
	assert.Zero(t, f.stocks.incrementCalls, "no debe aplicarse decremento parcial")
	assert.Empty(t, f.notifier.alerts)
}

// Escenario E: salida sobre un par sin fila de stock.
func TestAdjustOutbound_SinFilaDeStock(t *testing.T) {
	f := newFixture(t, nil)

	_, err := f.uc.AdjustOutbound(context.Background(), 9, 9, 1)
	assert.ErrorIs(t, err, domain.ErrStockNotFound)
}

// La salida no verifica producto ni ubicación: solo importa la fila de stock.
func TestAdjustOutbound_NoConsultaProductoNiUbicacion(t *testing.T) {
	// Par (7, 7) con stock pero sin producto ni ubicación en los repos.
	f := newFixture(t, existingStock(7, 7, 30))

	s, err := f.uc.AdjustOutbound(context.Background(), 7, 7, 4)
	require.NoError(t, err)

	assert.Equal(t, int64(26), s.Quantity)
	assert.Zero(t, f.products.getCalls)
	assert.Zero(t, f.locations.getCalls)
}

func TestAdjustOutbound_CantidadCeroRechazada(t *testing.T) {
	f := newFixture(t, existingStock(1, 1, 5))

	_, err := f.uc.AdjustOutbound(context.Background(), 1, 1, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	assert.Zero(t, f.stocks.incrementCalls)
}

// Salida que deja el stock exactamente en 0 notifica (0 < 20).
func TestAdjustOutbound_HastaCeroNotifica(t *testing.T) {
	f := newFixture(t, existingStock(1, 1, 15))

	s, err := f.uc.AdjustOutbound(context.Background(), 1, 1, 15)
	require.NoError(t, err)

	assert.Equal(t, int64(0), s.Quantity)
	require.Len(t, f.notifier.alerts, 1)
	assert.Equal(t, int64(0), f.notifier.alerts[0].Quantity)
}

// ──────────────────────────────────────────────────────────────────────────────
// Umbral de alerta
// ──────────────────────────────────────────────────────────────────────────────

// El umbral de 20 es exclusivo: 19 notifica, 20 y 21 no.
func TestUmbral_BordeExclusivo(t *testing.T) {
	cases := []struct {
		name     string
		final    int64
		notifies bool
	}{
		{"resultado 19 notifica", 19, true},
		{"resultado 20 no notifica", 20, false},
		{"resultado 21 no notifica", 21, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, nil)
			_, err := f.uc.AdjustInbound(context.Background(), 1, 1, tc.final)
			require.NoError(t, err)
			if tc.notifies {
				assert.Len(t, f.notifier.alerts, 1)
			} else {
				assert.Empty(t, f.notifier.alerts)
			}
		})
	}
}

// Sin de-duplicación: cada ajuste bajo el umbral vuelve a notificar.
func TestUmbral_SinDeduplicacion(t *testing.T) {
	f := newFixture(t, nil)

	_, err := f.uc.AdjustInbound(context.Background(), 1, 1, 5)
	require.NoError(t, err)
	_, err = f.uc.AdjustInbound(context.Background(), 1, 1, 5)
	require.NoError(t, err)

	assert.Len(t, f.notifier.alerts, 2, "ajustes consecutivos bajo el umbral notifican cada vez")
}

// El fallo del notificador no afecta el ajuste ya confirmado.
func TestNotificacion_FalloNoRompeElAjuste(t *testing.T) {
	f := newFixture(t, nil)
	f.notifier.err = errors.New("servicio de alertas caído")

	s, err := f.uc.AdjustInbound(context.Background(), 1, 1, 3)
	require.NoError(t, err, "el ajuste debe confirmarse aunque la alerta falle")
	assert.Equal(t, int64(3), s.Quantity)

	remaining, _ := f.stocks.Get(1, 1)
	assert.Equal(t, int64(3), remaining.Quantity, "la mutación no debe revertirse")
}

// ──────────────────────────────────────────────────────────────────────────────
// Fallos de transacción y listado
// ──────────────────────────────────────────────────────────────────────────────

func TestAdjust_ErrorDeTransaccionSePropaga(t *testing.T) {
	products := &fakeProductRepo{products: map[int64]*entity.Product{1: {ID: 1}}}
	locations := &fakeLocationRepo{locations: map[int64]*entity.Location{1: {ID: 1}}}
	stocks := &fakeStockRepo{rows: map[string]*entity.Stock{}}
	notifier := &fakeNotifier{}
	runner := &fakeTxRunner{stockRepo: stocks, beginErr: domain.ErrStoreUnavailable}
	uc := stock.NewAdjustUseCase(runner, products, locations, stocks, notifier)

	_, err := uc.AdjustInbound(context.Background(), 1, 1, 10)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.Empty(t, notifier.alerts, "sin commit no debe haber notificación")
}

func TestList_DevuelveTodasLasFilas(t *testing.T) {
	rows := existingStock(1, 1, 10)
	rows[stockKey(2, 1)] = &entity.Stock{ProductID: 2, LocationID: 1, Quantity: 40}
	f := newFixture(t, rows)

	list, err := f.uc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
