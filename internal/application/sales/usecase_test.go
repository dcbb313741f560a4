package sales_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marvinbvivass/admin-sub001/internal/application/dto"
	"github.com/marvinbvivass/admin-sub001/internal/application/sales"
	"github.com/marvinbvivass/admin-sub001/internal/domain"
	"github.com/marvinbvivass/admin-sub001/internal/domain/entity"
	"github.com/marvinbvivass/admin-sub001/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria. Replican el contrato de los repositorios de PostgreSQL:
// Decrement revalida en escritura y el TxRunner revierte todo si fn falla.
// ──────────────────────────────────────────────────────────────────────────────

type fakeStockRepo struct {
	entries map[string]*entity.StockEntry // "vehicleID|productID"
}

func newFakeStockRepo() *fakeStockRepo {
	return &fakeStockRepo{entries: make(map[string]*entity.StockEntry)}
}

func stockKey(vehicleID, productID string) string { return vehicleID + "|" + productID }

func (r *fakeStockRepo) Get(vehicleID, productID string) (*entity.StockEntry, error) {
	e, ok := r.entries[stockKey(vehicleID, productID)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *fakeStockRepo) ListByVehicle(vehicleID string) ([]*entity.StockEntry, error) {
	var out []*entity.StockEntry
	for _, e := range r.entries {
		if e.VehicleID == vehicleID {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeStockRepo) Upsert(entry *entity.StockEntry) error {
	key := stockKey(entry.VehicleID, entry.ProductID)
	if existing, ok := r.entries[key]; ok {
		existing.Quantity += entry.Quantity
		return nil
	}
	cp := *entry
	r.entries[key] = &cp
	return nil
}

func (r *fakeStockRepo) Decrement(vehicleID, productID string, amount int64) error {
	e, ok := r.entries[stockKey(vehicleID, productID)]
	if !ok {
		return domain.ErrNotFound
	}
	// Revalidación en escritura: nunca deja la cantidad negativa.
	if e.Quantity < amount {
		return domain.ErrInsufficientStock
	}
	e.Quantity -= amount
	return nil
}

func (r *fakeStockRepo) snapshot() map[string]entity.StockEntry {
	snap := make(map[string]entity.StockEntry, len(r.entries))
	for k, e := range r.entries {
		snap[k] = *e
	}
	return snap
}

func (r *fakeStockRepo) restore(snap map[string]entity.StockEntry) {
	r.entries = make(map[string]*entity.StockEntry, len(snap))
	for k, e := range snap {
		cp := e
		r.entries[k] = &cp
	}
}

type fakeSaleRepo struct {
	sales map[string]*entity.Sale
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{sales: make(map[string]*entity.Sale)}
}

func (r *fakeSaleRepo) Create(sale *entity.Sale) error {
	r.sales[sale.ID] = sale
	return nil
}

func (r *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) {
	s, ok := r.sales[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

func (r *fakeSaleRepo) ListByOperatorAndRange(operatorID string, from, to time.Time) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range r.sales {
		if s.OperatorID == operatorID && !s.Date.Before(from) && !s.Date.After(to) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSaleRepo) Delete(id string) error {
	if _, ok := r.sales[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.sales, id)
	return nil
}

func (r *fakeSaleRepo) snapshot() map[string]*entity.Sale {
	snap := make(map[string]*entity.Sale, len(r.sales))
	for k, v := range r.sales {
		snap[k] = v
	}
	return snap
}

// fakeTxRunner replica la semántica transaccional: si fn retorna error, el
// estado de ventas y stock vuelve al punto previo a la transacción.
type fakeTxRunner struct {
	saleRepo  *fakeSaleRepo
	stockRepo *fakeStockRepo
}

func (tx *fakeTxRunner) RunSale(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	stockRepo repository.StockRepository,
) error) error {
	salesSnap := tx.saleRepo.snapshot()
	stockSnap := tx.stockRepo.snapshot()
	if err := fn(tx.saleRepo, tx.stockRepo); err != nil {
		tx.saleRepo.sales = salesSnap
		tx.stockRepo.restore(stockSnap)
		return err
	}
	return nil
}

type fakeClientRepo struct{ clients map[string]*entity.Client }

func (r *fakeClientRepo) GetByID(id string) (*entity.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return c, nil
}
func (r *fakeClientRepo) List(zone string) ([]*entity.Client, error) { return nil, nil }
func (r *fakeClientRepo) Create(c *entity.Client) error              { return nil }
func (r *fakeClientRepo) Update(c *entity.Client) error              { return nil }

type fakeVehicleRepo struct{ vehicles map[string]*entity.Vehicle }

func (r *fakeVehicleRepo) GetByID(id string) (*entity.Vehicle, error) {
	v, ok := r.vehicles[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return v, nil
}
func (r *fakeVehicleRepo) List() ([]*entity.Vehicle, error) { return nil, nil }
func (r *fakeVehicleRepo) Create(v *entity.Vehicle) error   { return nil }

type fakeRateRepo struct{ rates entity.RateSnapshot }

func (r *fakeRateRepo) Get() (entity.RateSnapshot, error) { return r.rates, nil }
func (r *fakeRateRepo) Put(rates entity.RateSnapshot) error {
	r.rates = rates
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

const (
	opID       = "op-001"
	clientID   = "c1"
	vehicleID  = "v1"
	productAID = "p1"
	productBID = "p2"
)

type fixture struct {
	uc        *sales.CommitSaleUseCase
	stockRepo *fakeStockRepo
	saleRepo  *fakeSaleRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	stockRepo := newFakeStockRepo()
	saleRepo := newFakeSaleRepo()
	clientRepo := &fakeClientRepo{clients: map[string]*entity.Client{
		clientID: {ID: clientID, Name: "Bodega La Esquina", TaxID: "J-12345678-9"},
	}}
	vehicleRepo := &fakeVehicleRepo{vehicles: map[string]*entity.Vehicle{
		vehicleID: {ID: vehicleID, Make: "Ford", Model: "Cargo", Plate: "ABC-123"},
	}}
	rateRepo := &fakeRateRepo{rates: entity.RateSnapshot{
		RateBs:  decimal.NewFromFloat(36.50),
		RateCop: decimal.NewFromFloat(4100),
	}}

	require.NoError(t, stockRepo.Upsert(&entity.StockEntry{
		VehicleID: vehicleID, ProductID: productAID,
		Name: "Harina PAN", Presentation: "1kg",
		Price: decimal.NewFromFloat(2.50), Quantity: 10,
	}))
	require.NoError(t, stockRepo.Upsert(&entity.StockEntry{
		VehicleID: vehicleID, ProductID: productBID,
		Name: "Café Madrid", Presentation: "250g",
		Price: decimal.NewFromFloat(3.75), Quantity: 6,
	}))

	tx := &fakeTxRunner{saleRepo: saleRepo, stockRepo: stockRepo}
	uc := sales.NewCommitSaleUseCase(tx, clientRepo, vehicleRepo, stockRepo, saleRepo, rateRepo)
	return &fixture{uc: uc, stockRepo: stockRepo, saleRepo: saleRepo}
}

func (f *fixture) stockOf(t *testing.T, productID string) int64 {
	t.Helper()
	e, err := f.stockRepo.Get(vehicleID, productID)
	require.NoError(t, err)
	return e.Quantity
}

func saleRequest(lines ...dto.CommitSaleLineRequest) dto.CommitSaleRequest {
	return dto.CommitSaleRequest{ClientID: clientID, VehicleID: vehicleID, Lines: lines}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests CommitSale
// ──────────────────────────────────────────────────────────────────────────────

// Venta confirmada: descuenta stock, captura precio vigente y snapshot de tasas.
func TestCommitSale_VentaValida_DescuentaStock(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.CommitSale(context.Background(), opID, saleRequest(
		dto.CommitSaleLineRequest{ProductID: productAID, Quantity: 4},
		dto.CommitSaleLineRequest{ProductID: productBID, Quantity: 2},
	))
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, dto.SaleStatusCommitted, resp.Status)
	assert.Equal(t, opID, resp.OperatorID)
	assert.Equal(t, "Bodega La Esquina", resp.ClientName)
	require.Len(t, resp.Lines, 2)

	// Precio unitario copiado del stock, subtotal = cantidad × precio.
	assert.True(t, resp.Lines[0].UnitPrice.Equal(decimal.NewFromFloat(2.50)))
	assert.True(t, resp.Lines[0].Subtotal.Equal(decimal.NewFromFloat(10.00)))
	assert.True(t, resp.Lines[1].Subtotal.Equal(decimal.NewFromFloat(7.50)))

	// Total == suma de subtotales.
	assert.True(t, resp.Total.Equal(decimal.NewFromFloat(17.50)),
		"el total debe ser la suma de los subtotales")

	// Snapshot de tasas al momento de la venta.
	assert.True(t, resp.RateBs.Equal(decimal.NewFromFloat(36.50)))
	assert.True(t, resp.RateCop.Equal(decimal.NewFromFloat(4100)))

	assert.Equal(t, int64(6), f.stockOf(t, productAID))
	assert.Equal(t, int64(4), f.stockOf(t, productBID))
}

// Dos ventas consecutivas sobre el mismo producto descuentan acumulado.
func TestCommitSale_VentasConsecutivas(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.CommitSale(ctx, opID, saleRequest(
		dto.CommitSaleLineRequest{ProductID: productAID, Quantity: 4},
	))
	require.NoError(t, err)

	_, err = f.uc.CommitSale(ctx, opID, saleRequest(
		dto.CommitSaleLineRequest{ProductID: productAID, Quantity: 5},
	))
	require.NoError(t, err)

	assert.Equal(t, int64(1), f.stockOf(t, productAID))
	assert.Len(t, f.saleRepo.sales, 2)
}

// Pedir más de lo disponible rechaza la venta completa sin mutar nada,
// nombrando producto, solicitado y disponible.
func TestCommitSale_StockInsuficiente_RechazaSinMutar(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.CommitSale(context.Background(), opID, saleRequest(
		dto.CommitSaleLineRequest{ProductID: productAID, Quantity: 12},
	))
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))

	var shortage *sales.ShortageError
	require.ErrorAs(t, err, &shortage)
	assert.Equal(t, productAID, shortage.ProductID)
	assert.Equal(t, "Harina PAN", shortage.Name)
	assert.Equal(t, int64(12), shortage.Requested)
	assert.Equal(t, int64(10), shortage.Available)

	assert.Equal(t, int64(10), f.stockOf(t, productAID), "el stock no debe mutarse")
	assert.Empty(t, f.saleRepo.sales, "no debe persistirse ninguna venta")
}

// Una línea insuficiente rechaza también las líneas que sí alcanzaban.
func TestCommitSale_UnaLineaInsuficiente_RechazaTodo(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.CommitSale(context.Background(), opID, saleRequest(
		dto.CommitSaleLineRequest{ProductID: productAID, Quantity: 3},
		dto.CommitSaleLineRequest{ProductID: productBID, Quantity: 7}, // solo hay 6
	))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))

	assert.Equal(t, int64(10), f.stockOf(t, productAID))
	assert.Equal(t, int64(6), f.stockOf(t, productBID))
	assert.Empty(t, f.saleRepo.sales)
}

// La misma clave repetida pasa la validación línea a línea pero el decremento
// revalida en escritura: el TxRunner revierte venta y stock completos.
func TestCommitSale_RevalidacionEnEscritura_RevierteTodo(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.CommitSale(context.Background(), opID, saleRequest(
		dto.CommitSaleLineRequest{ProductID: productAID, Quantity: 6},
		dto.CommitSaleLineRequest{ProductID: productAID, Quantity: 6}, // 12 > 10 acumulado
	))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))

	var shortage *sales.ShortageError
	require.ErrorAs(t, err, &shortage)
	assert.Equal(t, int64(6), shortage.Requested)
	assert.Equal(t, int64(4), shortage.Available, "disponible tras el primer decremento")

	assert.Equal(t, int64(10), f.stockOf(t, productAID), "la transacción debe revertirse completa")
	assert.Empty(t, f.saleRepo.sales)
}

// Cantidades en cero se ignoran; si todas son cero la venta está vacía.
func TestCommitSale_TodasLasCantidadesEnCero_VentaVacia(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.CommitSale(context.Background(), opID, saleRequest(
		dto.CommitSaleLineRequest{ProductID: productAID, Quantity: 0},
		dto.CommitSaleLineRequest{ProductID: productBID, Quantity: 0},
	))
	assert.ErrorIs(t, err, domain.ErrEmptySale)
	assert.Equal(t, int64(10), f.stockOf(t, productAID))
	assert.Empty(t, f.saleRepo.sales)
}

func TestCommitSale_SinLineas_VentaVacia(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.CommitSale(context.Background(), opID, saleRequest())
	assert.ErrorIs(t, err, domain.ErrEmptySale)
}

// Las líneas en cero se filtran pero las positivas se venden normal.
func TestCommitSale_CerosMezcladosConPositivos(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.CommitSale(context.Background(), opID, saleRequest(
		dto.CommitSaleLineRequest{ProductID: productAID, Quantity: 0},
		dto.CommitSaleLineRequest{ProductID: productBID, Quantity: 2},
	))
	require.NoError(t, err)
	require.Len(t, resp.Lines, 1)
	assert.Equal(t, productBID, resp.Lines[0].ProductID)
	assert.Equal(t, int64(10), f.stockOf(t, productAID))
	assert.Equal(t, int64(4), f.stockOf(t, productBID))
}

func TestCommitSale_CantidadNegativa_EntradaInvalida(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.CommitSale(context.Background(), opID, saleRequest(
		dto.CommitSaleLineRequest{ProductID: productAID, Quantity: -1},
	))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCommitSale_SinOperador_NoAutorizado(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.CommitSale(context.Background(), "", saleRequest(
		dto.CommitSaleLineRequest{ProductID: productAID, Quantity: 1},
	))
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestCommitSale_SinCliente_Rechaza(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.CommitSale(context.Background(), opID, dto.CommitSaleRequest{
		VehicleID: vehicleID,
		Lines:     []dto.CommitSaleLineRequest{{ProductID: productAID, Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrMissingClient)
}

func TestCommitSale_SinVehiculo_Rechaza(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.CommitSale(context.Background(), opID, dto.CommitSaleRequest{
		ClientID: clientID,
		Lines:    []dto.CommitSaleLineRequest{{ProductID: productAID, Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrMissingVehicle)
}

// Producto no provisionado en el vehículo → no encontrado, sin mutaciones.
func TestCommitSale_ProductoNoCargado_NoEncontrado(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.CommitSale(context.Background(), opID, saleRequest(
		dto.CommitSaleLineRequest{ProductID: "p-inexistente", Quantity: 1},
	))
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, f.saleRepo.sales)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests GetSale / ListOpenSales
// ──────────────────────────────────────────────────────────────────────────────

func TestGetSale_SoloElOperadorQueVendio(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	resp, err := f.uc.CommitSale(ctx, opID, saleRequest(
		dto.CommitSaleLineRequest{ProductID: productAID, Quantity: 1},
	))
	require.NoError(t, err)

	got, err := f.uc.GetSale(ctx, opID, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, resp.ID, got.ID)

	_, err = f.uc.GetSale(ctx, "op-otro", resp.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden,
		"otro operador no debe poder ver la venta")
}

func TestListOpenSales_SoloVentasDelDia(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.CommitSale(ctx, opID, saleRequest(
		dto.CommitSaleLineRequest{ProductID: productAID, Quantity: 1},
	))
	require.NoError(t, err)

	today, err := f.uc.ListOpenSales(ctx, opID, time.Now())
	require.NoError(t, err)
	assert.Len(t, today, 1)

	yesterday, err := f.uc.ListOpenSales(ctx, opID, time.Now().AddDate(0, 0, -1))
	require.NoError(t, err)
	assert.Empty(t, yesterday)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests DayWindow
// ──────────────────────────────────────────────────────────────────────────────

func TestDayWindow_CubreElDiaCompleto(t *testing.T) {
	ref := time.Date(2026, 8, 31, 14, 23, 5, 0, time.Local)
	from, to := sales.DayWindow(ref)

	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.Local), from)
	assert.Equal(t, time.Date(2026, 8, 31, 23, 59, 59, 999_000_000, time.Local), to)
	assert.True(t, from.Before(ref) && to.After(ref))
}
