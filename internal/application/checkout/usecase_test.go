package checkout_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/retail-pos/internal/application/auth"
	appcheckout "github.com/tu-usuario/retail-pos/internal/application/checkout"
	"github.com/tu-usuario/retail-pos/internal/application/dto"
	"github.com/tu-usuario/retail-pos/internal/domain"
	"github.com/tu-usuario/retail-pos/internal/domain/entity"
	"github.com/tu-usuario/retail-pos/internal/domain/repository"
	"github.com/tu-usuario/retail-pos/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// memStore estado compartido de los fakes; emula las tablas.
type memStore struct {
	products  map[string]*entity.Product
	methods   map[string]*entity.PaymentMethod
	sales     map[string]*entity.Sale
	items     []*entity.SaleItem
	payments  []*entity.SalePayment
	movements []*entity.StockMovement
}

func newMemStore() *memStore {
	return &memStore{
		products: map[string]*entity.Product{},
		methods:  map[string]*entity.PaymentMethod{},
		sales:    map[string]*entity.Sale{},
	}
}

// clone copia profunda; el fake de transacción trabaja sobre el clon y solo
// lo promueve si fn termina sin error.
func (s *memStore) clone() *memStore {
	c := newMemStore()
	for id, p := range s.products {
		cp := *p
		c.products[id] = &cp
	}
	for id, m := range s.methods {
		cm := *m
		c.methods[id] = &cm
	}
	for id, sale := range s.sales {
		cs := *sale
		c.sales[id] = &cs
	}
	c.items = append(c.items, s.items...)
	c.payments = append(c.payments, s.payments...)
	c.movements = append(c.movements, s.movements...)
	return c
}

type fakeSaleRepo struct{ s *memStore }

func (r *fakeSaleRepo) Create(sale *entity.Sale) error {
	cp := *sale
	r.s.sales[sale.ID] = &cp
	return nil
}
func (r *fakeSaleRepo) CreateItem(item *entity.SaleItem) error {
	r.s.items = append(r.s.items, item)
	return nil
}
func (r *fakeSaleRepo) CreatePayment(p *entity.SalePayment) error {
	r.s.payments = append(r.s.payments, p)
	return nil
}
func (r *fakeSaleRepo) UpdateSurcharge(saleID string, total decimal.Decimal) error {
	if sale, ok := r.s.sales[saleID]; ok {
		sale.TotalSurcharge = total
	}
	return nil
}
func (r *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) {
	return r.s.sales[id], nil
}
func (r *fakeSaleRepo) SellerUsername(string) (string, error) { return "cajero1", nil }
func (r *fakeSaleRepo) ListItems(saleID string) ([]repository.TicketItemRow, error) {
	var rows []repository.TicketItemRow
	for _, it := range r.s.items {
		if it.SaleID != saleID {
			continue
		}
		name := ""
		if p, ok := r.s.products[it.ProductID]; ok {
			name = p.Name
		}
		rows = append(rows, repository.TicketItemRow{
			ProductID:   it.ProductID,
			ProductName: name,
			Quantity:    it.Quantity,
			PriceAtSale: it.PriceAtSale,
		})
	}
	return rows, nil
}
func (r *fakeSaleRepo) ListPayments(saleID string) ([]repository.TicketPaymentRow, error) {
	var rows []repository.TicketPaymentRow
	for _, p := range r.s.payments {
		if p.SaleID != saleID {
			continue
		}
		m := r.s.methods[p.PaymentMethodID]
		rows = append(rows, repository.TicketPaymentRow{
			MethodName:       m.Name,
			SurchargePercent: m.SurchargePercent,
			Amount:           p.Amount,
			SurchargeAmount:  p.SurchargeAmount,
		})
	}
	return rows, nil
}

type fakeProductRepo struct{ s *memStore }

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.s.products[id], nil
}
func (r *fakeProductRepo) List() ([]*entity.Product, error)        { return nil, nil }
func (r *fakeProductRepo) ListInStock() ([]*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) ListLowStock() ([]*entity.Product, error) {
	return nil, nil
}
func (r *fakeProductRepo) DecrementStock(id string, qty int) (bool, error) {
	p, ok := r.s.products[id]
	if !ok || p.Stock < qty {
		return false, nil
	}
	p.Stock -= qty
	return true, nil
}
func (r *fakeProductRepo) IncrementStock(id string, qty int) error {
	if p, ok := r.s.products[id]; ok {
		p.Stock += qty
	}
	return nil
}
func (r *fakeProductRepo) Delete(string) error { return nil }
func (r *fakeProductRepo) Count() (int, error) { return len(r.s.products), nil }

type fakeMethodRepo struct{ s *memStore }

func (r *fakeMethodRepo) Create(m *entity.PaymentMethod) error {
	cm := *m
	r.s.methods[m.ID] = &cm
	return nil
}
func (r *fakeMethodRepo) GetByID(id string) (*entity.PaymentMethod, error) {
	return r.s.methods[id], nil
}
func (r *fakeMethodRepo) List() ([]*entity.PaymentMethod, error)       { return nil, nil }
func (r *fakeMethodRepo) ListActive() ([]*entity.PaymentMethod, error) { return nil, nil }
func (r *fakeMethodRepo) SetActive(id string, active bool) error {
	if m, ok := r.s.methods[id]; ok {
		m.Active = active
	}
	return nil
}

type fakeMovementRepo struct{ s *memStore }

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	r.s.movements = append(r.s.movements, m)
	return nil
}
func (r *fakeMovementRepo) ListByProduct(string, int) ([]*entity.StockMovement, error) {
	return nil, nil
}

// fakeTxRunner ejecuta fn contra un clon del estado y promueve el clon solo
// si fn no falla, imitando commit/rollback.
type fakeTxRunner struct{ s *memStore }

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	methodRepo repository.PaymentMethodRepository,
	movementRepo repository.StockMovementRepository,
) error) error {
	tx := r.s.clone()
	err := fn(&fakeSaleRepo{s: tx}, &fakeProductRepo{s: tx}, &fakeMethodRepo{s: tx}, &fakeMovementRepo{s: tx})
	if err != nil {
		return err
	}
	*r.s = *tx
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

var testIdent = auth.Identity{ID: "u1", Username: "cajero1", Role: entity.RoleEmployee}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func buildUseCase(store *memStore) *appcheckout.CheckoutUseCase {
	return appcheckout.NewCheckoutUseCase(
		&fakeTxRunner{s: store},
		&fakeSaleRepo{s: store},
		logger.Nop(),
	)
}

func seedProduct(store *memStore, id string, price string, stock int) {
	store.products[id] = &entity.Product{
		ID: id, Name: "Producto " + id, SKU: "SKU-" + id,
		Price: dec(price), Stock: stock, CreatedAt: time.Now(),
	}
}

func seedMethod(store *memStore, id, name string, percent string, active bool) {
	store.methods[id] = &entity.PaymentMethod{
		ID: id, Name: name, SurchargePercent: dec(percent),
		Active: active, CreatedAt: time.Now(),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ProcessSale — validaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestProcessSale_CarritoVacioRechazado(t *testing.T) {
	store := newMemStore()
	uc := buildUseCase(store)

	_, err := uc.ProcessSale(context.Background(), testIdent, dto.CheckoutRequest{
		Payments: []dto.PaymentEntryRequest{{MethodID: "m1", Amount: dec("10")}},
	})

	var verr *appcheckout.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Msg, "carrito")
	assert.Empty(t, store.sales, "no debe escribirse nada")
}

func TestProcessSale_SinPagosRechazado(t *testing.T) {
	store := newMemStore()
	uc := buildUseCase(store)

	_, err := uc.ProcessSale(context.Background(), testIdent, dto.CheckoutRequest{
		Cart: []dto.CartLineRequest{{ProductID: "p1", Price: dec("10"), Quantity: 1}},
	})

	var verr *appcheckout.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Msg, "método de pago")
	assert.Empty(t, store.sales)
}

func TestProcessSale_PagoFueraDeToleranciaRechazado(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", "10.00", 5)
	seedMethod(store, "m1", "Efectivo", "0", true)
	uc := buildUseCase(store)

	// total base 20.00, pago 19.50: diferencia 0.5 > tolerancia 0.1
	_, err := uc.ProcessSale(context.Background(), testIdent, dto.CheckoutRequest{
		Cart:     []dto.CartLineRequest{{ProductID: "p1", Price: dec("10.00"), Quantity: 2}},
		Payments: []dto.PaymentEntryRequest{{MethodID: "m1", Amount: dec("19.50")}},
	})

	var verr *appcheckout.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Msg, "19.5", "el mensaje debe incluir lo pagado")
	assert.Contains(t, verr.Msg, "20", "el mensaje debe incluir el total")
	assert.Empty(t, store.sales, "la validación ocurre antes de escribir")
}

func TestProcessSale_DiferenciaDentroDeToleranciaAceptada(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", "10.00", 5)
	seedMethod(store, "m1", "Efectivo", "0", true)
	uc := buildUseCase(store)

	// diferencia exacta 0.1: dentro de la tolerancia
	out, err := uc.ProcessSale(context.Background(), testIdent, dto.CheckoutRequest{
		Cart:     []dto.CartLineRequest{{ProductID: "p1", Price: dec("10.00"), Quantity: 2}},
		Payments: []dto.PaymentEntryRequest{{MethodID: "m1", Amount: dec("19.90")}},
	})

	require.NoError(t, err)
	assert.True(t, out.Success)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ProcessSale — venta completa
// ──────────────────────────────────────────────────────────────────────────────

func TestProcessSale_RecargosPorMetodo(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", "170.00", 10)
	seedMethod(store, "efectivo", "Efectivo", "0", true)
	seedMethod(store, "credito", "Crédito", "5", true)
	seedMethod(store, "debito", "Débito", "10", true)
	uc := buildUseCase(store)

	// total base 170, cubierto por tres métodos: 100 + 50 + 20
	out, err := uc.ProcessSale(context.Background(), testIdent, dto.CheckoutRequest{
		Cart: []dto.CartLineRequest{{ProductID: "p1", Price: dec("170.00"), Quantity: 1}},
		Payments: []dto.PaymentEntryRequest{
			{MethodID: "efectivo", Amount: dec("100")},
			{MethodID: "credito", Amount: dec("50")},
			{MethodID: "debito", Amount: dec("20")},
		},
	})
	require.NoError(t, err)

	sale := store.sales[out.SaleID]
	require.NotNil(t, sale)
	assert.True(t, sale.TotalSurcharge.Equal(dec("4.5")),
		"recargos 0%%+5%%+10%% sobre 100/50/20 deben sumar 4.5, fue %s", sale.TotalSurcharge)

	require.Len(t, store.payments, 3)
	assert.True(t, store.payments[0].SurchargeAmount.Equal(dec("0")))
	assert.True(t, store.payments[1].SurchargeAmount.Equal(dec("2.5")))
	assert.True(t, store.payments[2].SurchargeAmount.Equal(dec("2")))
}

func TestProcessSale_DescuentaStockExacto(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", "10.00", 7)
	seedMethod(store, "m1", "Efectivo", "0", true)
	uc := buildUseCase(store)

	_, err := uc.ProcessSale(context.Background(), testIdent, dto.CheckoutRequest{
		Cart:     []dto.CartLineRequest{{ProductID: "p1", Price: dec("10.00"), Quantity: 2}},
		Payments: []dto.PaymentEntryRequest{{MethodID: "m1", Amount: dec("20.00")}},
	})
	require.NoError(t, err)

	assert.Equal(t, 5, store.products["p1"].Stock, "stock 7 - 2 = 5")

	// y queda el movimiento de auditoría con el delta negativo
	require.Len(t, store.movements, 1)
	assert.Equal(t, -2, store.movements[0].ChangeAmount)
	assert.Equal(t, entity.MovementSale, store.movements[0].ChangeType)
}

func TestProcessSale_StockInsuficienteRevierteTodo(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", "10.00", 5)
	seedProduct(store, "p2", "8.00", 1)
	seedMethod(store, "m1", "Efectivo", "0", true)
	uc := buildUseCase(store)

	// p1 alcanza, p2 no: la venta entera debe revertirse
	_, err := uc.ProcessSale(context.Background(), testIdent, dto.CheckoutRequest{
		Cart: []dto.CartLineRequest{
			{ProductID: "p1", Price: dec("10.00"), Quantity: 2},
			{ProductID: "p2", Price: dec("8.00"), Quantity: 3},
		},
		Payments: []dto.PaymentEntryRequest{{MethodID: "m1", Amount: dec("44.00")}},
	})

	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "p2", "el error debe nombrar el producto")

	assert.Empty(t, store.sales, "sin cabecera")
	assert.Empty(t, store.items, "sin líneas")
	assert.Empty(t, store.movements, "sin movimientos")
	assert.Equal(t, 5, store.products["p1"].Stock, "el descuento de p1 también se revierte")
	assert.Equal(t, 1, store.products["p2"].Stock)
}

func TestProcessSale_MetodoInactivoInvalidaLaVenta(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", "10.00", 5)
	seedMethod(store, "m1", "Crédito", "5", false)
	uc := buildUseCase(store)

	_, err := uc.ProcessSale(context.Background(), testIdent, dto.CheckoutRequest{
		Cart:     []dto.CartLineRequest{{ProductID: "p1", Price: dec("10.00"), Quantity: 1}},
		Payments: []dto.PaymentEntryRequest{{MethodID: "m1", Amount: dec("10.00")}},
	})

	var verr *appcheckout.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Msg, "método de pago no disponible")
	assert.Empty(t, store.sales, "la venta completa se revierte")
	assert.Equal(t, 5, store.products["p1"].Stock)
}

func TestProcessSale_MetodoInexistenteInvalidaLaVenta(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", "10.00", 5)
	uc := buildUseCase(store)

	_, err := uc.ProcessSale(context.Background(), testIdent, dto.CheckoutRequest{
		Cart:     []dto.CartLineRequest{{ProductID: "p1", Price: dec("10.00"), Quantity: 1}},
		Payments: []dto.PaymentEntryRequest{{MethodID: "fantasma", Amount: dec("10.00")}},
	})

	var verr *appcheckout.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, store.sales)
}

func TestProcessSale_PrecioCapturadoNoReconsultado(t *testing.T) {
	store := newMemStore()
	// precio de catálogo 99, el carrito manda 10: se captura el del carrito
	seedProduct(store, "p1", "99.00", 5)
	seedMethod(store, "m1", "Efectivo", "0", true)
	uc := buildUseCase(store)

	out, err := uc.ProcessSale(context.Background(), testIdent, dto.CheckoutRequest{
		Cart:     []dto.CartLineRequest{{ProductID: "p1", Price: dec("10.00"), Quantity: 1}},
		Payments: []dto.PaymentEntryRequest{{MethodID: "m1", Amount: dec("10.00")}},
	})
	require.NoError(t, err)

	require.Len(t, store.items, 1)
	assert.True(t, store.items[0].PriceAtSale.Equal(dec("10.00")))
	assert.True(t, store.sales[out.SaleID].TotalBase.Equal(dec("10.00")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests GetTicket
// ──────────────────────────────────────────────────────────────────────────────

func TestGetTicket_VentaInexistente(t *testing.T) {
	store := newMemStore()
	uc := buildUseCase(store)

	_, err := uc.GetTicket(context.Background(), "no-existe")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestGetTicket_ArmaElComprobanteCompleto(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", "10.00", 5)
	seedMethod(store, "credito", "Crédito", "5", true)
	uc := buildUseCase(store)

	out, err := uc.ProcessSale(context.Background(), testIdent, dto.CheckoutRequest{
		Cart:     []dto.CartLineRequest{{ProductID: "p1", Price: dec("10.00"), Quantity: 2}},
		Payments: []dto.PaymentEntryRequest{{MethodID: "credito", Amount: dec("20.00")}},
	})
	require.NoError(t, err)

	ticket, err := uc.GetTicket(context.Background(), out.SaleID)
	require.NoError(t, err)

	assert.Equal(t, out.SaleID, ticket.SaleID)
	assert.Equal(t, "cajero1", ticket.Seller)
	require.Len(t, ticket.Items, 1)
	assert.Equal(t, "Producto p1", ticket.Items[0].ProductName)
	assert.True(t, ticket.Items[0].Subtotal.Equal(dec("20.00")))
	require.Len(t, ticket.Payments, 1)
	assert.True(t, ticket.Payments[0].SurchargeAmount.Equal(dec("1.00")))
	assert.True(t, ticket.Total.Equal(dec("21.00")), "base 20 + recargo 1")
}
