package create_sale

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clickcy/clickbarber/internal/domain"
	catalogRepo "github.com/clickcy/clickbarber/internal/infra/storage/catalog"
	clientRepo "github.com/clickcy/clickbarber/internal/infra/storage/client"
	professionalRepo "github.com/clickcy/clickbarber/internal/infra/storage/professional"
	"github.com/clickcy/clickbarber/pkg/ptr"
)

type fakeSaleRepo struct {
	created    *domain.Sale
	commission *domain.Commission
}

func (f *fakeSaleRepo) Create(_ context.Context, s *domain.Sale) (*domain.Sale, error) {
	s.CreatedAt = time.Now()
	f.created = s
	return s, nil
}

func (f *fakeSaleRepo) CreateCommission(_ context.Context, c *domain.Commission) error {
	f.commission = c
	return nil
}

type fakeCatalogRepo struct {
	services   map[uuid.UUID]*domain.Service
	products   map[uuid.UUID]*domain.Product
	decrements map[uuid.UUID]int
	stockErr   error
}

func (f *fakeCatalogRepo) GetServicesByIDs(_ context.Context, ids []uuid.UUID) ([]*domain.Service, error) {
	var out []*domain.Service
	for _, id := range ids {
		if svc, ok := f.services[id]; ok {
			out = append(out, svc)
		}
	}
	return out, nil
}

func (f *fakeCatalogRepo) GetProductByID(_ context.Context, id uuid.UUID) (*domain.Product, error) {
	product, ok := f.products[id]
	if !ok {
		return nil, catalogRepo.ErrProductNotFound
	}
	return product, nil
}

func (f *fakeCatalogRepo) DecrementStock(_ context.Context, id uuid.UUID, quantity int) error {
	if f.stockErr != nil {
		return f.stockErr
	}
	if f.decrements == nil {
		f.decrements = make(map[uuid.UUID]int)
	}
	f.decrements[id] += quantity
	return nil
}

type fakeClientRepo struct {
	client    *domain.Client
	lastVisit *time.Time
}

func (f *fakeClientRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Client, error) {
	if f.client == nil || f.client.ID != id {
		return nil, clientRepo.ErrClientNotFound
	}
	return f.client, nil
}

func (f *fakeClientRepo) StampLastVisit(_ context.Context, _ uuid.UUID, visitDate time.Time) error {
	f.lastVisit = &visitDate
	return nil
}

type fakeProfessionalRepo struct {
	professional *domain.Professional
}

func (f *fakeProfessionalRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Professional, error) {
	if f.professional == nil || f.professional.ID != id {
		return nil, professionalRepo.ErrProfessionalNotFound
	}
	return f.professional, nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type saleFixture struct {
	uc        *UseCase
	saleRepo  *fakeSaleRepo
	catalog   *fakeCatalogRepo
	clients   *fakeClientRepo
	profs     *fakeProfessionalRepo
	clientID  uuid.UUID
	profID    uuid.UUID
	haircutID uuid.UUID
	shampooID uuid.UUID
	now       time.Time
}

func newSaleFixture(t *testing.T) *saleFixture {
	t.Helper()

	clientID := uuid.New()
	profID := uuid.New()
	haircutID := uuid.New()
	shampooID := uuid.New()

	catalog := &fakeCatalogRepo{
		services: map[uuid.UUID]*domain.Service{
			haircutID: {ID: haircutID, Name: "Haircut", Price: 50, DurationMinutes: 30},
		},
		products: map[uuid.UUID]*domain.Product{
			shampooID: {ID: shampooID, Name: "Shampoo", Price: 12, StockQuantity: 5},
		},
	}
	saleRepo := &fakeSaleRepo{}
	clients := &fakeClientRepo{
		client: &domain.Client{ID: clientID, Name: "Ana Souza", Phone: ptr.Ptr("+357 99 111111")},
	}
	profs := &fakeProfessionalRepo{
		professional: &domain.Professional{ID: profID, Name: "Carlos", CommissionPercent: 40, IsActive: true},
	}

	uc := NewUseCase(saleRepo, catalog, clients, profs, &fakeTxManager{}, noopLogger{})
	now := time.Date(2026, 3, 12, 15, 30, 0, 0, time.UTC)
	uc.timeProvider = &fixedTimeProvider{now: now}

	return &saleFixture{
		uc:        uc,
		saleRepo:  saleRepo,
		catalog:   catalog,
		clients:   clients,
		profs:     profs,
		clientID:  clientID,
		profID:    profID,
		haircutID: haircutID,
		shampooID: shampooID,
		now:       now,
	}
}

func TestCreateSale_ServiceAndProduct(t *testing.T) {
	fx := newSaleFixture(t)

	resp, err := fx.uc.Execute(context.Background(), &Request{
		ClientID:       &fx.clientID,
		ProfessionalID: &fx.profID,
		Items: []ItemRequest{
			{ItemID: fx.haircutID, ItemType: "service", Quantity: 1},
			{ItemID: fx.shampooID, ItemType: "product", Quantity: 2},
		},
		PaymentMethod: ptr.Ptr("cash"),
		TipAmount:     5,
		AmountPaid:    ptr.Ptr(100.0),
	})
	require.NoError(t, err)

	// 50 + 2x12 = 74, плюс чаевые 5
	assert.InDelta(t, 74.0, resp.Subtotal, 0.001)
	assert.InDelta(t, 79.0, resp.TotalAmount, 0.001)
	require.NotNil(t, resp.ChangeDue)
	assert.InDelta(t, 21.0, *resp.ChangeDue, 0.001)
	assert.Equal(t, string(domain.SaleStatusPaid), resp.Status)
	require.Len(t, resp.Items, 2)
	assert.InDelta(t, 24.0, resp.Items[1].LineTotal, 0.001)

	// Остатки списаны только по товарным строкам
	assert.Equal(t, map[uuid.UUID]int{fx.shampooID: 2}, fx.catalog.decrements)

	// Комиссия 40% от 74, чаевые не участвуют
	require.NotNil(t, fx.saleRepo.commission)
	assert.InDelta(t, 29.6, fx.saleRepo.commission.Amount, 0.001)
	assert.Equal(t, fx.profID, fx.saleRepo.commission.ProfessionalID)
	require.NotNil(t, resp.CommissionAmount)
	assert.InDelta(t, 29.6, *resp.CommissionAmount, 0.001)

	// Дата последнего визита клиента проставлена
	require.NotNil(t, fx.clients.lastVisit)
	assert.Equal(t, fx.now, *fx.clients.lastVisit)
}

func TestCreateSale_AnonymousWalkIn(t *testing.T) {
	fx := newSaleFixture(t)

	resp, err := fx.uc.Execute(context.Background(), &Request{
		Items: []ItemRequest{
			{ItemID: fx.shampooID, ItemType: "product", Quantity: 1},
		},
	})
	require.NoError(t, err)

	assert.Nil(t, resp.ClientID)
	assert.Nil(t, resp.ChangeDue)
	assert.Nil(t, resp.CommissionAmount)
	assert.Nil(t, fx.saleRepo.commission)
	assert.Nil(t, fx.clients.lastVisit)
	assert.InDelta(t, 12.0, resp.TotalAmount, 0.001)
}

func TestCreateSale_DiscountApplied(t *testing.T) {
	fx := newSaleFixture(t)

	resp, err := fx.uc.Execute(context.Background(), &Request{
		ProfessionalID: &fx.profID,
		Items: []ItemRequest{
			{ItemID: fx.haircutID, ItemType: "service", Quantity: 1},
		},
		DiscountAmount: 10,
	})
	require.NoError(t, err)

	assert.InDelta(t, 50.0, resp.Subtotal, 0.001)
	assert.InDelta(t, 40.0, resp.TotalAmount, 0.001)

	// Комиссия от суммы со скидкой
	require.NotNil(t, resp.CommissionAmount)
	assert.InDelta(t, 16.0, *resp.CommissionAmount, 0.001)
}

func TestCreateSale_DiscountExceedsSubtotal(t *testing.T) {
	fx := newSaleFixture(t)

	_, err := fx.uc.Execute(context.Background(), &Request{
		Items: []ItemRequest{
			{ItemID: fx.shampooID, ItemType: "product", Quantity: 1},
		},
		DiscountAmount: 13,
	})
	assert.ErrorIs(t, err, ErrInvalidDiscount)
	assert.Nil(t, fx.saleRepo.created)
}

func TestCreateSale_InsufficientPayment(t *testing.T) {
	fx := newSaleFixture(t)

	_, err := fx.uc.Execute(context.Background(), &Request{
		Items: []ItemRequest{
			{ItemID: fx.haircutID, ItemType: "service", Quantity: 1},
		},
		AmountPaid: ptr.Ptr(40.0),
	})
	assert.ErrorIs(t, err, ErrInsufficientPayment)
	assert.Nil(t, fx.saleRepo.created)
}

func TestCreateSale_InsufficientStock(t *testing.T) {
	fx := newSaleFixture(t)

	_, err := fx.uc.Execute(context.Background(), &Request{
		Items: []ItemRequest{
			{ItemID: fx.shampooID, ItemType: "product", Quantity: 6},
		},
	})
	assert.ErrorIs(t, err, ErrInsufficientStock)
}

func TestCreateSale_StockRaceLostInTransaction(t *testing.T) {
	fx := newSaleFixture(t)
	fx.catalog.stockErr = catalogRepo.ErrInsufficientStock

	_, err := fx.uc.Execute(context.Background(), &Request{
		Items: []ItemRequest{
			{ItemID: fx.shampooID, ItemType: "product", Quantity: 2},
		},
	})
	assert.ErrorIs(t, err, ErrInsufficientStock)
}

func TestCreateSale_UnknownProduct(t *testing.T) {
	fx := newSaleFixture(t)

	_, err := fx.uc.Execute(context.Background(), &Request{
		Items: []ItemRequest{
			{ItemID: uuid.New(), ItemType: "product", Quantity: 1},
		},
	})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCreateSale_UnknownService(t *testing.T) {
	fx := newSaleFixture(t)

	_, err := fx.uc.Execute(context.Background(), &Request{
		Items: []ItemRequest{
			{ItemID: uuid.New(), ItemType: "service", Quantity: 1},
		},
	})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestCreateSale_UnknownClient(t *testing.T) {
	fx := newSaleFixture(t)
	unknown := uuid.New()

	_, err := fx.uc.Execute(context.Background(), &Request{
		ClientID: &unknown,
		Items: []ItemRequest{
			{ItemID: fx.haircutID, ItemType: "service", Quantity: 1},
		},
	})
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestCreateSale_UnknownProfessional(t *testing.T) {
	fx := newSaleFixture(t)
	unknown := uuid.New()

	_, err := fx.uc.Execute(context.Background(), &Request{
		ProfessionalID: &unknown,
		Items: []ItemRequest{
			{ItemID: fx.haircutID, ItemType: "service", Quantity: 1},
		},
	})
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestCreateSale_Validation(t *testing.T) {
	fx := newSaleFixture(t)

	cases := []struct {
		name string
		req  *Request
	}{
		{
			name: "no items",
			req:  &Request{},
		},
		{
			name: "bad item type",
			req: &Request{
				Items: []ItemRequest{{ItemID: fx.haircutID, ItemType: "voucher", Quantity: 1}},
			},
		},
		{
			name: "zero quantity",
			req: &Request{
				Items: []ItemRequest{{ItemID: fx.shampooID, ItemType: "product", Quantity: 0}},
			},
		},
		{
			name: "service with quantity two",
			req: &Request{
				Items: []ItemRequest{{ItemID: fx.haircutID, ItemType: "service", Quantity: 2}},
			},
		},
		{
			name: "negative discount",
			req: &Request{
				Items:          []ItemRequest{{ItemID: fx.haircutID, ItemType: "service", Quantity: 1}},
				DiscountAmount: -1,
			},
		},
		{
			name: "negative tip",
			req: &Request{
				Items:     []ItemRequest{{ItemID: fx.haircutID, ItemType: "service", Quantity: 1}},
				TipAmount: -5,
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := fx.uc.Execute(context.Background(), tc.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
