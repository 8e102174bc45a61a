package fulfillment

import (
	"context"
	"errors"
	"storefront/db"
	"storefront/entities"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type eventPublisherMock struct {
	lock   sync.Mutex
	events []any

	publishErr error
}

func (m *eventPublisherMock) Publish(ctx context.Context, event any) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	if m.publishErr != nil {
		return m.publishErr
	}
	m.events = append(m.events, event)
	return nil
}

type fixture struct {
	productRepo  *db.ProductRepositoryMock
	cartRepo     *db.CartRepositoryMock
	orderRepo    *db.OrderRepositoryMock
	waitlistRepo *db.WaitlistRepositoryMock
	eventBus     *eventPublisherMock
	svc          Service
}

func newFixture(t *testing.T, products ...entities.Product) fixture {
	t.Helper()

	f := fixture{
		productRepo:  db.NewProductRepositoryMock(),
		cartRepo:     db.NewCartRepositoryMock(),
		orderRepo:    db.NewOrderRepositoryMock(),
		waitlistRepo: db.NewWaitlistRepositoryMock(),
		eventBus:     &eventPublisherMock{},
	}
	for _, product := range products {
		require.NoError(t, f.productRepo.Create(context.Background(), product))
	}

	allocator := NewAllocator(f.productRepo, f.productRepo)
	f.svc = NewService(allocator, f.cartRepo, f.orderRepo, f.waitlistRepo, f.eventBus)
	return f
}

func (f fixture) addCart(t *testing.T, lines ...entities.CartLine) entities.Cart {
	t.Helper()

	cart := entities.Cart{CartID: uuid.New(), Lines: lines}
	require.NoError(t, f.cartRepo.Create(context.Background(), cart))
	return cart
}

func TestPlaceOrderComputesExactTotal(t *testing.T) {
	productA := testProduct(10, 10000)
	productB := testProduct(10, 5000)
	f := newFixture(t, productA, productB)
	cart := f.addCart(t,
		entities.CartLine{ProductID: productA.ProductID, Quantity: 2},
		entities.CartLine{ProductID: productB.ProductID, Quantity: 1},
	)

	result, err := f.svc.PlaceOrder(context.Background(), cart.CartID)
	require.NoError(t, err)

	order, err := f.orderRepo.OrderByID(context.Background(), result.OrderID)
	require.NoError(t, err)
	assert.Equal(t, int64(25000), order.TotalAmount.Cents)
	assert.Equal(t, entities.OrderTotal(order.Lines), order.TotalAmount)
}

func TestPlaceOrderDeletesCart(t *testing.T) {
	product := testProduct(10, 1000)
	f := newFixture(t, product)
	cart := f.addCart(t, entities.CartLine{ProductID: product.ProductID, Quantity: 1})

	_, err := f.svc.PlaceOrder(context.Background(), cart.CartID)
	require.NoError(t, err)

	_, err = f.cartRepo.CartByID(context.Background(), cart.CartID)
	assert.ErrorIs(t, err, db.ErrCartNotFound)
}

func TestPlaceOrderMissingCart(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.PlaceOrder(context.Background(), uuid.New())
	assert.ErrorIs(t, err, db.ErrCartNotFound)
	assert.Empty(t, f.eventBus.events)
}

func TestPlaceOrderPublishesOrderPlaced(t *testing.T) {
	product := testProduct(10, 1000)
	f := newFixture(t, product)
	cart := f.addCart(t, entities.CartLine{ProductID: product.ProductID, Quantity: 1})

	result, err := f.svc.PlaceOrder(context.Background(), cart.CartID)
	require.NoError(t, err)

	require.Len(t, f.eventBus.events, 1)
	placed, ok := f.eventBus.events[0].(entities.OrderPlaced)
	require.True(t, ok)
	assert.Equal(t, result.OrderID, placed.OrderID)
}

func TestPlaceOrderPublishesWaitlistUpdated(t *testing.T) {
	product := testProduct(4, 1000)
	f := newFixture(t, product)
	cart := f.addCart(t, entities.CartLine{ProductID: product.ProductID, Quantity: 10})

	_, err := f.svc.PlaceOrder(context.Background(), cart.CartID)
	require.NoError(t, err)

	require.Len(t, f.eventBus.events, 2)
	updated, ok := f.eventBus.events[1].(entities.WaitlistUpdated)
	require.True(t, ok)
	require.Len(t, updated.Entries, 1)
	assert.Equal(t, 6, updated.Entries[0].Quantity)

	entries, err := f.waitlistRepo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 6, entries[0].Quantity)
}

func TestPlaceOrderSucceedsWhenPublishFails(t *testing.T) {
	product := testProduct(10, 1000)
	f := newFixture(t, product)
	f.eventBus.publishErr = errors.New("redis is down")
	cart := f.addCart(t, entities.CartLine{ProductID: product.ProductID, Quantity: 2})

	result, err := f.svc.PlaceOrder(context.Background(), cart.CartID)
	require.NoError(t, err)

	// the order is durable even though no notification went out
	_, err = f.orderRepo.OrderByID(context.Background(), result.OrderID)
	assert.NoError(t, err)
}

func TestPlaceOrderPartialPersistenceFailure(t *testing.T) {
	product := testProduct(10, 1000)
	f := newFixture(t, product)
	f.orderRepo.CreateErr = errors.New("disk full")
	cart := f.addCart(t, entities.CartLine{ProductID: product.ProductID, Quantity: 2})

	_, err := f.svc.PlaceOrder(context.Background(), cart.CartID)
	require.ErrorIs(t, err, ErrPartialPersistence)

	// reservation is not compensated on failure, the stock stays decremented
	stored, err := f.productRepo.ProductByID(context.Background(), product.ProductID)
	require.NoError(t, err)
	assert.Equal(t, 8, stored.Stock)
}
