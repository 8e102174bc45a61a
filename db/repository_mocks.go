package db

import (
	"context"
	"storefront/entities"
	"sync"

	"github.com/google/uuid"
)

type CartRepositoryMock struct {
	lock  sync.Mutex
	carts map[uuid.UUID]entities.Cart
}

func NewCartRepositoryMock() *CartRepositoryMock {
	return &CartRepositoryMock{
		carts: map[uuid.UUID]entities.Cart{},
	}
}

func (cr *CartRepositoryMock) Create(ctx context.Context, cart entities.Cart) error {
	cr.lock.Lock()
	defer cr.lock.Unlock()

	cr.carts[cart.CartID] = cart
	return nil
}

func (cr *CartRepositoryMock) CartByID(ctx context.Context, cartID uuid.UUID) (entities.Cart, error) {
	cr.lock.Lock()
	defer cr.lock.Unlock()

	cart, ok := cr.carts[cartID]
	if !ok {
		return entities.Cart{}, ErrCartNotFound
	}
	return cart, nil
}

func (cr *CartRepositoryMock) Delete(ctx context.Context, cartID uuid.UUID) error {
	cr.lock.Lock()
	defer cr.lock.Unlock()

	delete(cr.carts, cartID)
	return nil
}

type OrderRepositoryMock struct {
	lock   sync.Mutex
	orders map[uuid.UUID]entities.Order

	CreateErr error
}

func NewOrderRepositoryMock() *OrderRepositoryMock {
	return &OrderRepositoryMock{
		orders: map[uuid.UUID]entities.Order{},
	}
}

func (or *OrderRepositoryMock) Create(ctx context.Context, order entities.Order) error {
	or.lock.Lock()
	defer or.lock.Unlock()

	if or.CreateErr != nil {
		return or.CreateErr
	}
	if _, ok := or.orders[order.OrderID]; ok {
		return nil
	}
	or.orders[order.OrderID] = order
	return nil
}

func (or *OrderRepositoryMock) OrderByID(ctx context.Context, orderID uuid.UUID) (entities.Order, error) {
	or.lock.Lock()
	defer or.lock.Unlock()

	order, ok := or.orders[orderID]
	if !ok {
		return entities.Order{}, ErrOrderNotFound
	}
	return order, nil
}

func (or *OrderRepositoryMock) GetAll(ctx context.Context) ([]entities.Order, error) {
	or.lock.Lock()
	defer or.lock.Unlock()

	orders := make([]entities.Order, 0, len(or.orders))
	for _, order := range or.orders {
		orders = append(orders, order)
	}
	return orders, nil
}

type WaitlistRepositoryMock struct {
	lock    sync.Mutex
	Entries []entities.WaitlistEntry

	CreateErr error
}

func NewWaitlistRepositoryMock() *WaitlistRepositoryMock {
	return &WaitlistRepositoryMock{}
}

func (wr *WaitlistRepositoryMock) Create(ctx context.Context, entry entities.WaitlistEntry) error {
	wr.lock.Lock()
	defer wr.lock.Unlock()

	if wr.CreateErr != nil {
		return wr.CreateErr
	}
	wr.Entries = append(wr.Entries, entry)
	return nil
}

func (wr *WaitlistRepositoryMock) GetAll(ctx context.Context) ([]entities.WaitlistEntry, error) {
	wr.lock.Lock()
	defer wr.lock.Unlock()

	entries := make([]entities.WaitlistEntry, len(wr.Entries))
	copy(entries, wr.Entries)
	return entries, nil
}
