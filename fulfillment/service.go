package fulfillment

import (
	"context"
	"errors"
	"fmt"
	"storefront/entities"
	"storefront/metrics"
	"storefront/observability"
	"time"

	"github.com/google/uuid"
)

// ErrPartialPersistence marks a finalize failure after some records may have
// already been written. There is no cross-step transaction, so callers must
// treat it as "unknown fulfillment state requiring manual reconciliation".
var ErrPartialPersistence = errors.New("order persistence incomplete")

type CartRepository interface {
	CartByID(ctx context.Context, cartID uuid.UUID) (entities.Cart, error)
	Delete(ctx context.Context, cartID uuid.UUID) error
}

type OrderRepository interface {
	Create(ctx context.Context, order entities.Order) error
}

type WaitlistRepository interface {
	Create(ctx context.Context, entry entities.WaitlistEntry) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event any) error
}

type PlaceOrderResult struct {
	OrderID       uuid.UUID                `json:"order_id"`
	OrderedLines  []entities.OrderLine     `json:"ordered_lines"`
	WaitlistLines []entities.WaitlistEntry `json:"waitlist_lines"`
}

type Service struct {
	allocator    Allocator
	cartRepo     CartRepository
	orderRepo    OrderRepository
	waitlistRepo WaitlistRepository
	eventBus     EventPublisher
}

func NewService(
	allocator Allocator,
	cartRepo CartRepository,
	orderRepo OrderRepository,
	waitlistRepo WaitlistRepository,
	eventBus EventPublisher,
) Service {
	if cartRepo == nil {
		panic("missing cartRepo")
	}
	if orderRepo == nil {
		panic("missing orderRepo")
	}
	if waitlistRepo == nil {
		panic("missing waitlistRepo")
	}
	if eventBus == nil {
		panic("missing eventBus")
	}
	return Service{
		allocator:    allocator,
		cartRepo:     cartRepo,
		orderRepo:    orderRepo,
		waitlistRepo: waitlistRepo,
		eventBus:     eventBus,
	}
}

// PlaceOrder fulfills the cart against live stock, persists the outcome and
// kicks off the notification fan-out. The HTTP response does not wait for any
// notification: the method returns as soon as the order is durable.
func (s Service) PlaceOrder(ctx context.Context, cartID uuid.UUID) (PlaceOrderResult, error) {
	logger := observability.FromContext(ctx)

	cart, err := s.cartRepo.CartByID(ctx, cartID)
	if err != nil {
		return PlaceOrderResult{}, err
	}

	alloc, err := s.allocator.Allocate(ctx, cart)
	if err != nil {
		return PlaceOrderResult{}, err
	}

	order := entities.Order{
		OrderID:     uuid.New(),
		Lines:       alloc.Lines,
		TotalAmount: entities.OrderTotal(alloc.Lines),
		PlacedAt:    time.Now().UTC(),
	}

	// Waitlist entries are durable regardless of how the order insert goes.
	// Any failure from here on leaves already-written records in place.
	for _, entry := range alloc.Waitlist {
		if err := s.waitlistRepo.Create(ctx, entry); err != nil {
			return PlaceOrderResult{}, fmt.Errorf("%w: saving waitlist entry for cart %s: %w", ErrPartialPersistence, cartID, err)
		}
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return PlaceOrderResult{}, fmt.Errorf("%w: saving order for cart %s: %w", ErrPartialPersistence, cartID, err)
	}

	if err := s.cartRepo.Delete(ctx, cartID); err != nil {
		return PlaceOrderResult{}, fmt.Errorf("%w: deleting cart %s: %w", ErrPartialPersistence, cartID, err)
	}

	metrics.OrdersPlaced.Inc()

	if err := s.eventBus.Publish(ctx, entities.OrderPlaced{
		Header:  entities.NewEventHeaderWithIdempotencyKey(order.OrderID.String()),
		OrderID: order.OrderID,
	}); err != nil {
		// the order is already durable, notifications are best effort
		logger.WithError(err).Error("Failed to publish OrderPlaced")
	}

	if len(alloc.Waitlist) > 0 {
		if err := s.eventBus.Publish(ctx, entities.WaitlistUpdated{
			Header:  entities.NewEventHeaderWithIdempotencyKey(order.OrderID.String() + "-waitlist"),
			OrderID: order.OrderID,
			Entries: alloc.Waitlist,
		}); err != nil {
			logger.WithError(err).Error("Failed to publish WaitlistUpdated")
		}
	}

	return PlaceOrderResult{
		OrderID:       order.OrderID,
		OrderedLines:  alloc.Lines,
		WaitlistLines: alloc.Waitlist,
	}, nil
}
