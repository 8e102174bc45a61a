package event

import (
	"context"
	"errors"
	"storefront/db"
	"storefront/entities"
	"storefront/observability"
)

// BroadcastNewOrder pushes the order summary to all connected clients. No
// persistence and no replay: clients connecting later miss the event.
func (h Handler) BroadcastNewOrder(ctx context.Context, event *entities.OrderPlaced) error {
	logger := observability.FromContext(ctx)
	logger.WithField("order_id", event.OrderID).Info("Broadcasting new order")

	order, err := h.orderRepo.OrderByID(ctx, event.OrderID)
	if errors.Is(err, db.ErrOrderNotFound) {
		logger.WithField("order_id", event.OrderID).Error("Order to broadcast does not exist")
		return nil
	}
	if err != nil {
		return err
	}

	h.broadcaster.Broadcast("newOrder", order)

	return nil
}
