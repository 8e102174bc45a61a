package event

import (
	"context"
	"storefront/entities"
	"storefront/observability"
)

func (h Handler) BroadcastWaitlistUpdated(ctx context.Context, event *entities.WaitlistUpdated) error {
	observability.FromContext(ctx).
		WithField("order_id", event.OrderID).
		Info("Broadcasting waitlist update")

	h.broadcaster.Broadcast("waitlistUpdated", event.Entries)

	return nil
}
