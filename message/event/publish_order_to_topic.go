package event

import (
	"context"
	"errors"
	"storefront/db"
	"storefront/entities"
	"storefront/metrics"
	"storefront/observability"
)

// PublishOrderToTopic serializes the persisted order and hands it to the
// pub/sub provider. The handler only reads the order, so re-delivery may
// publish the same message again but never touches stock.
func (h Handler) PublishOrderToTopic(ctx context.Context, event *entities.OrderPlaced) error {
	logger := observability.FromContext(ctx)
	logger.WithField("order_id", event.OrderID).Info("Publishing order to topic")

	order, err := h.orderRepo.OrderByID(ctx, event.OrderID)
	if errors.Is(err, db.ErrOrderNotFound) {
		logger.WithField("order_id", event.OrderID).Error("Order to publish does not exist")
		return nil
	}
	if err != nil {
		return err
	}

	msg := entities.TopicMessage{
		Kind:  entities.TopicMessageKindOrderPlaced,
		Order: order,
	}
	if err := h.topicSvc.Publish(ctx, msg); err != nil {
		// best effort: record the failure and acknowledge
		metrics.NotificationFailures.WithLabelValues(metrics.ChannelTopic).Inc()
		logger.WithError(err).WithField("order_id", event.OrderID).Error("Failed to publish order to topic")
		return nil
	}

	return nil
}
