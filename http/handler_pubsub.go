package http

import (
	"encoding/json"
	"net/http"
	"storefront/email"
	"storefront/entities"
	"storefront/metrics"
	"storefront/observability"

	"github.com/labstack/echo/v4"
)

// PostPubSubEvent is the provider's push endpoint. Two message classes:
//
// A SubscriptionConfirmation challenge is answered by calling the provider's
// confirm operation; a failure is reported back so the provider retries on
// its own schedule.
//
// Everything else is treated as a delivered notification: the embedded order
// snapshot triggers exactly one email-send attempt, and the push is
// acknowledged once the attempt was made. NACKing on a failed send would only
// make the provider re-deliver indefinitely, so email is at-most-one-attempt
// even though the notification itself is delivered at-least-once.
func (h Handler) PostPubSubEvent(c echo.Context) error {
	ctx := c.Request().Context()
	logger := observability.FromContext(ctx)

	var msg entities.ProviderMessage
	if err := c.Bind(&msg); err != nil {
		return err
	}

	if msg.Type == entities.ProviderMessageSubscriptionConfirmation {
		if err := h.topicSvc.ConfirmSubscription(ctx, msg.TopicRef, msg.Token); err != nil {
			logger.WithError(err).WithField("topic_ref", msg.TopicRef).Error("Failed to confirm subscription")
			return echo.NewHTTPError(http.StatusInternalServerError, "could not confirm subscription")
		}

		h.subscriptions.MarkConfirmed(msg.TopicRef)
		logger.WithField("topic_ref", msg.TopicRef).Info("Subscription confirmed")
		return c.NoContent(http.StatusOK)
	}

	logger.WithField("type", msg.Type).Info("Received delivered notification")

	var topicMsg entities.TopicMessage
	if err := json.Unmarshal([]byte(msg.Message), &topicMsg); err != nil {
		logger.WithError(err).Error("Could not parse delivered notification payload")
		return echo.NewHTTPError(http.StatusBadRequest, "malformed notification payload")
	}

	order := topicMsg.Order
	htmlBody := email.RenderOrderPlaced(order)

	if err := h.emailSvc.SendEmail(ctx, h.emailFrom, h.emailTo, email.Subject, htmlBody); err != nil {
		metrics.NotificationFailures.WithLabelValues(metrics.ChannelEmail).Inc()
		logger.WithError(err).WithField("order_id", order.OrderID).Error("Failed to send order email")
	} else {
		metrics.EmailsSent.Inc()
	}

	return c.NoContent(http.StatusOK)
}
