package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Best-effort notification channels report their failures here instead of
// bubbling them up to the placing client.
var (
	OrdersPlaced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_orders_placed_total",
		Help: "Number of orders successfully finalized.",
	})

	NotificationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_notification_failures_total",
		Help: "Number of failed best-effort notification attempts per channel.",
	}, []string{"channel"})

	EmailsSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_emails_sent_total",
		Help: "Number of order confirmation emails handed to the email transport.",
	})
)

const (
	ChannelTopic     = "topic"
	ChannelBroadcast = "broadcast"
	ChannelEmail     = "email"
)
