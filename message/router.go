package message

import (
	"storefront/message/event"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/ThreeDotsLabs/watermill/message"
)

func NewWatermillRouter(
	eventProcessorConfig cqrs.EventProcessorConfig,
	eventHandler event.Handler,
	watermillLogger watermill.LoggerAdapter,
) *message.Router {
	router, err := message.NewRouter(message.RouterConfig{}, watermillLogger)
	if err != nil {
		panic(err)
	}

	useMiddlewares(router, watermillLogger)

	eventProcessor, err := cqrs.NewEventProcessorWithConfig(router, eventProcessorConfig)
	if err != nil {
		panic(err)
	}

	err = eventProcessor.AddHandlers(
		cqrs.NewEventHandler(
			"PublishOrderToTopic",
			eventHandler.PublishOrderToTopic,
		),
		cqrs.NewEventHandler(
			"BroadcastNewOrder",
			eventHandler.BroadcastNewOrder,
		),
		cqrs.NewEventHandler(
			"BroadcastWaitlistUpdated",
			eventHandler.BroadcastWaitlistUpdated,
		),
	)
	if err != nil {
		panic(err)
	}

	return router
}
