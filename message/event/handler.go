package event

import (
	"context"
	"storefront/entities"

	"github.com/google/uuid"
)

type OrderRepository interface {
	OrderByID(ctx context.Context, orderID uuid.UUID) (entities.Order, error)
}

type TopicService interface {
	Publish(ctx context.Context, msg entities.TopicMessage) error
}

type Broadcaster interface {
	Broadcast(kind string, payload any)
}

// Handler fans a finalized order out to the notification channels. Every
// channel is best effort: failures are logged and counted, never returned, so
// the bus does not retry and the placing client is never affected.
type Handler struct {
	orderRepo   OrderRepository
	topicSvc    TopicService
	broadcaster Broadcaster
}

func NewHandler(
	orderRepo OrderRepository,
	topicSvc TopicService,
	broadcaster Broadcaster,
) Handler {
	if orderRepo == nil {
		panic("missing orderRepo")
	}
	if topicSvc == nil {
		panic("missing topicSvc")
	}
	if broadcaster == nil {
		panic("missing broadcaster")
	}
	return Handler{
		orderRepo:   orderRepo,
		topicSvc:    topicSvc,
		broadcaster: broadcaster,
	}
}
