package http

import (
	"context"
	"storefront/api"
	"storefront/entities"
	"storefront/fulfillment"

	"github.com/google/uuid"
)

type Handler struct {
	fulfillmentSvc FulfillmentService
	productRepo    ProductRepository
	cartRepo       CartRepository
	orderRepo      OrderRepository
	waitlistRepo   WaitlistRepository
	topicSvc       TopicConfirmer
	subscriptions  *api.SubscriptionRegistry
	emailSvc       EmailSender
	broadcaster    Broadcaster
	emailFrom      string
	emailTo        string
}

type FulfillmentService interface {
	PlaceOrder(ctx context.Context, cartID uuid.UUID) (fulfillment.PlaceOrderResult, error)
}

type ProductRepository interface {
	Create(ctx context.Context, product entities.Product) error
	Update(ctx context.Context, product entities.Product) error
	Delete(ctx context.Context, productID uuid.UUID) error
	ProductByID(ctx context.Context, productID uuid.UUID) (entities.Product, error)
	GetAll(ctx context.Context) ([]entities.Product, error)
}

type CartRepository interface {
	Create(ctx context.Context, cart entities.Cart) error
	CartByID(ctx context.Context, cartID uuid.UUID) (entities.Cart, error)
}

type OrderRepository interface {
	OrderByID(ctx context.Context, orderID uuid.UUID) (entities.Order, error)
	GetAll(ctx context.Context) ([]entities.Order, error)
}

type WaitlistRepository interface {
	GetAll(ctx context.Context) ([]entities.WaitlistEntry, error)
}

type TopicConfirmer interface {
	ConfirmSubscription(ctx context.Context, topicRef string, token string) error
}

type EmailSender interface {
	SendEmail(ctx context.Context, from string, to string, subject string, htmlBody string) error
}

type Broadcaster interface {
	Broadcast(kind string, payload any)
}
