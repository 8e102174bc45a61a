package entities

import (
	"time"

	"github.com/google/uuid"
)

type EventHeader struct {
	ID             string    `json:"id"`
	PublishedAt    time.Time `json:"published_at"`
	IdempotencyKey string    `json:"idempotency_key"`
}

func NewEventHeader() EventHeader {
	return EventHeader{
		ID:             uuid.NewString(),
		PublishedAt:    time.Now().UTC(),
		IdempotencyKey: uuid.NewString(),
	}
}

func NewEventHeaderWithIdempotencyKey(idempotencyKey string) EventHeader {
	return EventHeader{
		ID:             uuid.NewString(),
		PublishedAt:    time.Now().UTC(),
		IdempotencyKey: idempotencyKey,
	}
}

// OrderPlaced is published on the internal bus right after an order is
// persisted. It carries only the order id: every consumer loads the order
// from the store, so re-delivery can resend notifications but never
// re-allocates stock.
type OrderPlaced struct {
	Header EventHeader `json:"header"`

	OrderID uuid.UUID `json:"order_id"`
}

// WaitlistUpdated is published when an allocation produced backordered
// quantities, so connected clients can refresh their waitlist views.
type WaitlistUpdated struct {
	Header EventHeader `json:"header"`

	OrderID uuid.UUID       `json:"order_id"`
	Entries []WaitlistEntry `json:"entries"`
}
