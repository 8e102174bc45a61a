package entities

import (
	"time"

	"github.com/google/uuid"
)

// WaitlistEntry records the backordered remainder of a cart line. Entries have
// a lifecycle independent from the order and are not reconciled against future
// stock replenishment, fulfillment of the backlog is a manual process.
type WaitlistEntry struct {
	EntryID     uuid.UUID `json:"entry_id" db:"entry_id"`
	ProductID   uuid.UUID `json:"product_id" db:"product_id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Quantity    int       `json:"quantity" db:"quantity"`
	Price       Money     `json:"price" db:"price"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
