package entities

import (
	"time"

	"github.com/google/uuid"
)

// OrderLine snapshots the catalog row at allocation time. The order record
// must reflect what was sold, later product edits never change it.
type OrderLine struct {
	ProductID   uuid.UUID `json:"product_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Quantity    int       `json:"quantity"`
	Price       Money     `json:"price"`
}

func (l OrderLine) Subtotal() Money {
	return l.Price.Mul(l.Quantity)
}

// Order is created exactly once and never mutated afterwards. Corrections
// require a new order.
type Order struct {
	OrderID     uuid.UUID   `json:"order_id" db:"order_id"`
	Lines       []OrderLine `json:"lines"`
	TotalAmount Money       `json:"total_amount"`
	PlacedAt    time.Time   `json:"placed_at" db:"placed_at"`
}

// OrderTotal is the exact sum of price x quantity over the lines.
func OrderTotal(lines []OrderLine) Money {
	var total Money
	for _, line := range lines {
		if total.Currency == "" {
			total.Currency = line.Price.Currency
		}
		total = total.Add(line.Subtotal())
	}
	return total
}
