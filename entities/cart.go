package entities

import "github.com/google/uuid"

// CartLine is the requested quantity of a single product. Carts are ephemeral:
// once an order is derived from a cart, the cart is deleted.
type CartLine struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

type Cart struct {
	CartID uuid.UUID  `json:"cart_id" db:"cart_id"`
	Lines  []CartLine `json:"lines"`
}
