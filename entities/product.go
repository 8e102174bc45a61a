package entities

import "github.com/google/uuid"

type Product struct {
	ProductID   uuid.UUID `json:"product_id" db:"product_id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Price       Money     `json:"price" db:"price"`
	Stock       int       `json:"stock" db:"stock"`
}
