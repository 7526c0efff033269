package domain

import (
	"errors"
	"time"
)

var ErrProductNotFound = errors.New("product not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrZeroCost = errors.New("cost must be greater than zero")

// Product is the core inventory record. IDs are assigned by the repository
// from a monotonic counter and are never reused, even after a delete.
type Product struct {
	ID        int64     `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	Price     float64   `json:"price" bson:"price"`
	Quantity  int       `json:"quantity" bson:"quantity"`
	MinStock  int       `json:"min_stock" bson:"min_stock"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// LowStock reports whether the product needs replenishment: quantity at or
// below its configured minimum.
func (p Product) LowStock() bool {
	return p.Quantity <= p.MinStock
}
