package ports

import (
	"context"

	"github.com/stockpile/inventory-system/internal/core/domain"
)

// CreateProductInput carries the data needed to create a product. A nil
// MinStock falls back to the service default; an explicit zero is kept.
type CreateProductInput struct {
	Name     string
	Price    float64
	Quantity int
	MinStock *int
}

// AdjustInput carries a stock adjustment request. IdempotencyKey is optional;
// when set and a dedup store is configured, replays return the original result.
type AdjustInput struct {
	ProductID      int64
	Delta          int
	Reason         string
	IdempotencyKey string
}

// MarginResult is the profit margin view for a single product.
type MarginResult struct {
	ProductID     int64   `json:"product_id"`
	Price         float64 `json:"price"`
	Cost          float64 `json:"cost"`
	MarginPercent float64 `json:"margin_percentage"`
}

// ProductService defines the inventory use cases.
type ProductService interface {
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	Get(ctx context.Context, id int64) (*domain.Product, error)
	Update(ctx context.Context, id int64, patch ProductPatch) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, skip, limit int) ([]domain.Product, error)
	Adjust(ctx context.Context, input AdjustInput) (*domain.Adjustment, error)
	LowStock(ctx context.Context) ([]domain.Product, error)
	ProfitMargin(ctx context.Context, id int64, cost float64) (*MarginResult, error)
	Search(ctx context.Context, name string) ([]domain.Product, error)
	TotalValue(ctx context.Context) (float64, error)
}
