package ports

import (
	"context"

	"github.com/stockpile/inventory-system/internal/core/domain"
)

// ProductPatch is a partial product update. A field is applied whenever its
// pointer is non-nil, so zero values (e.g. quantity 0) overwrite like any
// other value.
type ProductPatch struct {
	Name     *string
	Price    *float64
	Quantity *int
	MinStock *int
}

// ProductRepository defines persistence operations for products.
// Implementations must assign ids from a monotonic counter (no reuse after
// delete) and preserve insertion order in List and All.
type ProductRepository interface {
	// Insert stores a new product, assigning its ID and CreatedAt.
	Insert(ctx context.Context, p *domain.Product) (*domain.Product, error)
	Get(ctx context.Context, id int64) (*domain.Product, error)
	// Update applies the present fields of patch. Returns
	// domain.ErrProductNotFound when id is absent.
	Update(ctx context.Context, id int64, patch ProductPatch) (*domain.Product, error)
	// Delete removes a product. Returns domain.ErrProductNotFound when id is
	// absent; deleting is never silently idempotent.
	Delete(ctx context.Context, id int64) error
	// AdjustQuantity atomically adds delta to the product's quantity and
	// returns the new value. The read and write must happen as one operation
	// so concurrent adjustments never lose updates.
	AdjustQuantity(ctx context.Context, id int64, delta int) (int, error)
	// List returns products in insertion order, skipping the first skip
	// records and returning at most limit.
	List(ctx context.Context, skip, limit int) ([]domain.Product, error)
	// All returns every product in insertion order.
	All(ctx context.Context) ([]domain.Product, error)
}
