// Package memory provides the default in-process product store. All access is
// serialized behind a single mutex so the id counter and individual records
// never see lost updates under concurrent requests.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/stockpile/inventory-system/internal/core/domain"
	"github.com/stockpile/inventory-system/internal/core/ports"
)

// ProductRepository keeps products in a map with a monotonic id counter and a
// separate slice tracking insertion order. Ids are never reused after delete.
type ProductRepository struct {
	mu       sync.Mutex
	products map[int64]*domain.Product
	order    []int64
	counter  int64
}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{products: make(map[int64]*domain.Product)}
}

// Insert assigns the next id, stamps CreatedAt, and stores the record.
func (r *ProductRepository) Insert(_ context.Context, p *domain.Product) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.counter++
	stored := *p
	stored.ID = r.counter
	stored.CreatedAt = time.Now().UTC()

	r.products[stored.ID] = &stored
	r.order = append(r.order, stored.ID)

	out := stored
	return &out, nil
}

func (r *ProductRepository) Get(_ context.Context, id int64) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	out := *p
	return &out, nil
}

// Update overwrites each field whose pointer in patch is non-nil. Presence,
// not truthiness, decides: a patch carrying quantity 0 stores 0.
func (r *ProductRepository) Update(_ context.Context, id int64, patch ports.ProductPatch) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}

	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Quantity != nil {
		p.Quantity = *patch.Quantity
	}
	if patch.MinStock != nil {
		p.MinStock = *patch.MinStock
	}

	out := *p
	return &out, nil
}

// Delete removes the record. An absent id is an error, never a silent no-op.
func (r *ProductRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return domain.ErrProductNotFound
	}

	delete(r.products, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// AdjustQuantity adds delta to the product's quantity under the store lock,
// so two concurrent adjustments can never both read the same base value.
func (r *ProductRepository) AdjustQuantity(_ context.Context, id int64, delta int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[id]
	if !ok {
		return 0, domain.ErrProductNotFound
	}
	p.Quantity += delta
	return p.Quantity, nil
}

// List returns products in insertion order with skip/limit pagination.
func (r *ProductRepository) List(_ context.Context, skip, limit int) ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if skip < 0 {
		skip = 0
	}
	if skip >= len(r.order) {
		return []domain.Product{}, nil
	}

	end := len(r.order)
	if limit >= 0 && skip+limit < end {
		end = skip + limit
	}

	out := make([]domain.Product, 0, end-skip)
	for _, id := range r.order[skip:end] {
		out = append(out, *r.products[id])
	}
	return out, nil
}

// All returns every product in insertion order.
func (r *ProductRepository) All(_ context.Context) ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Product, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.products[id])
	}
	return out, nil
}
