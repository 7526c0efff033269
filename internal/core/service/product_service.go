package service

import (
	"context"
	"math"
	"strings"

	"github.com/rs/zerolog"

	"github.com/stockpile/inventory-system/internal/core/domain"
	"github.com/stockpile/inventory-system/internal/core/ports"
)

const defaultMinStock = 10

// AdjustDeduper provides idempotency checks for stock adjustments. A nil
// deduper disables deduplication entirely.
type AdjustDeduper interface {
	Lookup(ctx context.Context, key string) (*domain.Adjustment, error)
	Store(ctx context.Context, key string, adj *domain.Adjustment) error
}

// ProductService implements the inventory use cases on top of a
// ProductRepository.
type ProductService struct {
	repo   ports.ProductRepository
	dedup  AdjustDeduper
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, dedup AdjustDeduper, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, dedup: dedup, logger: logger}
}

func (s *ProductService) Create(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	minStock := defaultMinStock
	if input.MinStock != nil {
		minStock = *input.MinStock
	}

	created, err := s.repo.Insert(ctx, &domain.Product{
		Name:     input.Name,
		Price:    input.Price,
		Quantity: input.Quantity,
		MinStock: minStock,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("product_id", created.ID).Str("name", created.Name).Msg("product created")
	return created, nil
}

func (s *ProductService) Get(ctx context.Context, id int64) (*domain.Product, error) {
	return s.repo.Get(ctx, id)
}

func (s *ProductService) Update(ctx context.Context, id int64, patch ports.ProductPatch) (*domain.Product, error) {
	return s.repo.Update(ctx, id, patch)
}

func (s *ProductService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *ProductService) List(ctx context.Context, skip, limit int) ([]domain.Product, error) {
	return s.repo.List(ctx, skip, limit)
}

// Adjust adds input.Delta to the product's quantity. Deltas may be negative
// and the result may go below zero. The change is a single atomic repository
// operation, so concurrent adjustments to the same product never lose
// updates. When an idempotency key is supplied and a dedup store is
// configured, a replayed key returns the recorded result without touching
// stock again.
func (s *ProductService) Adjust(ctx context.Context, input ports.AdjustInput) (*domain.Adjustment, error) {
	if s.dedup != nil && input.IdempotencyKey != "" {
		prev, err := s.dedup.Lookup(ctx, input.IdempotencyKey)
		if err != nil {
			s.logger.Warn().Err(err).Str("key", input.IdempotencyKey).Msg("dedup lookup failed, proceeding")
		} else if prev != nil {
			s.logger.Debug().Str("key", input.IdempotencyKey).Msg("duplicate adjustment replayed")
			return prev, nil
		}
	}

	newQuantity, err := s.repo.AdjustQuantity(ctx, input.ProductID, input.Delta)
	if err != nil {
		return nil, err
	}

	adj := &domain.Adjustment{
		ProductID:   input.ProductID,
		NewQuantity: newQuantity,
		Delta:       input.Delta,
		Reason:      input.Reason,
	}

	s.logger.Info().
		Int64("product_id", input.ProductID).
		Int("delta", input.Delta).
		Int("new_quantity", newQuantity).
		Str("reason", input.Reason).
		Msg("stock adjusted")

	if s.dedup != nil && input.IdempotencyKey != "" {
		if err := s.dedup.Store(ctx, input.IdempotencyKey, adj); err != nil {
			s.logger.Warn().Err(err).Str("key", input.IdempotencyKey).Msg("dedup store failed")
		}
	}

	return adj, nil
}

// LowStock returns the products whose quantity is at or below min_stock.
func (s *ProductService) LowStock(ctx context.Context) ([]domain.Product, error) {
	products, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	low := make([]domain.Product, 0)
	for _, p := range products {
		if p.LowStock() {
			low = append(low, p)
		}
	}
	return low, nil
}

// ProfitMargin computes (price - cost) / cost * 100, rounded to two decimals.
// A zero cost is rejected with domain.ErrZeroCost.
func (s *ProductService) ProfitMargin(ctx context.Context, id int64, cost float64) (*ports.MarginResult, error) {
	if cost == 0 {
		return nil, domain.ErrZeroCost
	}

	product, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	margin := (product.Price - cost) / cost * 100
	return &ports.MarginResult{
		ProductID:     id,
		Price:         product.Price,
		Cost:          cost,
		MarginPercent: math.Round(margin*100) / 100,
	}, nil
}

// Search returns products whose name contains the given substring
// (case-sensitive), in insertion order.
func (s *ProductService) Search(ctx context.Context, name string) ([]domain.Product, error) {
	products, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]domain.Product, 0)
	for _, p := range products {
		if strings.Contains(p.Name, name) {
			results = append(results, p)
		}
	}
	return results, nil
}

// TotalValue returns the sum of price * quantity across all products.
func (s *ProductService) TotalValue(ctx context.Context) (float64, error) {
	products, err := s.repo.All(ctx)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, p := range products {
		total += p.Price * float64(p.Quantity)
	}
	return total, nil
}
