package service

import (
	"context"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/stockpile/inventory-system/internal/core/domain"
	"github.com/stockpile/inventory-system/internal/core/ports"
	"github.com/stockpile/inventory-system/internal/infrastructure/memory"
)

func newTestService() *ProductService {
	return NewProductService(memory.NewProductRepository(), nil, zerolog.Nop())
}

func mustCreate(t *testing.T, svc *ProductService, name string, price float64, quantity, minStock int) *domain.Product {
	t.Helper()
	p, err := svc.Create(context.Background(), ports.CreateProductInput{
		Name:     name,
		Price:    price,
		Quantity: quantity,
		MinStock: &minStock,
	})
	if err != nil {
		t.Fatalf("create %q: %v", name, err)
	}
	return p
}

func TestProductService_Create_MonotonicIDs(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	first := mustCreate(t, svc, "Widget", 10, 5, 2)
	second := mustCreate(t, svc, "Gadget", 20, 5, 2)
	if second.ID <= first.ID {
		t.Fatalf("expected id %d > %d", second.ID, first.ID)
	}

	// Ids are never reused, even after a delete.
	if err := svc.Delete(ctx, second.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	third := mustCreate(t, svc, "Doohickey", 30, 5, 2)
	if third.ID <= second.ID {
		t.Fatalf("expected id %d > %d after delete", third.ID, second.ID)
	}
}

func TestProductService_Create_DefaultMinStock(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	p, err := svc.Create(ctx, ports.CreateProductInput{Name: "Widget", Price: 10, Quantity: 5})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.MinStock != 10 {
		t.Fatalf("expected default min_stock 10, got %d", p.MinStock)
	}

	// An explicit zero is kept, not replaced by the default.
	zero := 0
	p, err = svc.Create(ctx, ports.CreateProductInput{Name: "NoMin", Price: 10, Quantity: 5, MinStock: &zero})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.MinStock != 0 {
		t.Fatalf("expected explicit min_stock 0 to stick, got %d", p.MinStock)
	}
}

func TestProductService_TotalValue_Sums(t *testing.T) {
	svc := newTestService()
	mustCreate(t, svc, "A", 10, 2, 1)
	mustCreate(t, svc, "B", 5, 4, 1)

	total, err := svc.TotalValue(context.Background())
	if err != nil {
		t.Fatalf("total value: %v", err)
	}
	if total != 40 {
		t.Fatalf("expected total 40 (10*2 + 5*4), got %v", total)
	}
}

func TestProductService_LowStock_AtOrBelowThreshold(t *testing.T) {
	svc := newTestService()
	mustCreate(t, svc, "plenty", 10, 50, 10)
	low := mustCreate(t, svc, "scarce", 10, 5, 10)
	edge := mustCreate(t, svc, "edge", 10, 10, 10)

	products, err := svc.LowStock(context.Background())
	if err != nil {
		t.Fatalf("low stock: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 low-stock products, got %d", len(products))
	}
	if products[0].ID != low.ID || products[1].ID != edge.ID {
		t.Fatalf("unexpected low-stock set: %+v", products)
	}
}

func TestProductService_ProfitMargin(t *testing.T) {
	svc := newTestService()
	p := mustCreate(t, svc, "Widget", 500, 5, 2)

	margin, err := svc.ProfitMargin(context.Background(), p.ID, 400)
	if err != nil {
		t.Fatalf("profit margin: %v", err)
	}
	if margin.MarginPercent != 25.0 {
		t.Fatalf("expected 25.0, got %v", margin.MarginPercent)
	}
	if margin.Price != 500 || margin.Cost != 400 {
		t.Fatalf("unexpected margin payload: %+v", margin)
	}
}

func TestProductService_ProfitMargin_ZeroCost(t *testing.T) {
	svc := newTestService()
	p := mustCreate(t, svc, "Widget", 500, 5, 2)

	if _, err := svc.ProfitMargin(context.Background(), p.ID, 0); err != domain.ErrZeroCost {
		t.Fatalf("expected ErrZeroCost, got %v", err)
	}
}

func TestProductService_ProfitMargin_NotFound(t *testing.T) {
	svc := newTestService()
	if _, err := svc.ProfitMargin(context.Background(), 99, 100); err != domain.ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductService_Adjust(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	p := mustCreate(t, svc, "Widget", 10, 5, 2)

	adj, err := svc.Adjust(ctx, ports.AdjustInput{ProductID: p.ID, Delta: -8, Reason: "damage"})
	if err != nil {
		t.Fatalf("adjust: %v", err)
	}
	if adj.NewQuantity != -3 {
		t.Fatalf("expected -3 (no zero floor), got %d", adj.NewQuantity)
	}
	if adj.Delta != -8 || adj.Reason != "damage" {
		t.Fatalf("unexpected adjustment payload: %+v", adj)
	}

	stored, err := svc.Get(ctx, p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Quantity != -3 {
		t.Fatalf("expected stored quantity -3, got %d", stored.Quantity)
	}
}

func TestProductService_Adjust_ConcurrentNoLostUpdates(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	p := mustCreate(t, svc, "Widget", 10, 0, 2)

	const workers = 200
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			if _, err := svc.Adjust(ctx, ports.AdjustInput{ProductID: p.ID, Delta: 1, Reason: "restock"}); err != nil {
				t.Errorf("adjust: %v", err)
			}
		}()
	}
	wg.Wait()

	stored, err := svc.Get(ctx, p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Quantity != workers {
		t.Fatalf("lost updates: expected quantity %d, got %d", workers, stored.Quantity)
	}
}

func TestProductService_Adjust_NotFound(t *testing.T) {
	svc := newTestService()
	if _, err := svc.Adjust(context.Background(), ports.AdjustInput{ProductID: 42, Delta: 1, Reason: "restock"}); err != domain.ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

type stubDeduper struct {
	seen map[string]*domain.Adjustment
}

func (d *stubDeduper) Lookup(_ context.Context, key string) (*domain.Adjustment, error) {
	return d.seen[key], nil
}

func (d *stubDeduper) Store(_ context.Context, key string, adj *domain.Adjustment) error {
	d.seen[key] = adj
	return nil
}

func TestProductService_Adjust_IdempotentReplay(t *testing.T) {
	dedup := &stubDeduper{seen: make(map[string]*domain.Adjustment)}
	svc := NewProductService(memory.NewProductRepository(), dedup, zerolog.Nop())
	ctx := context.Background()

	minStock := 2
	p, err := svc.Create(ctx, ports.CreateProductInput{Name: "Widget", Price: 10, Quantity: 5, MinStock: &minStock})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	input := ports.AdjustInput{ProductID: p.ID, Delta: 3, Reason: "restock", IdempotencyKey: "key-1"}
	first, err := svc.Adjust(ctx, input)
	if err != nil {
		t.Fatalf("first adjust: %v", err)
	}
	replay, err := svc.Adjust(ctx, input)
	if err != nil {
		t.Fatalf("replayed adjust: %v", err)
	}
	if replay.NewQuantity != first.NewQuantity {
		t.Fatalf("replay changed quantity: %d vs %d", replay.NewQuantity, first.NewQuantity)
	}

	stored, err := svc.Get(ctx, p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Quantity != 8 {
		t.Fatalf("expected quantity 8 after single applied adjustment, got %d", stored.Quantity)
	}
}

func TestProductService_Search_CaseSensitive(t *testing.T) {
	svc := newTestService()
	mustCreate(t, svc, "Steel Bolt", 1, 10, 2)
	mustCreate(t, svc, "steel nut", 1, 10, 2)
	mustCreate(t, svc, "Washer", 1, 10, 2)

	results, err := svc.Search(context.Background(), "Steel")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 1 || results[0].Name != "Steel Bolt" {
		t.Fatalf("expected only the exact-case match, got %+v", results)
	}
}

func TestProductService_Update_ZeroQuantityApplies(t *testing.T) {
	svc := newTestService()
	p := mustCreate(t, svc, "Widget", 10, 5, 2)

	zero := 0
	updated, err := svc.Update(context.Background(), p.ID, ports.ProductPatch{Quantity: &zero})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Quantity != 0 {
		t.Fatalf("expected quantity 0, got %d", updated.Quantity)
	}
	if updated.Name != "Widget" || updated.Price != 10 {
		t.Fatalf("absent fields must be untouched: %+v", updated)
	}
}

func TestProductService_Delete_Missing(t *testing.T) {
	svc := newTestService()
	if err := svc.Delete(context.Background(), 7); err != domain.ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}
