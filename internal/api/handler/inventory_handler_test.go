package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stockpile/inventory-system/internal/core/domain"
	"github.com/stockpile/inventory-system/internal/core/ports"
)

func TestInventoryHandler_Adjust_Success(t *testing.T) {
	stub := &stubProductService{
		adjustFn: func(ctx context.Context, input ports.AdjustInput) (*domain.Adjustment, error) {
			if input.ProductID != 4 || input.Delta != -2 || input.Reason != "damage" {
				t.Fatalf("unexpected input: %+v", input)
			}
			if input.IdempotencyKey != "abc-123" {
				t.Fatalf("idempotency key not forwarded: %q", input.IdempotencyKey)
			}
			return &domain.Adjustment{ProductID: 4, NewQuantity: 8, Delta: -2, Reason: "damage"}, nil
		},
	}
	h := NewInventoryHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/inventory/adjust", `{"product_id":4,"adjustment":-2,"reason":"damage"}`)
	c.Request().Header.Set("Idempotency-Key", "abc-123")

	if err := h.Adjust(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["new_quantity"] != float64(8) || resp["adjustment"] != float64(-2) {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestInventoryHandler_Adjust_MissingReason(t *testing.T) {
	stub := &stubProductService{
		adjustFn: func(ctx context.Context, input ports.AdjustInput) (*domain.Adjustment, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewInventoryHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/inventory/adjust", `{"product_id":4,"adjustment":1}`)
	err := h.Adjust(c)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	c.Echo().HTTPErrorHandler(err, c)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestInventoryHandler_Adjust_NotFoundPropagates(t *testing.T) {
	stub := &stubProductService{
		adjustFn: func(ctx context.Context, input ports.AdjustInput) (*domain.Adjustment, error) {
			return nil, domain.ErrProductNotFound
		},
	}
	h := NewInventoryHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/inventory/adjust", `{"product_id":99,"adjustment":1,"reason":"restock"}`)
	if err := h.Adjust(c); err != domain.ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound to propagate, got %v", err)
	}
}

func TestInventoryHandler_Value(t *testing.T) {
	stub := &stubProductService{
		totalFn: func(ctx context.Context) (float64, error) {
			return 40, nil
		},
	}
	h := NewInventoryHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/inventory/value", "")
	if err := h.Value(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]float64
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["total_value"] != 40 {
		t.Fatalf("expected 40, got %v", resp["total_value"])
	}
}

func TestInventoryHandler_LowStock(t *testing.T) {
	stub := &stubProductService{
		lowFn: func(ctx context.Context) ([]domain.Product, error) {
			return []domain.Product{{ID: 1, Name: "scarce", Quantity: 5, MinStock: 10}}, nil
		},
	}
	h := NewInventoryHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/inventory/low-stock", "")
	if err := h.LowStock(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 || resp[0]["name"] != "scarce" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}
