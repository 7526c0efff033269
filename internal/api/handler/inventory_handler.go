package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stockpile/inventory-system/internal/api/metrics"
	"github.com/stockpile/inventory-system/internal/core/ports"
)

// InventoryHandler handles stock-level operations and derived views.
type InventoryHandler struct {
	service ports.ProductService
}

func NewInventoryHandler(service ports.ProductService) *InventoryHandler {
	return &InventoryHandler{service: service}
}

// Adjust handles POST /inventory/adjust. Admin only. The delta may be
// negative and no floor at zero is enforced.
//
// @Summary      Adjust stock for a product
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string         false  "Replay-safe adjustment key"
// @Param        body             body      adjustRequest  true   "Adjustment details"
// @Success      200              {object}  domain.Adjustment
// @Failure      404              {object}  map[string]string
// @Failure      422              {object}  map[string]string
// @Router       /inventory/adjust [post]
func (h *InventoryHandler) Adjust(c echo.Context) error {
	var req adjustRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	adj, err := h.service.Adjust(c.Request().Context(), ports.AdjustInput{
		ProductID:      req.ProductID,
		Delta:          req.Delta,
		Reason:         req.Reason,
		IdempotencyKey: c.Request().Header.Get("Idempotency-Key"),
	})
	if err != nil {
		return err
	}

	metrics.AdjustmentsTotal.WithLabelValues(direction(adj.Delta)).Inc()
	return c.JSON(http.StatusOK, adj)
}

// LowStock handles GET /inventory/low-stock — products at or below their
// minimum stock threshold.
//
// @Summary      List products needing replenishment
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Product
// @Router       /inventory/low-stock [get]
func (h *InventoryHandler) LowStock(c echo.Context) error {
	products, err := h.service.LowStock(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Value handles GET /inventory/value — the summed price × quantity over all
// products.
//
// @Summary      Total inventory value
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  totalValueResponse
// @Router       /inventory/value [get]
func (h *InventoryHandler) Value(c echo.Context) error {
	total, err := h.service.TotalValue(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, totalValueResponse{TotalValue: total})
}

func direction(delta int) string {
	if delta < 0 {
		return "decrease"
	}
	return "increase"
}
