package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/stockpile/inventory-system/internal/api/metrics"
	"github.com/stockpile/inventory-system/internal/core/ports"
)

// ProductHandler handles HTTP requests for product CRUD and lookups.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// List handles GET /products?skip=&limit=.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        skip   query     int  false  "Records to skip"    default(0)
// @Param        limit  query     int  false  "Max records"        default(100)
// @Success      200    {array}   domain.Product
// @Failure      401    {object}  map[string]string
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	skip, err := queryInt(c, "skip", 0)
	if err != nil {
		return err
	}
	limit, err := queryInt(c, "limit", 100)
	if err != nil {
		return err
	}

	products, err := h.service.List(c.Request().Context(), skip, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Get handles GET /products/:id.
//
// @Summary      Get a product by id
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Product id"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  map[string]string
// @Router       /products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	product, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Create handles POST /products. Admin only.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProductRequest  true  "Product details"
// @Success      201   {object}  domain.Product
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	product, err := h.service.Create(c.Request().Context(), ports.CreateProductInput{
		Name:     req.Name,
		Price:    req.Price,
		Quantity: req.Quantity,
		MinStock: req.MinStock,
	})
	if err != nil {
		return err
	}

	metrics.ProductsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, product)
}

// Update handles PUT /products/:id. Admin only. Fields absent from the body
// are left untouched; present fields are applied even when zero.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                   true  "Product id"
// @Param        body  body      updateProductRequest  true  "Fields to update"
// @Success      200   {object}  domain.Product
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	product, err := h.service.Update(c.Request().Context(), id, ports.ProductPatch{
		Name:     req.Name,
		Price:    req.Price,
		Quantity: req.Quantity,
		MinStock: req.MinStock,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Delete handles DELETE /products/:id. Admin only. Deleting an absent id is a
// 404, never a silent success.
//
// @Summary      Delete a product
// @Tags         products
// @Security     BearerAuth
// @Param        id   path  int  true  "Product id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.ProductsDeletedTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}

// ProfitMargin handles GET /products/:id/profit-margin?cost=.
//
// @Summary      Compute profit margin against a supplied cost
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int     true  "Product id"
// @Param        cost  query     number  true  "Unit cost (must be non-zero)"
// @Success      200   {object}  ports.MarginResult
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /products/{id}/profit-margin [get]
func (h *ProductHandler) ProfitMargin(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	raw := c.QueryParam("cost")
	if raw == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "cost query parameter is required")
	}
	cost, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid cost")
	}

	margin, err := h.service.ProfitMargin(c.Request().Context(), id, cost)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, margin)
}

// Search handles GET /products/search/:name — case-sensitive substring match.
//
// @Summary      Search products by name
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        name  path      string  true  "Substring to match"
// @Success      200   {array}   domain.Product
// @Router       /products/search/{name} [get]
func (h *ProductHandler) Search(c echo.Context) error {
	results, err := h.service.Search(c.Request().Context(), c.Param("name"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, results)
}

// pathID parses the :id path parameter.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	return id, nil
}

// queryInt parses an optional integer query parameter. An absent parameter
// yields def; a non-integer value is a 400.
func queryInt(c echo.Context, name string, def int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return v, nil
}
