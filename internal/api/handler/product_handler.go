package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clinicadmin/inventory-api/internal/api/metrics"
	"github.com/clinicadmin/inventory-api/internal/core/ports"
)

// ProductHandler serves the admin catalogue routes.
type ProductHandler struct {
	service ports.ProductService
	metrics *metrics.Metrics
}

func NewProductHandler(service ports.ProductService, m *metrics.Metrics) *ProductHandler {
	return &ProductHandler{service: service, metrics: m}
}

// List handles GET /v1/products.
//
// @Summary      List all products
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Product
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /v1/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.ListProducts(c.Request().Context())
	if err != nil {
		return err
	}
	h.metrics.ProductsReturned.Set(float64(len(products)))
	return c.JSON(http.StatusOK, products)
}

// Summary handles GET /v1/products/summary.
//
// @Summary      Inventory stock and profit summary
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.InventorySummary
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /v1/products/summary [get]
func (h *ProductHandler) Summary(c echo.Context) error {
	summary, err := h.service.Summarize(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}
