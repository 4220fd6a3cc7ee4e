package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/retail-ledger/internal/application/analytics"
)

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetStats devuelve el snapshot del dashboard.
// GET /api/dashboard/stats
//
// Respuesta: DashboardSnapshotDTO (total_sales, total_purchases,
// customer_count, product_count, recent_sales[≤5], data_warnings).
// Se re-deriva del histórico completo en cada llamada.
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	snapshot, err := h.uc.GetSnapshot(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(snapshot)
}

// GetSalesByMonth devuelve las ventas agrupadas por mes calendario.
// GET /api/dashboard/sales-by-month
func (h *DashboardHandler) GetSalesByMonth(c *fiber.Ctx) error {
	monthly, err := h.uc.GetSalesByMonth(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(monthly)
}

// GetRecentSales devuelve las 5 ventas más recientes con cliente unido.
// GET /api/dashboard/recent-sales
func (h *DashboardHandler) GetRecentSales(c *fiber.Ctx) error {
	recent, err := h.uc.GetRecentSales(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(recent)
}
