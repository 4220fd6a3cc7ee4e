package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardSnapshotDTO respuesta de GET /api/dashboard/stats.
//
// Es un snapshot re-derivado en cada llamada desde el histórico completo del
// ledger; no hay saldo acumulado persistido. Un snapshot con todo en cero y
// DataWarnings en cero es "sin actividad", que es distinto de una falla de
// agregación (esa llega como error HTTP, nunca como ceros).
type DashboardSnapshotDTO struct {
	TotalSales     decimal.Decimal `json:"total_sales"`     // suma histórica de ventas normalizadas
	TotalPurchases decimal.Decimal `json:"total_purchases"` // suma histórica de compras normalizadas
	CustomerCount  int             `json:"customer_count"`
	ProductCount   int             `json:"product_count"`
	RecentSales    []RecentSaleDTO `json:"recent_sales"` // ≤5, más reciente primero

	// DataWarnings cuenta los registros malformados absorbidos durante la
	// agregación (montos ilegibles normalizados a 0). Permite detectar
	// regresiones de calidad de datos sin tumbar el dashboard.
	DataWarnings int `json:"data_warnings"`
}

// RecentSaleDTO una venta del widget de actividad reciente, con el monto ya
// normalizado para presentación y el nombre del cliente unido por referencia.
type RecentSaleDTO struct {
	ID           string          `json:"id"`
	CustomerID   string          `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	Date         time.Time       `json:"date"`
	Amount       decimal.Decimal `json:"amount"`
}

// MonthlySalesDTO respuesta de GET /api/dashboard/sales-by-month.
// Months va pre-ordenado cronológicamente; Totals es la vista diccionario
// del endpoint legado.
type MonthlySalesDTO struct {
	Months       []MonthTotalDTO            `json:"months"`
	Totals       map[string]decimal.Decimal `json:"totals"`
	DataWarnings int                        `json:"data_warnings"`
}

// MonthTotalDTO total de un mes calendario.
type MonthTotalDTO struct {
	Month string          `json:"month"` // ej: "Jan 2024"
	Total decimal.Decimal `json:"total"`
}
