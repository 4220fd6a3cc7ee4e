package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un artículo del catálogo.
// El stock no se persiste: se deriva del ledger de eventos de inventario
// (aggregation.ProjectStock) cada vez que se consulta.
type Product struct {
	ID        string
	Name      string
	Size      string
	Color     string
	Price     decimal.Decimal
	CreatedAt time.Time
}
