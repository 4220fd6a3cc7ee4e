package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/tu-usuario/retail-ledger/internal/domain"
)

// Tipos de transacción del ledger financiero.
type TransactionKind string

const (
	KindSale     TransactionKind = "sale"
	KindPurchase TransactionKind = "purchase"
)

// ParseTransactionKind normaliza el texto recibido a un TransactionKind válido.
func ParseTransactionKind(raw string) (TransactionKind, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "sale":
		return KindSale, nil
	case "purchase":
		return KindPurchase, nil
	default:
		return "", fmt.Errorf("%w: tipo de transacción %q", domain.ErrInvalidInput, raw)
	}
}

// Transaction representa una venta o compra del ledger.
//
// Amount se conserva como texto: el formato legado persiste los montos sin
// tipar y la normalización numérica es responsabilidad del núcleo de
// agregación (aggregation.Normalize), no del almacenamiento.
type Transaction struct {
	ID             string
	Kind           TransactionKind
	CounterpartyID string // cliente en ventas, proveedor en compras
	OccurredAt     time.Time
	Amount         string
}
