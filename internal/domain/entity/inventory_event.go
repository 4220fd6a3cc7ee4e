package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/tu-usuario/retail-ledger/internal/domain"
)

// Tipos de cambio de inventario. El ledger legado los guarda como texto libre
// ("Added", "added", "ADDED"); ParseChangeType los normaliza en el ingreso.
type ChangeType string

const (
	ChangeAdded   ChangeType = "Added"   // entrada de stock
	ChangeRemoved ChangeType = "Removed" // salida de stock
)

// ParseChangeType normaliza el texto recibido a un ChangeType válido.
// Cualquier valor desconocido es un error duro: un tipo ignorado en silencio
// produciría deriva de stock imposible de detectar después.
func ParseChangeType(raw string) (ChangeType, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "added":
		return ChangeAdded, nil
	case "removed":
		return ChangeRemoved, nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidChangeType, raw)
	}
}

// InventoryEvent representa un registro del ledger de inventario.
// El log NO es append-only: los registros pueden editarse o borrarse, y el
// stock derivado cambia retroactivamente con ellos (ver InventoryEvent en el
// proyector: siempre se re-deriva del ledger vigente).
type InventoryEvent struct {
	ID         string
	ProductID  string
	Change     ChangeType
	Quantity   int64
	OccurredAt time.Time
}

// Validate verifica las reglas de ingreso del evento.
// Cantidades negativas se rechazan: el signo lo aporta el ChangeType.
func (e *InventoryEvent) Validate() error {
	if e.ID == "" || e.ProductID == "" {
		return domain.ErrInvalidInput
	}
	if _, err := ParseChangeType(string(e.Change)); err != nil {
		return err
	}
	if e.Quantity < 0 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidQuantity, e.Quantity)
	}
	return nil
}
