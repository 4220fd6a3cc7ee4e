package aggregation

import (
	"fmt"
	"sort"

	"github.com/tu-usuario/retail-ledger/internal/domain"
	"github.com/tu-usuario/retail-ledger/internal/domain/entity"
)

// ProjectStock pliega la secuencia de eventos de inventario en el stock
// vigente de un producto: suma las cantidades Added y resta las Removed.
//
// El resultado PUEDE ser negativo. Un stock negativo señala un problema de
// captura (se registraron más salidas que entradas) y se devuelve tal cual
// para que el llamador pueda detectar la inconsistencia; recortarlo a cero
// la escondería.
//
// La suma conmuta, así que el orden no afecta el resultado; aun así el fold
// se hace en orden cronológico estable (occurred_at asc, empates por orden
// de llegada) para habilitar consultas punto-en-el-tiempo a futuro.
//
// Un ChangeType desconocido nunca debe llegar aquí (se rechaza en el
// ingreso); si llega, se devuelve error duro en lugar de ignorarlo, para no
// producir deriva silenciosa de stock.
func ProjectStock(events []entity.InventoryEvent, productID string) (int64, error) {
	ordered := sortChrono(events)

	var total int64
	for _, ev := range ordered {
		if ev.ProductID != productID {
			continue
		}
		switch ev.Change {
		case entity.ChangeAdded:
			total += ev.Quantity
		case entity.ChangeRemoved:
			total -= ev.Quantity
		default:
			return 0, fmt.Errorf("%w: evento %s con tipo %q", domain.ErrInvalidChangeType, ev.ID, ev.Change)
		}
	}
	return total, nil
}

// sortChrono devuelve una copia ordenada por occurred_at ascendente.
// El sort estable preserva el orden de inserción en los empates.
func sortChrono(events []entity.InventoryEvent) []entity.InventoryEvent {
	ordered := make([]entity.InventoryEvent, len(events))
	copy(ordered, events)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].OccurredAt.Before(ordered[j].OccurredAt)
	})
	return ordered
}
