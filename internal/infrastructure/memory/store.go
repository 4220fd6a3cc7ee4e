// Package memory implementa el Ledger Store en memoria, detrás de los mismos
// puertos que la implementación PostgreSQL. Respaldo del modo standalone
// (LEDGER_BACKEND=memory) y de los tests de casos de uso y handlers.
package memory

import (
	"sort"
	"sync"

	"github.com/tu-usuario/retail-ledger/internal/domain/entity"
)

// Store guarda todas las colecciones del ledger protegidas por un RWMutex.
// Los slices preservan el orden de inserción, que es el desempate de los
// listados cronológicos. Cada puerto se expone con un adaptador propio
// (NewEventRepository, NewTransactionRepository, ...) sobre el mismo Store.
type Store struct {
	mu           sync.RWMutex
	events       []entity.InventoryEvent
	transactions []entity.Transaction
	customers    map[string]entity.Customer
	customerIDs  []string
	products     map[string]entity.Product
	productIDs   []string
}

// New crea un store vacío.
func New() *Store {
	return &Store{
		customers: make(map[string]entity.Customer),
		products:  make(map[string]entity.Product),
	}
}

// sortEventsChrono copia y ordena por occurred_at asc; el sort estable
// preserva el orden de inserción en los empates.
func sortEventsChrono(events []entity.InventoryEvent) []entity.InventoryEvent {
	out := make([]entity.InventoryEvent, len(events))
	copy(out, events)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OccurredAt.Before(out[j].OccurredAt)
	})
	return out
}
