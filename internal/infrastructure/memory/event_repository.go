package memory

import (
	"context"

	"github.com/tu-usuario/retail-ledger/internal/domain"
	"github.com/tu-usuario/retail-ledger/internal/domain/entity"
	"github.com/tu-usuario/retail-ledger/internal/domain/repository"
)

var _ repository.EventRepository = (*EventRepo)(nil)

// EventRepo adaptador en memoria de EventRepository.
type EventRepo struct {
	store *Store
}

// NewEventRepository construye el adaptador sobre el store compartido.
func NewEventRepository(store *Store) *EventRepo {
	return &EventRepo{store: store}
}

// Create agrega un evento al ledger preservando el orden de llegada.
func (r *EventRepo) Create(ctx context.Context, event *entity.InventoryEvent) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.events {
		if s.events[i].ID == event.ID {
			return domain.ErrDuplicate
		}
	}
	s.events = append(s.events, *event)
	return nil
}

// GetByID devuelve el evento o (nil, nil) si no existe.
func (r *EventRepo) GetByID(ctx context.Context, id string) (*entity.InventoryEvent, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.events {
		if s.events[i].ID == id {
			ev := s.events[i]
			return &ev, nil
		}
	}
	return nil, nil
}

// ListAll devuelve el ledger completo en orden cronológico estable.
func (r *EventRepo) ListAll(ctx context.Context) ([]entity.InventoryEvent, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortEventsChrono(s.events), nil
}

// ListByProduct filtra por producto antes de ordenar.
func (r *EventRepo) ListByProduct(ctx context.Context, productID string) ([]entity.InventoryEvent, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	filtered := make([]entity.InventoryEvent, 0)
	for _, ev := range s.events {
		if ev.ProductID == productID {
			filtered = append(filtered, ev)
		}
	}
	return sortEventsChrono(filtered), nil
}

// Delete elimina el registro del ledger (log mutable por diseño).
func (r *EventRepo) Delete(ctx context.Context, id string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.events {
		if s.events[i].ID == id {
			s.events = append(s.events[:i], s.events[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}
