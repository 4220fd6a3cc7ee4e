package memory

import (
	"context"
	"sort"

	"github.com/tu-usuario/retail-ledger/internal/domain"
	"github.com/tu-usuario/retail-ledger/internal/domain/entity"
	"github.com/tu-usuario/retail-ledger/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo adaptador en memoria de TransactionRepository.
type TransactionRepo struct {
	store *Store
}

// NewTransactionRepository construye el adaptador sobre el store compartido.
func NewTransactionRepository(store *Store) *TransactionRepo {
	return &TransactionRepo{store: store}
}

// Create agrega una transacción al ledger.
func (r *TransactionRepo) Create(ctx context.Context, tx *entity.Transaction) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.transactions {
		if s.transactions[i].ID == tx.ID {
			return domain.ErrDuplicate
		}
	}
	s.transactions = append(s.transactions, *tx)
	return nil
}

// GetByID devuelve la transacción o (nil, nil) si no existe.
func (r *TransactionRepo) GetByID(ctx context.Context, id string) (*entity.Transaction, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.transactions {
		if s.transactions[i].ID == id {
			tx := s.transactions[i]
			return &tx, nil
		}
	}
	return nil, nil
}

// ListByKind devuelve el histórico completo del tipo dado, en orden de
// inserción.
func (r *TransactionRepo) ListByKind(ctx context.Context, kind entity.TransactionKind) ([]entity.Transaction, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Transaction, 0)
	for _, tx := range s.transactions {
		if tx.Kind == kind {
			out = append(out, tx)
		}
	}
	return out, nil
}

// ListRecentSales devuelve las `limit` ventas más recientes: occurred_at
// descendente, ID ascendente como desempate determinista.
func (r *TransactionRepo) ListRecentSales(ctx context.Context, limit int) ([]entity.Transaction, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	sales := make([]entity.Transaction, 0)
	for _, tx := range s.transactions {
		if tx.Kind == entity.KindSale {
			sales = append(sales, tx)
		}
	}
	sort.Slice(sales, func(i, j int) bool {
		if !sales[i].OccurredAt.Equal(sales[j].OccurredAt) {
			return sales[i].OccurredAt.After(sales[j].OccurredAt)
		}
		return sales[i].ID < sales[j].ID
	})
	if limit > 0 && len(sales) > limit {
		sales = sales[:limit]
	}
	return sales, nil
}

// Delete elimina la transacción.
func (r *TransactionRepo) Delete(ctx context.Context, id string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.transactions {
		if s.transactions[i].ID == id {
			s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}
