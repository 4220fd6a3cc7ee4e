package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/tu-usuario/retail-ledger/internal/domain"
	"github.com/tu-usuario/retail-ledger/internal/domain/entity"
	"github.com/tu-usuario/retail-ledger/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación de TransactionRepository.
//
// La columna amount es TEXT a propósito: es el formato del ledger legado y
// la normalización numérica pertenece al núcleo de agregación, no al SQL.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// occurredAtParam representa la fecha cero del dominio como NULL en SQL.
// Los registros legados sin fecha quedan NULL; al leer vuelven como fecha
// cero y el núcleo de agregación los degrada a diagnóstico, nunca a error.
func occurredAtParam(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: !t.IsZero()}
}

func occurredAtValue(ts pgtype.Timestamptz) time.Time {
	if !ts.Valid {
		return time.Time{}
	}
	return ts.Time
}

// Create persiste una transacción.
func (r *TransactionRepo) Create(ctx context.Context, tx *entity.Transaction) error {
	query := `
		INSERT INTO transactions (id, kind, counterparty_id, occurred_at, amount)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		tx.ID, string(tx.Kind), tx.CounterpartyID, occurredAtParam(tx.OccurredAt), tx.Amount,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByID obtiene una transacción por ID.
func (r *TransactionRepo) GetByID(ctx context.Context, id string) (*entity.Transaction, error) {
	query := `
		SELECT id, kind, counterparty_id, occurred_at, amount
		FROM transactions WHERE id = $1`
	var t entity.Transaction
	var kind string
	var ts pgtype.Timestamptz
	err := r.q.QueryRow(ctx, query, id).Scan(&t.ID, &kind, &t.CounterpartyID, &ts, &t.Amount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	t.Kind = entity.TransactionKind(kind)
	t.OccurredAt = occurredAtValue(ts)
	return &t, nil
}

// ListByKind devuelve el histórico completo del tipo dado. NULLS FIRST:
// una fecha NULL equivale a la fecha cero, que ordena antes que todo.
func (r *TransactionRepo) ListByKind(ctx context.Context, kind entity.TransactionKind) ([]entity.Transaction, error) {
	query := `
		SELECT id, kind, counterparty_id, occurred_at, amount
		FROM transactions WHERE kind = $1
		ORDER BY occurred_at ASC NULLS FIRST, seq ASC`
	return r.list(ctx, query, string(kind))
}

// ListRecentSales devuelve las `limit` ventas más recientes; el desempate
// por id ASC hace la lista determinista ante fechas repetidas. NULLS LAST:
// una venta sin fecha jamás desplaza a una venta reciente real.
func (r *TransactionRepo) ListRecentSales(ctx context.Context, limit int) ([]entity.Transaction, error) {
	query := `
		SELECT id, kind, counterparty_id, occurred_at, amount
		FROM transactions WHERE kind = $1
		ORDER BY occurred_at DESC NULLS LAST, id ASC LIMIT $2`
	return r.list(ctx, query, string(entity.KindSale), limit)
}

// Delete elimina la transacción.
func (r *TransactionRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *TransactionRepo) list(ctx context.Context, query string, args ...any) ([]entity.Transaction, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var list []entity.Transaction
	for rows.Next() {
		var t entity.Transaction
		var kind string
		var ts pgtype.Timestamptz
		if err := rows.Scan(&t.ID, &kind, &t.CounterpartyID, &ts, &t.Amount); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		t.Kind = entity.TransactionKind(kind)
		t.OccurredAt = occurredAtValue(ts)
		list = append(list, t)
	}
	return list, rows.Err()
}
