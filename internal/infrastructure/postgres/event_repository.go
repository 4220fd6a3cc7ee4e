package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/retail-ledger/internal/domain"
	"github.com/tu-usuario/retail-ledger/internal/domain/entity"
	"github.com/tu-usuario/retail-ledger/internal/domain/repository"
)

var _ repository.EventRepository = (*EventRepo)(nil)

// EventRepo implementación de EventRepository (usable con pool o tx).
//
// La columna seq (BIGSERIAL) persiste el orden de inserción: los listados
// ordenan por occurred_at ASC, seq ASC, que es el desempate que el proyector
// espera.
type EventRepo struct {
	q Querier
}

// NewEventRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEventRepository(q Querier) *EventRepo {
	return &EventRepo{q: q}
}

// Create persiste un evento de inventario.
func (r *EventRepo) Create(ctx context.Context, event *entity.InventoryEvent) error {
	query := `
		INSERT INTO inventory_events (id, product_id, change_type, quantity, occurred_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		event.ID, event.ProductID, string(event.Change), event.Quantity, event.OccurredAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert inventory_event: %w", err)
	}
	return nil
}

// GetByID obtiene un evento por ID.
func (r *EventRepo) GetByID(ctx context.Context, id string) (*entity.InventoryEvent, error) {
	query := `
		SELECT id, product_id, change_type, quantity, occurred_at
		FROM inventory_events WHERE id = $1`
	event, err := scanEvent(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory_event: %w", err)
	}
	return event, nil
}

// ListAll devuelve el ledger completo en orden cronológico estable.
func (r *EventRepo) ListAll(ctx context.Context) ([]entity.InventoryEvent, error) {
	query := `
		SELECT id, product_id, change_type, quantity, occurred_at
		FROM inventory_events ORDER BY occurred_at ASC, seq ASC`
	return r.list(ctx, query)
}

// ListByProduct filtra por producto, mismo orden que ListAll.
func (r *EventRepo) ListByProduct(ctx context.Context, productID string) ([]entity.InventoryEvent, error) {
	query := `
		SELECT id, product_id, change_type, quantity, occurred_at
		FROM inventory_events WHERE product_id = $1 ORDER BY occurred_at ASC, seq ASC`
	return r.list(ctx, query, productID)
}

// Delete elimina el registro (log mutable por diseño del sistema original).
func (r *EventRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM inventory_events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inventory_event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *EventRepo) list(ctx context.Context, query string, args ...any) ([]entity.InventoryEvent, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory_events: %w", err)
	}
	defer rows.Close()

	var list []entity.InventoryEvent
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventory_event: %w", err)
		}
		list = append(list, *event)
	}
	return list, rows.Err()
}

// scanEvent lee una fila re-validando change_type: un tipo desconocido en la
// base es error duro aquí, en la frontera, para que jamás llegue al proyector.
func scanEvent(row pgx.Row) (*entity.InventoryEvent, error) {
	var e entity.InventoryEvent
	var rawChange string
	if err := row.Scan(&e.ID, &e.ProductID, &rawChange, &e.Quantity, &e.OccurredAt); err != nil {
		return nil, err
	}
	change, err := entity.ParseChangeType(rawChange)
	if err != nil {
		return nil, fmt.Errorf("evento %s: %w", e.ID, err)
	}
	e.Change = change
	return &e, nil
}
