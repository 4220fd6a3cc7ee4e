package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Esquema del Ledger Store. amount es TEXT (formato legado, normaliza el
// núcleo); seq persiste el orden de inserción para el desempate cronológico.
// transactions.occurred_at admite NULL: hay registros legados sin fecha, y el
// adaptador los lee como fecha cero para que el agregador los excluya con
// diagnóstico en vez de fallar el scan.
const schema = `
CREATE TABLE IF NOT EXISTS customers (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	email      TEXT NOT NULL DEFAULT '',
	phone      TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS products (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	size       TEXT NOT NULL DEFAULT '',
	color      TEXT NOT NULL DEFAULT '',
	price      NUMERIC(14,2) NOT NULL DEFAULT 0,
	created_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS inventory_events (
	id          TEXT PRIMARY KEY,
	seq         BIGSERIAL,
	product_id  TEXT NOT NULL REFERENCES products(id),
	change_type TEXT NOT NULL,
	quantity    BIGINT NOT NULL CHECK (quantity >= 0),
	occurred_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_inventory_events_product
	ON inventory_events (product_id, occurred_at, seq);

CREATE TABLE IF NOT EXISTS transactions (
	id              TEXT PRIMARY KEY,
	seq             BIGSERIAL,
	kind            TEXT NOT NULL,
	counterparty_id TEXT NOT NULL,
	occurred_at     TIMESTAMPTZ,
	amount          TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_transactions_kind
	ON transactions (kind, occurred_at DESC, id);
`

// EnsureSchema crea las tablas del ledger si no existen.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("crear esquema: %w", err)
	}
	return nil
}
