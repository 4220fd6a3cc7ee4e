package repository

import (
	"context"

	"github.com/tu-usuario/retail-ledger/internal/domain/entity"
)

// EventRepository define el puerto del Ledger Store para eventos de
// inventario. El log es mutable: además de crear, permite borrar registros,
// y el stock derivado cambia retroactivamente con cada mutación.
//
// Los listados devuelven los eventos ordenados por occurred_at ascendente,
// con el orden de inserción como desempate, para que el fold del proyector
// sea estable sin re-ordenar.
type EventRepository interface {
	Create(ctx context.Context, event *entity.InventoryEvent) error
	GetByID(ctx context.Context, id string) (*entity.InventoryEvent, error)
	ListAll(ctx context.Context) ([]entity.InventoryEvent, error)
	ListByProduct(ctx context.Context, productID string) ([]entity.InventoryEvent, error)
	Delete(ctx context.Context, id string) error
}
