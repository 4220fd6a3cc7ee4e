// Package inventory contiene el caso de uso del ledger de inventario:
// ingreso validado de eventos y proyección de stock bajo demanda.
package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/retail-ledger/internal/application/dto"
	"github.com/tu-usuario/retail-ledger/internal/domain"
	"github.com/tu-usuario/retail-ledger/internal/domain/aggregation"
	"github.com/tu-usuario/retail-ledger/internal/domain/entity"
	"github.com/tu-usuario/retail-ledger/internal/domain/repository"
)

// UseCase opera el ledger de eventos de inventario. La validación de
// ChangeType sucede aquí, en la frontera de ingreso: el proyector nunca debe
// recibir un tipo desconocido.
type UseCase struct {
	eventRepo   repository.EventRepository
	productRepo repository.ProductRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(eventRepo repository.EventRepository, productRepo repository.ProductRepository) *UseCase {
	return &UseCase{eventRepo: eventRepo, productRepo: productRepo}
}

// RegisterEvent valida e inserta un evento de inventario.
// Rechaza en la frontera: change_type desconocido y cantidad negativa son
// errores duros (nunca se absorben), y el producto debe existir.
func (uc *UseCase) RegisterEvent(ctx context.Context, in dto.CreateEventRequest) (*dto.EventResponse, error) {
	change, err := entity.ParseChangeType(in.ChangeType)
	if err != nil {
		return nil, err
	}
	if in.Quantity < 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidQuantity, in.Quantity)
	}
	if in.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, fmt.Errorf("verificar producto: %w", err)
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	occurredAt := in.Date
	if occurredAt.IsZero() {
		occurredAt = time.Now().UTC()
	}

	event := &entity.InventoryEvent{
		ID:         uuid.New().String(),
		ProductID:  in.ProductID,
		Change:     change,
		Quantity:   in.Quantity,
		OccurredAt: occurredAt,
	}
	if err := uc.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("insertar evento: %w", err)
	}
	return toEventResponse(event), nil
}

// ListEvents devuelve el ledger completo en orden cronológico.
func (uc *UseCase) ListEvents(ctx context.Context) ([]dto.EventResponse, error) {
	events, err := uc.eventRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar eventos: %w", err)
	}
	out := make([]dto.EventResponse, 0, len(events))
	for i := range events {
		out = append(out, *toEventResponse(&events[i]))
	}
	return out, nil
}

// DeleteEvent borra un registro del ledger. El log es mutable por diseño
// del sistema original: el stock derivado cambia retroactivamente con el
// borrado, porque la proyección siempre se re-deriva del ledger vigente.
func (uc *UseCase) DeleteEvent(ctx context.Context, id string) error {
	event, err := uc.eventRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("buscar evento: %w", err)
	}
	if event == nil {
		return domain.ErrNotFound
	}
	return uc.eventRepo.Delete(ctx, id)
}

// GetStock proyecta el stock vigente de un producto plegando sus eventos.
// El resultado puede ser negativo y se devuelve tal cual.
func (uc *UseCase) GetStock(ctx context.Context, productID string) (*dto.StockResponse, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("verificar producto: %w", err)
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	events, err := uc.eventRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("listar eventos de %s: %w", productID, err)
	}
	qty, err := aggregation.ProjectStock(events, productID)
	if err != nil {
		return nil, err
	}
	return &dto.StockResponse{
		ProductID:    productID,
		Quantity:     qty,
		Inconsistent: qty < 0,
	}, nil
}

func toEventResponse(e *entity.InventoryEvent) *dto.EventResponse {
	return &dto.EventResponse{
		ID:         e.ID,
		ProductID:  e.ProductID,
		ChangeType: string(e.Change),
		Quantity:   e.Quantity,
		Date:       e.OccurredAt,
	}
}
