package usecase

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

// TransactionUseCase registra y lista ventas y compras.
//
// strictAmounts activa el modo estricto de normalización en el ingreso:
// un monto ilegible se rechaza (400) en lugar de absorberse como 0. El modo
// permisivo queda como compatibilidad con el formato legado y solo aplica a
// los registros ya persistidos, nunca al ingreso cuando strict está activo.
type TransactionUseCase struct {
	txRepo        repository.TransactionRepository
	strictAmounts bool
}

// NewTransactionUseCase construye el caso de uso.
func NewTransactionUseCase(txRepo repository.TransactionRepository, strictAmounts bool) *TransactionUseCase {
	return &TransactionUseCase{txRepo: txRepo, strictAmounts: strictAmounts}
}

// Record inserta una transacción del tipo dado.
func (uc *TransactionUseCase) Record(
	ctx context.Context,
	kind entity.TransactionKind,
	in dto.CreateTransactionRequest,
) (*dto.TransactionResponse, error) {
	if in.CounterpartyID == "" {
		return nil, domain.ErrInvalidInput
	}
	if uc.strictAmounts {
		if _, err := aggregation.NormalizeStrict(in.Amount); err != nil {
			return nil, err
		}
	}

	occurredAt := in.Date
	if occurredAt.IsZero() {
		occurredAt = time.Now().UTC()
	}

	tx := &entity.Transaction{
		ID:             uuid.New().String(),
		Kind:           kind,
		CounterpartyID: in.CounterpartyID,
		OccurredAt:     occurredAt,
		Amount:         in.Amount,
	}
	if err := uc.txRepo.Create(ctx, tx); err != nil {
		return nil, fmt.Errorf("insertar transacción: %w", err)
	}
	return toTransactionResponse(tx), nil
}

// ListByKind lista el histórico completo de un tipo de transacción.
func (uc *TransactionUseCase) ListByKind(ctx context.Context, kind entity.TransactionKind) ([]dto.TransactionResponse, error) {
	txs, err := uc.txRepo.ListByKind(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("listar transacciones: %w", err)
	}
	out := make([]dto.TransactionResponse, 0, len(txs))
	for i := range txs {
		out = append(out, *toTransactionResponse(&txs[i]))
	}
	return out, nil
}

func toTransactionResponse(tx *entity.Transaction) *dto.TransactionResponse {
	return &dto.TransactionResponse{
		ID:             tx.ID,
		Kind:           string(tx.Kind),
		CounterpartyID: tx.CounterpartyID,
		Date:           tx.OccurredAt,
		Amount:         tx.Amount,
	}
}
