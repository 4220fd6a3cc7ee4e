package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/retail-ledger/internal/application/dto"
	"github.com/tu-usuario/retail-ledger/internal/application/usecase"
	"github.com/tu-usuario/retail-ledger/internal/domain"
	"github.com/tu-usuario/retail-ledger/internal/domain/entity"
	"github.com/tu-usuario/retail-ledger/internal/infrastructure/memory"
)

func newTxUseCase(strict bool) *usecase.TransactionUseCase {
	store := memory.New()
	return usecase.NewTransactionUseCase(memory.NewTransactionRepository(store), strict)
}

func TestRecord_VentaValida(t *testing.T) {
	uc := newTxUseCase(false)

	tx, err := uc.Record(context.Background(), entity.KindSale, dto.CreateTransactionRequest{
		CounterpartyID: "c-1",
		Date:           time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Amount:         "100.50",
	})

	require.NoError(t, err)
	assert.Equal(t, "sale", tx.Kind)
	assert.Equal(t, "100.50", tx.Amount, "el monto se persiste como texto, sin re-formatear")
	assert.NotEmpty(t, tx.ID)
}

// Modo permisivo (legado): un monto ilegible entra tal cual; lo absorbe la
// normalización al leer, con diagnóstico.
func TestRecord_PermisivoAceptaMontoIlegible(t *testing.T) {
	uc := newTxUseCase(false)

	_, err := uc.Record(context.Background(), entity.KindPurchase, dto.CreateTransactionRequest{
		CounterpartyID: "s-1",
		Amount:         "no-es-numero",
	})

	require.NoError(t, err)
}

// Modo estricto: el ingreso rechaza el monto ilegible en la frontera.
func TestRecord_EstrictoRechazaMontoIlegible(t *testing.T) {
	uc := newTxUseCase(true)

	_, err := uc.Record(context.Background(), entity.KindSale, dto.CreateTransactionRequest{
		CounterpartyID: "c-1",
		Amount:         "no-es-numero",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMalformedAmount)
}

func TestRecord_EstrictoAceptaVacio(t *testing.T) {
	uc := newTxUseCase(true)

	_, err := uc.Record(context.Background(), entity.KindSale, dto.CreateTransactionRequest{
		CounterpartyID: "c-1",
		Amount:         "",
	})

	require.NoError(t, err, "el campo vacío es un 0 legítimo del formato, incluso en estricto")
}

func TestRecord_SinContraparte(t *testing.T) {
	uc := newTxUseCase(false)

	_, err := uc.Record(context.Background(), entity.KindSale, dto.CreateTransactionRequest{
		Amount: "10",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListByKind_SeparaVentasDeCompras(t *testing.T) {
	uc := newTxUseCase(false)
	_, err := uc.Record(context.Background(), entity.KindSale, dto.CreateTransactionRequest{
		CounterpartyID: "c-1", Amount: "10",
	})
	require.NoError(t, err)
	_, err = uc.Record(context.Background(), entity.KindPurchase, dto.CreateTransactionRequest{
		CounterpartyID: "s-1", Amount: "20",
	})
	require.NoError(t, err)

	sales, err := uc.ListByKind(context.Background(), entity.KindSale)
	require.NoError(t, err)
	purchases, err := uc.ListByKind(context.Background(), entity.KindPurchase)
	require.NoError(t, err)

	require.Len(t, sales, 1)
	require.Len(t, purchases, 1)
	assert.Equal(t, "sale", sales[0].Kind)
	assert.Equal(t, "purchase", purchases[0].Kind)
}
