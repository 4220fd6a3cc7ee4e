package aggregation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/retail-ledger/internal/domain"
	"github.com/tu-usuario/retail-ledger/internal/domain/aggregation"
	"github.com/tu-usuario/retail-ledger/internal/domain/entity"
)

// ev arma un evento de inventario para los tests del proyector.
func ev(id, productID string, change entity.ChangeType, qty int64, day int) entity.InventoryEvent {
	return entity.InventoryEvent{
		ID:         id,
		ProductID:  productID,
		Change:     change,
		Quantity:   qty,
		OccurredAt: time.Date(2024, 3, day, 10, 0, 0, 0, time.UTC),
	}
}

func TestProjectStock_SinEventosEsCero(t *testing.T) {
	got, err := aggregation.ProjectStock(nil, "p-1")

	require.NoError(t, err)
	assert.Equal(t, int64(0), got)
}

func TestProjectStock_EventoUnico(t *testing.T) {
	events := []entity.InventoryEvent{ev("e-1", "p-1", entity.ChangeAdded, 5, 1)}

	got, err := aggregation.ProjectStock(events, "p-1")

	require.NoError(t, err)
	assert.Equal(t, int64(5), got)
}

func TestProjectStock_EntradasYSalidas(t *testing.T) {
	events := []entity.InventoryEvent{
		ev("e-1", "p-1", entity.ChangeAdded, 5, 1),
		ev("e-2", "p-1", entity.ChangeRemoved, 3, 2),
	}

	got, err := aggregation.ProjectStock(events, "p-1")

	require.NoError(t, err)
	assert.Equal(t, int64(2), got)
}

func TestProjectStock_NegativoSeDevuelveSinRecorte(t *testing.T) {
	events := []entity.InventoryEvent{ev("e-1", "p-1", entity.ChangeRemoved, 3, 1)}

	got, err := aggregation.ProjectStock(events, "p-1")

	require.NoError(t, err)
	assert.Equal(t, int64(-3), got,
		"un stock negativo señala un problema de captura y debe verse, no recortarse a cero")
}

func TestProjectStock_FiltraPorProducto(t *testing.T) {
	events := []entity.InventoryEvent{
		ev("e-1", "p-1", entity.ChangeAdded, 5, 1),
		ev("e-2", "p-2", entity.ChangeAdded, 100, 1),
		ev("e-3", "p-1", entity.ChangeRemoved, 1, 2),
	}

	got, err := aggregation.ProjectStock(events, "p-1")

	require.NoError(t, err)
	assert.Equal(t, int64(4), got, "los eventos de otros productos no participan del fold")
}

// TestProjectStock_InvarianteDeOrden verifica que la proyección conmuta:
// cualquier permutación de los mismos eventos produce el mismo stock.
func TestProjectStock_InvarianteDeOrden(t *testing.T) {
	events := []entity.InventoryEvent{
		ev("e-1", "p-1", entity.ChangeAdded, 10, 3),
		ev("e-2", "p-1", entity.ChangeRemoved, 4, 1),
		ev("e-3", "p-1", entity.ChangeAdded, 7, 2),
		ev("e-4", "p-1", entity.ChangeRemoved, 2, 4),
	}
	permutations := [][]int{
		{0, 1, 2, 3},
		{3, 2, 1, 0},
		{1, 3, 0, 2},
		{2, 0, 3, 1},
	}

	for _, perm := range permutations {
		shuffled := make([]entity.InventoryEvent, 0, len(events))
		for _, i := range perm {
			shuffled = append(shuffled, events[i])
		}
		got, err := aggregation.ProjectStock(shuffled, "p-1")
		require.NoError(t, err)
		assert.Equal(t, int64(11), got, "la proyección debe ser invariante al reordenar: %v", perm)
	}
}

func TestProjectStock_TipoDesconocidoEsErrorDuro(t *testing.T) {
	events := []entity.InventoryEvent{
		ev("e-1", "p-1", entity.ChangeAdded, 5, 1),
		{ID: "e-2", ProductID: "p-1", Change: "Misplaced", Quantity: 3, OccurredAt: time.Now()},
	}

	_, err := aggregation.ProjectStock(events, "p-1")

	require.Error(t, err, "ignorar un tipo desconocido produciría deriva silenciosa de stock")
	assert.ErrorIs(t, err, domain.ErrInvalidChangeType)
}

func TestProjectStock_NoMutaLaEntrada(t *testing.T) {
	events := []entity.InventoryEvent{
		ev("e-2", "p-1", entity.ChangeAdded, 1, 5),
		ev("e-1", "p-1", entity.ChangeAdded, 1, 1),
	}

	_, err := aggregation.ProjectStock(events, "p-1")

	require.NoError(t, err)
	assert.Equal(t, "e-2", events[0].ID, "el fold ordena sobre una copia, no sobre el slice del llamador")
}
