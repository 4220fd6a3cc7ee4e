package postgres

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOccurredAt_FechaCeroPersisteComoNULL(t *testing.T) {
	param := occurredAtParam(time.Time{})

	assert.False(t, param.Valid, "la fecha cero debe viajar como NULL, no como 0001-01-01")
}

func TestOccurredAt_FechaRealPersisteTalCual(t *testing.T) {
	at := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	param := occurredAtParam(at)

	require.True(t, param.Valid)
	assert.Equal(t, at, param.Time)
}

func TestOccurredAt_NULLSeLeeComoFechaCero(t *testing.T) {
	// Una fila legada con occurred_at NULL no puede tumbar el listado:
	// vuelve como fecha cero y el agregador la degrada a diagnóstico.
	got := occurredAtValue(pgtype.Timestamptz{Valid: false})

	assert.True(t, got.IsZero())
}

func TestOccurredAt_IdaYVueltaSinFecha(t *testing.T) {
	got := occurredAtValue(occurredAtParam(time.Time{}))

	assert.True(t, got.IsZero(), "el viaje NULL↔fecha cero debe ser simétrico")
}

func TestOccurredAt_IdaYVueltaConFecha(t *testing.T) {
	at := time.Date(2023, 12, 31, 23, 30, 0, 0, time.UTC)
	got := occurredAtValue(occurredAtParam(at))

	assert.Equal(t, at, got)
}
