package aggregation_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/tu-usuario/retail-ledger/internal/domain/aggregation"
	"github.com/tu-usuario/retail-ledger/internal/domain/entity"
)

// tx arma una venta para los tests del agregador mensual.
func tx(id string, at time.Time, amount string) entity.Transaction {
	return entity.Transaction{
		ID:             id,
		Kind:           entity.KindSale,
		CounterpartyID: "c-1",
		OccurredAt:     at,
		Amount:         amount,
	}
}

func utcConfig() aggregation.BucketConfig {
	return aggregation.BucketConfig{Location: time.UTC, Locale: language.English}
}

// Escenario de referencia: dos ventas de enero y una de febrero colapsan en
// dos buckets con los totales sumados.
func TestBucketByMonth_EscenarioEneroFebrero(t *testing.T) {
	txs := []entity.Transaction{
		tx("t-1", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), "100"),
		tx("t-2", time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC), "50"),
		tx("t-3", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), "30"),
	}
	diags := aggregation.NewDiagnostics()

	buckets := aggregation.BucketByMonth(txs, utcConfig(), diags)

	require.Len(t, buckets, 2)
	assert.Equal(t, "Jan 2024", buckets[0].Key)
	assert.True(t, decimal.NewFromInt(150).Equal(buckets[0].Total))
	assert.Equal(t, "Feb 2024", buckets[1].Key)
	assert.True(t, decimal.NewFromInt(30).Equal(buckets[1].Total))
	assert.Zero(t, diags.Total())
}

func TestBucketByMonth_OrdenCronologicoIndependienteDelInput(t *testing.T) {
	// Entrada desordenada: feb 2024, ene 2025, ene 2024.
	txs := []entity.Transaction{
		tx("t-1", time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), "1"),
		tx("t-2", time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), "2"),
		tx("t-3", time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC), "3"),
	}

	buckets := aggregation.BucketByMonth(txs, utcConfig(), nil)

	require.Len(t, buckets, 3)
	assert.Equal(t, []string{"Jan 2024", "Feb 2024", "Jan 2025"},
		[]string{buckets[0].Key, buckets[1].Key, buckets[2].Key},
		"los buckets salen pre-ordenados cronológicamente, no en orden de llegada")
}

func TestBucketByMonth_Idempotente(t *testing.T) {
	txs := []entity.Transaction{
		tx("t-1", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), "100"),
		tx("t-2", time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), "7.25"),
	}
	cfg := utcConfig()

	first := aggregation.BucketByMonth(txs, cfg, nil)
	second := aggregation.BucketByMonth(txs, cfg, nil)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Key, second[i].Key)
		assert.True(t, first[i].Total.Equal(second[i].Total))
	}
}

// La suma de todos los buckets debe igualar la suma de los montos
// normalizados de las transacciones con fecha válida.
func TestBucketByMonth_ConservaElTotal(t *testing.T) {
	txs := []entity.Transaction{
		tx("t-1", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), "100.10"),
		tx("t-2", time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC), "50"),
		tx("t-3", time.Date(2024, 2, 25, 0, 0, 0, 0, time.UTC), "no-es-numero"),
		tx("t-4", time.Time{}, "999"), // sin fecha: excluida
	}
	diags := aggregation.NewDiagnostics()

	buckets := aggregation.BucketByMonth(txs, utcConfig(), diags)

	var sum decimal.Decimal
	for _, b := range buckets {
		sum = sum.Add(b.Total)
	}
	assert.True(t, decimal.RequireFromString("150.10").Equal(sum),
		"el monto ilegible aporta 0 y la transacción sin fecha no participa")
	assert.Equal(t, 1, diags.Count(aggregation.DiagMalformedAmount))
	assert.Equal(t, 1, diags.Count(aggregation.DiagInvalidTimestamp))
}

func TestBucketByMonth_FechaInvalidaNoEsFallaDura(t *testing.T) {
	txs := []entity.Transaction{tx("t-1", time.Time{}, "10")}
	diags := aggregation.NewDiagnostics()

	buckets := aggregation.BucketByMonth(txs, utcConfig(), diags)

	assert.Empty(t, buckets)
	require.Equal(t, 1, diags.Count(aggregation.DiagInvalidTimestamp))
	assert.Equal(t, "t-1", diags.Sample()[0].RecordID)
}

// El mismo instante cae en meses distintos según la zona configurada: el 1
// de enero 03:00 UTC todavía es 31 de diciembre en Bogotá (UTC-5).
func TestBucketByMonth_FronteraDeZonaHoraria(t *testing.T) {
	bogota := time.FixedZone("America/Bogota", -5*60*60)
	instant := time.Date(2024, 1, 1, 3, 0, 0, 0, time.UTC)
	txs := []entity.Transaction{tx("t-1", instant, "10")}

	utc := aggregation.BucketByMonth(txs, utcConfig(), nil)
	local := aggregation.BucketByMonth(txs, aggregation.BucketConfig{Location: bogota, Locale: language.English}, nil)

	require.Len(t, utc, 1)
	require.Len(t, local, 1)
	assert.Equal(t, "Jan 2024", utc[0].Key)
	assert.Equal(t, "Dec 2023", local[0].Key)
}

func TestBucketByMonth_LocaleEspanol(t *testing.T) {
	txs := []entity.Transaction{tx("t-1", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), "10")}
	cfg := aggregation.BucketConfig{Location: time.UTC, Locale: language.Spanish}

	buckets := aggregation.BucketByMonth(txs, cfg, nil)

	require.Len(t, buckets, 1)
	assert.Equal(t, "Ene 2024", buckets[0].Key)
}

func TestBucketByMonth_LocaleDesconocidoCaeAIngles(t *testing.T) {
	txs := []entity.Transaction{tx("t-1", time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC), "10")}
	cfg := aggregation.BucketConfig{Location: time.UTC, Locale: language.Japanese}

	buckets := aggregation.BucketByMonth(txs, cfg, nil)

	require.Len(t, buckets, 1)
	assert.Equal(t, "Apr 2024", buckets[0].Key)
}

func TestTotals_VistaMapa(t *testing.T) {
	txs := []entity.Transaction{
		tx("t-1", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), "100"),
		tx("t-2", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), "30"),
	}

	totals := aggregation.Totals(aggregation.BucketByMonth(txs, utcConfig(), nil))

	require.Len(t, totals, 2)
	assert.True(t, decimal.NewFromInt(100).Equal(totals["Jan 2024"]))
	assert.True(t, decimal.NewFromInt(30).Equal(totals["Feb 2024"]))
}
