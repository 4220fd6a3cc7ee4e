package aggregation

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"

	"github.com/tu-usuario/retail-ledger/internal/domain/entity"
)

// BucketConfig fija la zona horaria y el locale de la agregación mensual.
//
// Se pasa explícito en cada llamada en lugar de leer un default ambiental:
// el mismo instante cae en meses distintos según la zona, y producción y
// tests deben renderizar las claves con el mismo par (tz, locale) para no
// divergir. Location nil equivale a UTC; locale no soportado cae a inglés.
type BucketConfig struct {
	Location *time.Location
	Locale   language.Tag
}

func (c BucketConfig) location() *time.Location {
	if c.Location == nil {
		return time.UTC
	}
	return c.Location
}

// MonthlyBucket es el total de un mes calendario.
type MonthlyBucket struct {
	Key   string          // "Jan 2024" (con el locale configurado)
	Month time.Time       // primer instante del mes en la zona configurada
	Total decimal.Decimal // suma de montos normalizados
}

// Abreviaturas de mes por idioma soportado. time.Month solo formatea en
// inglés, así que la tabla vive aquí y el matcher de x/text elige la fila.
var (
	supportedLocales = []language.Tag{language.English, language.Spanish}
	localeMatcher    = language.NewMatcher(supportedLocales)

	monthAbbrevs = map[language.Tag][12]string{
		language.English: {"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		language.Spanish: {"Ene", "Feb", "Mar", "Abr", "May", "Jun", "Jul", "Ago", "Sep", "Oct", "Nov", "Dic"},
	}
)

// MonthKey renderiza la clave de bucket "{mes abreviado} {año}" de un
// instante bajo la configuración dada. Determinista para un (tz, locale) fijo.
func MonthKey(t time.Time, cfg BucketConfig) string {
	lt := t.In(cfg.location())
	_, idx, _ := localeMatcher.Match(cfg.Locale)
	names := monthAbbrevs[supportedLocales[idx]]
	return fmt.Sprintf("%s %d", names[lt.Month()-1], lt.Year())
}

// BucketByMonth agrupa transacciones por mes calendario (en la zona horaria
// configurada) y suma sus montos normalizados por bucket.
//
// Transacciones sin occurred_at se excluyen de todos los buckets con un
// diagnóstico; nunca son falla dura. Los buckets se devuelven ordenados
// cronológicamente ascendente, independiente del orden de entrada, para que
// el resultado sea determinista y re-derivable.
func BucketByMonth(txs []entity.Transaction, cfg BucketConfig, diags *Diagnostics) []MonthlyBucket {
	loc := cfg.location()

	totals := make(map[time.Time]decimal.Decimal)
	for _, tx := range txs {
		if tx.OccurredAt.IsZero() {
			diags.Record(DiagInvalidTimestamp, tx.ID, "transacción sin fecha, excluida de la agregación mensual")
			continue
		}
		amount := Normalize(tx.Amount, tx.ID, diags)
		lt := tx.OccurredAt.In(loc)
		monthStart := time.Date(lt.Year(), lt.Month(), 1, 0, 0, 0, 0, loc)
		totals[monthStart] = totals[monthStart].Add(amount)
	}

	months := make([]time.Time, 0, len(totals))
	for m := range totals {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	buckets := make([]MonthlyBucket, 0, len(months))
	for _, m := range months {
		buckets = append(buckets, MonthlyBucket{
			Key:   MonthKey(m, cfg),
			Month: m,
			Total: totals[m],
		})
	}
	return buckets
}

// Totals devuelve la vista mapa clave→total de una lista de buckets, para
// llamadores que quieren la forma de diccionario del endpoint legado.
func Totals(buckets []MonthlyBucket) map[string]decimal.Decimal {
	m := make(map[string]decimal.Decimal, len(buckets))
	for _, b := range buckets {
		m[b.Key] = b.Total
	}
	return m
}
