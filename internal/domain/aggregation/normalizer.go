package aggregation

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/retail-ledger/internal/domain"
)

// Normalize convierte un monto textual del ledger legado a decimal.
//
// Comportamiento permisivo (compatibilidad con el formato histórico):
//   - cadena vacía o solo espacios → 0
//   - texto no parseable (incluye basura antes o después del número) → 0,
//     registrando un diagnóstico en diags para que la regresión de calidad
//     de datos sea observable
//   - montos negativos pasan sin recorte: el signo es información, no ruido
//
// Nunca falla: el dashboard no debe caerse por un registro legado corrupto.
// Para rechazar en lugar de absorber, usar NormalizeStrict.
// El separador decimal es siempre "." sin importar el locale configurado.
func Normalize(raw string, recordID string, diags *Diagnostics) decimal.Decimal {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		diags.Record(DiagMalformedAmount, recordID, fmt.Sprintf("monto %q no parseable", raw))
		return decimal.Zero
	}
	return d
}

// NormalizeStrict parsea un monto textual rechazando la entrada malformada.
//
// Es el modo recomendado para el ingreso de registros nuevos: absorber un
// monto ilegible como 0 (el modo permisivo) oculta errores de captura. La
// cadena vacía sigue siendo 0 válido (campo opcional en el formato legado).
func NormalizeStrict(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", domain.ErrMalformedAmount, raw)
	}
	return d, nil
}
