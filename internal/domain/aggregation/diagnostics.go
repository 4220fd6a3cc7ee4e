// Package aggregation contiene el núcleo de estado derivado del back-office:
// normalización numérica, proyección de stock y agregación temporal.
//
// Todas las funciones son puras y re-derivables: reciben colecciones
// inmutables ya leídas del ledger y producen un resultado fresco, sin caché
// ni estado compartido. Dos llamadas concurrentes sobre los mismos datos no
// necesitan coordinación.
package aggregation

// DiagnosticKind clasifica un aviso de calidad de datos.
type DiagnosticKind string

const (
	DiagMalformedAmount  DiagnosticKind = "malformed_amount"  // monto textual no parseable
	DiagInvalidTimestamp DiagnosticKind = "invalid_timestamp" // fecha ausente o inválida
)

// Diagnostic es un aviso no fatal: el registro de origen estaba malformado
// pero el procesamiento continuó con el fallback definido.
type Diagnostic struct {
	Kind     DiagnosticKind
	RecordID string
	Detail   string
}

// maxSample acota la muestra retenida; los contadores no se acotan.
const maxSample = 25

// Diagnostics acumula avisos de calidad de datos durante una agregación.
// No es seguro para uso concurrente: cada llamada de agregación crea el suyo.
// Un *Diagnostics nil es válido y descarta todos los avisos.
type Diagnostics struct {
	counts map[DiagnosticKind]int
	sample []Diagnostic
}

// NewDiagnostics crea un colector vacío.
func NewDiagnostics() *Diagnostics {
	return &Diagnostics{counts: make(map[DiagnosticKind]int)}
}

// Record registra un aviso. Sobre un colector nil es un no-op.
func (d *Diagnostics) Record(kind DiagnosticKind, recordID, detail string) {
	if d == nil {
		return
	}
	d.counts[kind]++
	if len(d.sample) < maxSample {
		d.sample = append(d.sample, Diagnostic{Kind: kind, RecordID: recordID, Detail: detail})
	}
}

// Count devuelve cuántos avisos de un tipo se registraron.
func (d *Diagnostics) Count(kind DiagnosticKind) int {
	if d == nil {
		return 0
	}
	return d.counts[kind]
}

// Total devuelve el total de avisos registrados.
func (d *Diagnostics) Total() int {
	if d == nil {
		return 0
	}
	total := 0
	for _, n := range d.counts {
		total += n
	}
	return total
}

// Sample devuelve la muestra retenida (hasta maxSample avisos).
func (d *Diagnostics) Sample() []Diagnostic {
	if d == nil {
		return nil
	}
	return d.sample
}
