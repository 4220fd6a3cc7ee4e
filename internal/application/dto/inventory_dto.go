package dto

import "time"

// CreateEventRequest body para POST /api/inventory.
// ChangeType acepta "Added"/"Removed" sin distinguir mayúsculas; cualquier
// otro valor se rechaza en el ingreso (400), nunca se ignora.
type CreateEventRequest struct {
	ProductID  string    `json:"product_id"`
	ChangeType string    `json:"change_type"`
	Quantity   int64     `json:"quantity"`
	Date       time.Time `json:"date"`
}

// EventResponse representación HTTP de un evento de inventario.
type EventResponse struct {
	ID         string    `json:"id"`
	ProductID  string    `json:"product_id"`
	ChangeType string    `json:"change_type"`
	Quantity   int64     `json:"quantity"`
	Date       time.Time `json:"date"`
}

// StockResponse respuesta de GET /api/products/:id/stock.
// Quantity puede ser negativo; Inconsistent lo marca para que el cliente
// pueda resaltar el problema de captura sin re-derivar nada.
type StockResponse struct {
	ProductID    string `json:"product_id"`
	Quantity     int64  `json:"quantity"`
	Inconsistent bool   `json:"inconsistent"`
}
