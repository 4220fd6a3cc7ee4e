package dto

import "time"

// CreateTransactionRequest body para POST /api/sales y POST /api/purchases.
// Amount viaja como texto, igual que en el ledger; con AGG_STRICT_NUMERIC el
// ingreso rechaza montos ilegibles en lugar de absorberlos como 0.
type CreateTransactionRequest struct {
	CounterpartyID string    `json:"counterparty_id"`
	Date           time.Time `json:"date"`
	Amount         string    `json:"amount"`
}

// TransactionResponse representación HTTP de una venta o compra.
type TransactionResponse struct {
	ID             string    `json:"id"`
	Kind           string    `json:"kind"`
	CounterpartyID string    `json:"counterparty_id"`
	Date           time.Time `json:"date"`
	Amount         string    `json:"amount"`
}

// CreateCustomerRequest body para POST /api/customers.
type CreateCustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	Name  string `json:"name"`
	Size  string `json:"size"`
	Color string `json:"color"`
	Price string `json:"price"`
}
