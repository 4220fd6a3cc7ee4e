package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/retail-ledger/internal/application/dto"
	"github.com/tu-usuario/retail-ledger/internal/application/usecase"
	"github.com/tu-usuario/retail-ledger/internal/domain/entity"
)

// TransactionHandler maneja el ingreso y listado de ventas y compras.
// El mismo handler sirve ambos tipos; kind viene fijado por la ruta.
type TransactionHandler struct {
	uc   *usecase.TransactionUseCase
	kind entity.TransactionKind
}

// NewTransactionHandler construye el handler para un tipo de transacción.
func NewTransactionHandler(uc *usecase.TransactionUseCase, kind entity.TransactionKind) *TransactionHandler {
	return &TransactionHandler{uc: uc, kind: kind}
}

// Create registra una transacción.
// POST /api/sales | POST /api/purchases
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "body inválido: "+err.Error())
	}

	tx, err := h.uc.Record(c.Context(), h.kind, req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(tx)
}

// List devuelve el histórico completo del tipo.
// GET /api/sales | GET /api/purchases
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	txs, err := h.uc.ListByKind(c.Context(), h.kind)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(txs)
}
