package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/retail-ledger/internal/application/dto"
	"github.com/tu-usuario/retail-ledger/internal/application/inventory"
)

// InventoryHandler maneja el ledger de eventos de inventario y la consulta
// de stock derivado.
type InventoryHandler struct {
	uc *inventory.UseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Create ingresa un evento de inventario.
// POST /api/inventory
//
// change_type desconocido y quantity negativa se rechazan con 400: un evento
// ignorado en silencio produciría deriva de stock indetectable.
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "body inválido: "+err.Error())
	}

	event, err := h.uc.RegisterEvent(c.Context(), req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(event)
}

// List devuelve el ledger completo en orden cronológico.
// GET /api/inventory
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	events, err := h.uc.ListEvents(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(events)
}

// Delete borra un registro del ledger; el stock derivado cambia
// retroactivamente (log mutable por diseño del sistema original).
// DELETE /api/inventory/:id
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteEvent(c.Context(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "evento eliminado"})
}

// GetStock devuelve el stock proyectado de un producto.
// GET /api/products/:id/stock
//
// Quantity puede ser negativo y se entrega tal cual, con inconsistent=true.
func (h *InventoryHandler) GetStock(c *fiber.Ctx) error {
	stock, err := h.uc.GetStock(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(stock)
}
