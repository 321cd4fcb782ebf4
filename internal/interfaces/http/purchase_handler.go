package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gestor-comercial/internal/application/dto"
	"github.com/tu-usuario/gestor-comercial/internal/application/orders"
)

// PurchaseHandler maneja el CRUD de compras, con total calculado en servidor.
type PurchaseHandler struct {
	uc *orders.PurchaseUseCase
}

// NewPurchaseHandler construye el handler de compras.
func NewPurchaseHandler(uc *orders.PurchaseUseCase) *PurchaseHandler {
	return &PurchaseHandler{uc: uc}
}

func (h *PurchaseHandler) Create(c *fiber.Ctx) error {
	var in dto.PurchaseInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *PurchaseHandler) Update(c *fiber.Ctx) error {
	var in dto.PurchaseInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *PurchaseHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetUserID(c), c.Params("id"), c.Query("companyId")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.DeletedResponse{Deleted: true})
}

func (h *PurchaseHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetUserID(c), c.Query("companyId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *PurchaseHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), GetUserID(c), c.Params("id"), c.Query("companyId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
