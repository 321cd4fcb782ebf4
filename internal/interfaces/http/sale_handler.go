package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gestor-comercial/internal/application/dto"
	"github.com/tu-usuario/gestor-comercial/internal/application/orders"
)

// SaleHandler maneja el CRUD de ventas, con total calculado en servidor.
type SaleHandler struct {
	uc *orders.SaleUseCase
}

// NewSaleHandler construye el handler de ventas.
func NewSaleHandler(uc *orders.SaleUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.SaleInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *SaleHandler) Update(c *fiber.Ctx) error {
	var in dto.SaleInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *SaleHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetUserID(c), c.Params("id"), c.Query("companyId")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.DeletedResponse{Deleted: true})
}

func (h *SaleHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetUserID(c), c.Query("companyId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), GetUserID(c), c.Params("id"), c.Query("companyId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
