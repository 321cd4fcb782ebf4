package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gestor-comercial/internal/application/dto"
	"github.com/tu-usuario/gestor-comercial/internal/application/usecase"
)

// ProductHandler maneja el CRUD de productos, acotado por empresa.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler de productos.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.ProductInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetUserID(c), c.Params("id"), c.Query("companyId")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.DeletedResponse{Deleted: true})
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetUserID(c), c.Query("companyId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), GetUserID(c), c.Params("id"), c.Query("companyId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
