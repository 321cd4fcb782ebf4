package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gestor-comercial/internal/application/dto"
	"github.com/tu-usuario/gestor-comercial/internal/application/usecase"
)

// CustomerHandler maneja el CRUD de clientes, acotado por empresa.
type CustomerHandler struct {
	uc *usecase.CustomerUseCase
}

// NewCustomerHandler construye el handler de clientes.
func NewCustomerHandler(uc *usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CustomerInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var in dto.CustomerInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetUserID(c), c.Params("id"), c.Query("companyId")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.DeletedResponse{Deleted: true})
}

func (h *CustomerHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetUserID(c), c.Query("companyId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), GetUserID(c), c.Params("id"), c.Query("companyId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
