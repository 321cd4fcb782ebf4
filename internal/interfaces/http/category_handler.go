package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gestor-comercial/internal/application/dto"
	"github.com/tu-usuario/gestor-comercial/internal/application/usecase"
)

// CategoryHandler maneja el CRUD de categorías, acotado por empresa.
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler construye el handler de categorías.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CategoryInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.CategoryInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetUserID(c), c.Params("id"), c.Query("companyId")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.DeletedResponse{Deleted: true})
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetUserID(c), c.Query("companyId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), GetUserID(c), c.Params("id"), c.Query("companyId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
