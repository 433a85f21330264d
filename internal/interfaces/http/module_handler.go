package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/application/usecase"
)

// ModuleHandler maneja los módulos del back-office.
type ModuleHandler struct {
	uc *usecase.ModuleUseCase
}

// NewModuleHandler construye el handler.
func NewModuleHandler(uc *usecase.ModuleUseCase) *ModuleHandler {
	return &ModuleHandler{uc: uc}
}

// List godoc
// @Summary      Listar módulos
// @Tags         modules
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Búsqueda libre"
// @Param        page    query  int     false  "Página"  default(1)
// @Success      200     {object}  dto.ModuleListResponse
// @Router       /api/modules [get]
func (h *ModuleHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetActor(c), listQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *ModuleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), GetActor(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear módulo
// @Tags         modules
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveModuleRequest  true  "Datos del módulo"
// @Success      201   {object}  dto.ModuleResponse
// @Router       /api/modules [post]
func (h *ModuleHandler) Create(c *fiber.Ctx) error {
	var in dto.SaveModuleRequest
	if err := bindJSON(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), GetActor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *ModuleHandler) Update(c *fiber.Ctx) error {
	var in dto.SaveModuleRequest
	if err := bindJSON(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), GetActor(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *ModuleHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetActor(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "módulo eliminado"})
}
