package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/application/usecase"
)

// ExtraCashHandler maneja los movimientos de caja fuera de ventas.
type ExtraCashHandler struct {
	uc *usecase.ExtraCashUseCase
}

// NewExtraCashHandler construye el handler.
func NewExtraCashHandler(uc *usecase.ExtraCashUseCase) *ExtraCashHandler {
	return &ExtraCashHandler{uc: uc}
}

// List godoc
// @Summary      Listar movimientos de caja con totales
// @Tags         extra-cash
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Título o nota"
// @Param        page    query  int     false  "Página"  default(1)
// @Success      200     {object}  dto.ExtraCashListResponse
// @Router       /api/extra-cash [get]
func (h *ExtraCashHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetActor(c), listQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *ExtraCashHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), GetActor(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar movimiento de caja
// @Tags         extra-cash
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateExtraCashRequest  true  "Movimiento"
// @Success      201   {object}  dto.ExtraCashResponse
// @Router       /api/extra-cash [post]
func (h *ExtraCashHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateExtraCashRequest
	if err := bindJSON(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), GetActor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *ExtraCashHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateExtraCashRequest
	if err := bindJSON(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), GetActor(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *ExtraCashHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetActor(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "movimiento eliminado"})
}
