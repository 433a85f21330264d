package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Backoffice-api/internal/application/deposit"
	"github.com/jhoicas/Backoffice-api/internal/application/dto"
)

// DepositHandler maneja los depósitos de los usuarios.
type DepositHandler struct {
	uc *deposit.UseCase
}

// NewDepositHandler construye el handler.
func NewDepositHandler(uc *deposit.UseCase) *DepositHandler {
	return &DepositHandler{uc: uc}
}

// List godoc
// @Summary      Listar depósitos
// @Description  Un usuario no admin sólo ve sus depósitos.
// @Tags         deposits
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Sistema o nota"
// @Param        page    query  int     false  "Página"  default(1)
// @Success      200     {object}  dto.DepositListResponse
// @Router       /api/deposits [get]
func (h *DepositHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetActor(c), listQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar depósito
// @Tags         deposits
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDepositRequest  true  "Monto y sistema"
// @Success      201   {object}  dto.DepositResponse
// @Router       /api/deposits [post]
func (h *DepositHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDepositRequest
	if err := bindJSON(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), GetActor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Approve godoc
// @Summary      Aprobar depósito (admin)
// @Tags         deposits
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del depósito"
// @Success      200  {object}  dto.DepositResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/deposits/{id}/approve [post]
func (h *DepositHandler) Approve(c *fiber.Ctx) error {
	out, err := h.uc.Approve(c.UserContext(), GetActor(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
