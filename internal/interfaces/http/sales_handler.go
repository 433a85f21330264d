package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/application/sales"
)

// SalesHandler maneja listas de venta y sus cobros.
type SalesHandler struct {
	uc *sales.UseCase
}

// NewSalesHandler construye el handler.
func NewSalesHandler(uc *sales.UseCase) *SalesHandler {
	return &SalesHandler{uc: uc}
}

// List godoc
// @Summary      Listar ventas
// @Tags         sales-lists
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Factura, cliente o teléfono"
// @Param        page    query  int     false  "Página"  default(1)
// @Success      200     {object}  dto.SalesListListResponse
// @Router       /api/sales-lists [get]
func (h *SalesHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetActor(c), listQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar venta
// @Tags         sales-lists
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSalesListRequest  true  "Datos de la venta"
// @Success      201   {object}  dto.SalesListResponse
// @Router       /api/sales-lists [post]
func (h *SalesHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSalesListRequest
	if err := bindJSON(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), GetActor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Get godoc
// @Summary      Obtener venta con su libro de pagos
// @Tags         sales-lists
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {object}  dto.SalesListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales-lists/{id} [get]
func (h *SalesHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), GetActor(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CollectDue godoc
// @Summary      Cobrar saldo pendiente
// @Description  Agrega los pagos al libro. Con force_settle el total de la venta se reduce a lo cobrado.
// @Tags         sales-lists
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la venta"
// @Param        body  body  dto.CollectDueRequest  true  "Pagos"
// @Success      200   {object}  dto.SalesListResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/sales-lists/{id}/collect [post]
func (h *SalesHandler) CollectDue(c *fiber.Ctx) error {
	var in dto.CollectDueRequest
	if err := bindJSON(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.CollectDue(c.UserContext(), GetActor(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Statement godoc
// @Summary      Estado de cuenta en PDF
// @Tags         sales-lists
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales-lists/{id}/statement [get]
func (h *SalesHandler) Statement(c *fiber.Ctx) error {
	pdf, name, err := h.uc.Statement(c.UserContext(), GetActor(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, "inline; filename="+strconv.Quote(name))
	return c.Send(pdf)
}
