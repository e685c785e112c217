package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/PetShop-api/internal/application/dto"
	"github.com/jhoicas/PetShop-api/internal/application/sales"
	"github.com/jhoicas/PetShop-api/pkg/validator"
)

// SaleHandler punto de venta: cobro de carrito y consulta de ventas.
type SaleHandler struct {
	uc      *sales.CheckoutUseCase
	v       *validator.Validator
	metrics *Metrics
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *sales.CheckoutUseCase, v *validator.Validator, m *Metrics) *SaleHandler {
	return &SaleHandler{uc: uc, v: v, metrics: m}
}

// Checkout godoc
// @Summary      Cobrar carrito
// @Description  Descuenta el stock de cada línea y registra la venta en una sola transacción.
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckoutRequest  true  "Carrito y medio de pago"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Checkout(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if err := parseBody(c, h.v, &in); err != nil {
		return writeError(c, err)
	}
	user := GetUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión requerida"})
	}
	out, err := h.uc.Checkout(c.UserContext(), *user, in)
	if err != nil {
		return writeError(c, err)
	}
	h.metrics.sale()
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener venta por ID
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la venta"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "venta")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar ventas
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        from        query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to          query  string  false  "Hasta inclusive (YYYY-MM-DD)"
// @Param        cashier_id  query  int     false  "Cajero"
// @Param        limit       query  int     false  "Límite"
// @Param        offset      query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.SaleListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	limit, offset := page(c)
	out, err := h.uc.List(c.UserContext(), sales.ListFilter{
		From:        c.Query("from"),
		To:          c.Query("to"),
		CashierID:   int64(c.QueryInt("cashier_id", 0)),
		PageRequest: dto.PageRequest{Limit: limit, Offset: offset},
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
