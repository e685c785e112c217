package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/PetShop-api/internal/application/dto"
	"github.com/jhoicas/PetShop-api/internal/application/inventory"
	"github.com/jhoicas/PetShop-api/internal/domain/entity"
	"github.com/jhoicas/PetShop-api/pkg/validator"
)

// InventoryHandler movimientos de stock y sugerencias de reposición.
type InventoryHandler struct {
	stock         *inventory.StockUseCase
	replenishment *inventory.ReplenishmentUseCase
	v             *validator.Validator
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(stock *inventory.StockUseCase, replenishment *inventory.ReplenishmentUseCase, v *validator.Validator) *InventoryHandler {
	return &InventoryHandler{stock: stock, replenishment: replenishment, v: v}
}

// Restock godoc
// @Summary      Registrar entrada de mercancía
// @Description  Suma unidades al stock y recalcula el costo promedio ponderado si se informa unit_cost.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                 true  "ID del producto"
// @Param        body  body  dto.RestockRequest  true  "Cantidad y costo unitario"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/products/{id}/restock [post]
func (h *InventoryHandler) Restock(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.RestockRequest
	if err := parseBody(c, h.v, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.stock.Restock(c.UserContext(), actor(c), id, in)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "producto")
	}
	return c.JSON(out)
}

// Adjust godoc
// @Summary      Ajuste manual de stock
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                     true  "ID del producto"
// @Param        body  body  dto.AdjustStockRequest  true  "Delta y motivo"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/products/{id}/adjust [post]
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.AdjustStockRequest
	if err := parseBody(c, h.v, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.stock.Adjust(c.UserContext(), actor(c), id, in)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "producto")
	}
	return c.JSON(out)
}

// Movements godoc
// @Summary      Kardex de un producto
// @Description  Entradas, salidas por venta y ajustes, los más recientes primero.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id      path   int     true   "ID del producto"
// @Param        from    query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to      query  string  false  "Hasta inclusive (YYYY-MM-DD)"
// @Param        limit   query  int     false  "Límite"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.MovementListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/products/{id}/movements [get]
func (h *InventoryHandler) Movements(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	limit, offset := page(c)
	out, err := h.stock.Movements(c.UserContext(), id, dto.MovementFilter{
		From:        c.Query("from"),
		To:          c.Query("to"),
		PageRequest: dto.PageRequest{Limit: limit, Offset: offset},
	})
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "producto")
	}
	return c.JSON(out)
}

// Replenishment godoc
// @Summary      Lista de reposición sugerida
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ReplenishmentSuggestionDTO
// @Router       /api/inventory/replenishment [get]
func (h *InventoryHandler) Replenishment(c *fiber.Ctx) error {
	out, err := h.replenishment.GenerateReplenishmentList(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// actor usuario de la sesión; las rutas de inventario ya exigen sesión.
func actor(c *fiber.Ctx) entity.User {
	if u := GetUser(c); u != nil {
		return *u
	}
	return entity.User{}
}
