package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/PetShop-api/internal/application/dto"
	"github.com/jhoicas/PetShop-api/internal/application/usecase"
	"github.com/jhoicas/PetShop-api/pkg/validator"
)

// PetHandler maneja las fichas de mascotas.
type PetHandler struct {
	uc *usecase.PetUseCase
	v  *validator.Validator
}

// NewPetHandler construye el handler.
func NewPetHandler(uc *usecase.PetUseCase, v *validator.Validator) *PetHandler {
	return &PetHandler{uc: uc, v: v}
}

// Create godoc
// @Summary      Registrar mascota
// @Tags         pets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PetRequest  true  "Datos de la mascota"
// @Success      201   {object}  dto.PetResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/pets [post]
func (h *PetHandler) Create(c *fiber.Ctx) error {
	var in dto.PetRequest
	if err := parseBody(c, h.v, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener mascota
// @Tags         pets
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la mascota"
// @Success      200  {object}  dto.PetResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pets/{id} [get]
func (h *PetHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "mascota")
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar mascota
// @Tags         pets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int             true  "ID de la mascota"
// @Param        body  body  dto.PetRequest  true  "Datos de la mascota"
// @Success      200   {object}  dto.PetResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/pets/{id} [put]
func (h *PetHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.PetRequest
	if err := parseBody(c, h.v, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "mascota")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar mascotas
// @Tags         pets
// @Security     Bearer
// @Produce      json
// @Param        customer_id  query  int  false  "Solo las del tutor"
// @Param        limit        query  int  false  "Límite"
// @Param        offset       query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.PetListResponse
// @Router       /api/pets [get]
func (h *PetHandler) List(c *fiber.Ctx) error {
	limit, offset := page(c)
	out, err := h.uc.List(c.UserContext(), int64(c.QueryInt("customer_id", 0)), limit, offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar mascota
// @Tags         pets
// @Security     Bearer
// @Param        id  path  int  true  "ID de la mascota"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pets/{id} [delete]
func (h *PetHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
