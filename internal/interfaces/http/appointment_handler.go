package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/PetShop-api/internal/application/dto"
	"github.com/jhoicas/PetShop-api/internal/application/usecase"
	"github.com/jhoicas/PetShop-api/pkg/validator"
)

// AppointmentHandler maneja la agenda de citas (baño, tosa, consultas).
type AppointmentHandler struct {
	uc *usecase.AppointmentUseCase
	v  *validator.Validator
}

// NewAppointmentHandler construye el handler.
func NewAppointmentHandler(uc *usecase.AppointmentUseCase, v *validator.Validator) *AppointmentHandler {
	return &AppointmentHandler{uc: uc, v: v}
}

// Create godoc
// @Summary      Agendar cita
// @Tags         appointments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AppointmentRequest  true  "Datos de la cita"
// @Success      201   {object}  dto.AppointmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/appointments [post]
func (h *AppointmentHandler) Create(c *fiber.Ctx) error {
	var in dto.AppointmentRequest
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
// @Summary      Obtener cita
// @Tags         appointments
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la cita"
// @Success      200  {object}  dto.AppointmentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/appointments/{id} [get]
func (h *AppointmentHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "cita")
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Reprogramar cita
// @Tags         appointments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int             true  "ID de la cita"
// @Param        body  body  dto.AppointmentRequest  true  "Datos de la cita"
// @Success      200   {object}  dto.AppointmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/appointments/{id} [put]
func (h *AppointmentHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.AppointmentRequest
	if err := parseBody(c, h.v, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "cita")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar citas
// @Tags         appointments
// @Security     Bearer
// @Produce      json
// @Param        date    query  string  false  "Día (YYYY-MM-DD)"
// @Param        status  query  string  false  "pending, confirmed, completed o cancelled"
// @Param        limit   query  int     false  "Límite"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.AppointmentListResponse
// @Router       /api/appointments [get]
func (h *AppointmentHandler) List(c *fiber.Ctx) error {
	limit, offset := page(c)
	out, err := h.uc.List(c.UserContext(), c.Query("date"), c.Query("status"), limit, offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar cita
// @Tags         appointments
// @Security     Bearer
// @Param        id  path  int  true  "ID de la cita"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/appointments/{id} [delete]
func (h *AppointmentHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ChangeStatus godoc
// @Summary      Cambiar estado de la cita
// @Tags         appointments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                           true  "ID de la cita"
// @Param        body  body  dto.AppointmentStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.AppointmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/appointments/{id}/status [patch]
func (h *AppointmentHandler) ChangeStatus(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.AppointmentStatusRequest
	if err := parseBody(c, h.v, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.ChangeStatus(c.UserContext(), id, in.Status)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "cita")
	}
	return c.JSON(out)
}
