package http

import (
	"context"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/PetShop-api/internal/application/dto"
	"github.com/jhoicas/PetShop-api/internal/domain"
	"github.com/jhoicas/PetShop-api/pkg/logger"
	"github.com/jhoicas/PetShop-api/pkg/validator"
)

var errInvalidBody = errors.New("cuerpo inválido")

// errorStatus tabla error de dominio -> status y código HTTP.
var errorStatus = []struct {
	err    error
	status int
	code   string
}{
	{domain.ErrInvalidCredentials, fiber.StatusUnauthorized, "INVALID_CREDENTIALS"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrEmptyCart, fiber.StatusBadRequest, "EMPTY_CART"},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
	{domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE"},
	{domain.ErrInsufficientStock, fiber.StatusConflict, "INSUFFICIENT_STOCK"},
	{domain.ErrInvalidTransition, fiber.StatusConflict, "INVALID_TRANSITION"},
	{domain.ErrConflict, fiber.StatusConflict, "CONFLICT"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
}

// writeError traduce err a la respuesta HTTP. Único punto de mapeo de errores.
func writeError(c *fiber.Ctx, err error) error {
	var verr *validator.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "validación fallida", Fields: verr.Fields})
	}
	if errors.Is(err, errInvalidBody) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: err.Error()})
	}
	for _, e := range errorStatus {
		if errors.Is(err, e.err) {
			msg := err.Error()
			if e.err == domain.ErrInvalidCredentials {
				msg = e.err.Error()
			}
			return c.Status(e.status).JSON(dto.ErrorResponse{Code: e.code, Message: msg})
		}
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "TIMEOUT", Message: "la operación no terminó a tiempo"})
	}
	requestLogger(c).Error().Err(err).Str("path", c.Path()).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}

// ErrorHandler respuesta JSON para errores de Fiber (ruta inexistente, método no permitido, panics recuperados).
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code := "INTERNAL"
		switch fe.Code {
		case fiber.StatusNotFound:
			code = "NOT_FOUND"
		case fiber.StatusMethodNotAllowed:
			code = "METHOD_NOT_ALLOWED"
		case fiber.StatusBadRequest:
			code = "BAD_REQUEST"
		}
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: code, Message: fe.Message})
	}
	return writeError(c, err)
}

// parseID lee el parámetro :id como entero positivo.
func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.Join(domain.ErrInvalidInput, errors.New("id debe ser un entero positivo"))
	}
	return id, nil
}

// parseBody decodifica el JSON del cuerpo en out y lo valida.
func parseBody(c *fiber.Ctx, v *validator.Validator, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return errInvalidBody
	}
	return v.Struct(out)
}

// page lee limit y offset del query string.
func page(c *fiber.Ctx) (int, int) {
	return c.QueryInt("limit", 20), c.QueryInt("offset", 0)
}

// notFound respuesta 404 para casos de uso que devuelven nil.
func notFound(c *fiber.Ctx, what string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: what + " no encontrado"})
}

const localLogger = "logger"

// requestLogger logger del request (puesto por RequestLogger) o uno nulo.
func requestLogger(c *fiber.Ctx) *logger.Logger {
	if l, ok := c.Locals(localLogger).(*logger.Logger); ok && l != nil {
		return l
	}
	return logger.Nop()
}
