package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
)

const msgInvalidBody = "Invalid request body"

// writeError traduce un error de caso de uso a la respuesta HTTP. Los ServerError se registran
// con su causa y se responden con el mensaje genérico.
func writeError(c *fiber.Ctx, err error) error {
	de := domain.AsError(err)
	switch {
	case de != nil && errors.Is(de, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: de.Message})
	case de != nil && errors.Is(de, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: de.Message})
	}
	log.Error().
		Err(err).
		Str("request_id", GetRequestID(c)).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("error interno en la petición")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: domain.ServerErrorMessage})
}

// parseBody decodifica el JSON del cuerpo. Un cuerpo vacío equivale a {} para que la
// validación de campos responda con su propio mensaje.
func parseBody(c *fiber.Ctx, out interface{}) error {
	if len(c.Body()) == 0 {
		return nil
	}
	if err := c.BodyParser(out); err != nil {
		return domain.NewValidationError(msgInvalidBody)
	}
	return nil
}

// ErrorHandler manejador de errores de Fiber: rutas inexistentes, métodos no permitidos y
// pánicos recuperados responden con el mismo cuerpo {"error": ...}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Error: fe.Message})
	}
	return writeError(c, err)
}
