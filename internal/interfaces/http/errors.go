package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/vendas-dashboard/internal/application/dto"
	"github.com/jhoicas/vendas-dashboard/internal/application/store"
	"github.com/jhoicas/vendas-dashboard/internal/domain"
)

// errorStatus traduce errores de dominio a status y código HTTP. El orden importa: una
// escritura remota que envuelve ErrNotFound responde 404, no 502.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, store.ErrLocalOnly):
		return fiber.StatusConflict, "NOT_SYNCED"
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusConflict, "DUPLICATE"
	case errors.Is(err, domain.ErrNoSession):
		return fiber.StatusUnauthorized, "NO_SESSION"
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, "UNAUTHORIZED"
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, "FORBIDDEN"
	case errors.Is(err, store.ErrNoImageStorage):
		return fiber.StatusServiceUnavailable, "IMAGE_STORAGE_DISABLED"
	case errors.Is(err, store.ErrNoImagesUploaded):
		return fiber.StatusBadGateway, "UPLOAD_FAILED"
	case domain.IsRemoteWrite(err):
		return fiber.StatusBadGateway, "REMOTE_WRITE_FAILED"
	}
	return fiber.StatusInternalServerError, "INTERNAL"
}

func writeError(c *fiber.Ctx, log zerolog.Logger, err error) error {
	status, code := errorStatus(err)
	if status >= fiber.StatusInternalServerError {
		log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Int("status", status).Msg("petición fallida")
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
