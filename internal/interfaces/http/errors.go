package http

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/refnet-api/internal/application/dto"
	"github.com/jhoicas/refnet-api/internal/domain"
	"github.com/jhoicas/refnet-api/internal/domain/store"
	"github.com/jhoicas/refnet-api/pkg/listing"
)

var validate = validator.New()

// errorMapping orden de evaluación: el primer sentinel que coincide define la respuesta.
// Reconciliation y AlreadyProcessed van antes que RemoteWrite/NotFound porque pueden envolverlos.
var errorMapping = []struct {
	err    error
	status int
	code   string
}{
	{domain.ErrReconciliation, fiber.StatusInternalServerError, "RECONCILIATION"},
	{domain.ErrAlreadyProcessed, fiber.StatusConflict, "ALREADY_PROCESSED"},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrValidation, fiber.StatusBadRequest, "VALIDATION"},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "INVALID_INPUT"},
	{store.ErrUnknownIdentifier, fiber.StatusBadRequest, "INVALID_INPUT"},
	{domain.ErrConflict, fiber.StatusConflict, "CONFLICT"},
	{domain.ErrRemoteWrite, fiber.StatusBadGateway, "REMOTE_WRITE"},
}

// respondError traduce errores de dominio a dto.ErrorResponse.
func respondError(c *fiber.Ctx, err error) error {
	for _, m := range errorMapping {
		if errors.Is(err, m.err) {
			return c.Status(m.status).JSON(dto.ErrorResponse{Code: m.code, Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// bindBody decodifica y valida el cuerpo según las etiquetas validate. Si devuelve false la
// respuesta de error ya fue escrita y el handler debe retornar err.
func bindBody(c *fiber.Ctx, out any) (ok bool, err error) {
	if err := c.BodyParser(out); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(out); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return true, nil
}

// pageOf metadatos de página para la respuesta.
func pageOf[T any](p listing.Page[T]) dto.PageResponse {
	return dto.PageResponse{Page: p.Page, PageSize: p.PageSize, Total: p.Total, TotalPages: p.TotalPages}
}
