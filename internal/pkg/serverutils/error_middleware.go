package serverutils

import (
	"errors"

	"interview-content-be/internal/apperror"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware maps the error taxonomy onto HTTP statuses so
// controllers can just return service errors.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var (
			validationErr   *apperror.ValidationError
			notFoundErr     *apperror.NotFoundError
			invalidStateErr *apperror.InvalidStateError
			persistenceErr  *apperror.PersistenceError
			generationErr   *apperror.GenerationError
			fiberErr        *fiber.Error
		)

		switch {
		case errors.As(err, &validationErr):
			return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(validationErr.Message, validationErr.Warnings))
		case errors.As(err, &notFoundErr):
			return ctx.Status(fiber.StatusNotFound).JSON(ErrorResponse(notFoundErr.Error(), nil))
		case errors.As(err, &invalidStateErr):
			return ctx.Status(fiber.StatusConflict).JSON(ErrorResponse(invalidStateErr.Message, nil))
		case errors.As(err, &persistenceErr):
			return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse("storage failure, please retry", nil))
		case errors.As(err, &generationErr):
			return ctx.Status(fiber.StatusBadGateway).JSON(ErrorResponse(generationErr.Message, nil))
		case errors.As(err, &fiberErr):
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Message, nil))
		default:
			return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse("internal server error", nil))
		}
	}
}
