package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"interviewprep/api/internal/apperrors"
)

// ErrorHandler maps the error taxonomy to HTTP status codes. Every
// error body carries a human-readable message field.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var (
		validationErr *apperrors.ValidationError
		notFoundErr   *apperrors.NotFoundError
		conflictErr   *apperrors.ConflictError
		storageErr    *apperrors.StorageError
		fiberErr      *fiber.Error
	)

	switch {
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": validationErr.Message,
		})
	case errors.As(err, &notFoundErr):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": notFoundErr.Error() + "!",
		})
	case errors.As(err, &conflictErr):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": conflictErr.Message,
		})
	case errors.As(err, &storageErr):
		log.Printf("❌ Storage error: %v\n", storageErr)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal Server Error",
		})
	case errors.As(err, &fiberErr):
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"message": fiberErr.Message,
		})
	default:
		log.Printf("❌ Unhandled error: %v\n", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal Server Error",
		})
	}
}
