// error_utils.go
package utils

import (
	"errors"

	"portfolio-backend/src/models"

	"github.com/gofiber/fiber/v2"
)

func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Status:  status,
		Message: message,
	})
}

// HandleValidationError ตอบ 400 พร้อมรายละเอียดราย field
func HandleValidationError(c *fiber.Ctx, fields map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
		Status:  fiber.StatusBadRequest,
		Message: "validation failed",
		Errors:  fields,
	})
}

// StatusFor แปลง sentinel error เป็น HTTP status
func StatusFor(err error) int {
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		return fe.Code
	case errors.Is(err, ErrInvalidInput):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrConflict):
		return fiber.StatusConflict
	case errors.Is(err, ErrUnavailable):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

// HandleServiceError map error จาก service; 500 จะไม่ส่งรายละเอียดภายในออกไป
func HandleServiceError(c *fiber.Ctx, err error) error {
	status := StatusFor(err)
	msg := err.Error()
	if status == fiber.StatusInternalServerError {
		msg = "internal server error"
	}
	return HandleError(c, status, msg)
}
