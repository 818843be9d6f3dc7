package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Message string `json:"message"`
}

func jsonError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(ErrorResponse{Message: message})
}

// errorHandler renders errors escaping the handlers, including Fiber's own
// (404, 405, 413).
func errorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "internal server error"
	var fe *fiber.Error
	if errors.As(err, &fe) {
		status = fe.Code
		message = fe.Message
	}
	return jsonError(c, status, message)
}
