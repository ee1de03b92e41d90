package apperr

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Error is a tagged app condition carrying the HTTP translation for the
// boundary. Services return these; the Fiber error handler renders them.
type Error struct {
	Code    string
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var (
	ErrEmailPasswordEmpty   = &Error{Code: "EmailPasswordEmpty", Status: fiber.StatusBadRequest, Message: "Email and password are required"}
	ErrEmailPasswordInvalid = &Error{Code: "EmailPasswordInvalid", Status: fiber.StatusUnauthorized, Message: "Invalid email or password"}
	ErrEmailTaken           = &Error{Code: "EmailTaken", Status: fiber.StatusBadRequest, Message: "Email is already registered"}
	ErrNotFound             = &Error{Code: "NotFound", Status: fiber.StatusNotFound, Message: "Data not found"}
	ErrUnauthorized         = &Error{Code: "Unauthorized", Status: fiber.StatusUnauthorized, Message: "Invalid or missing token"}
	ErrForbidden            = &Error{Code: "Forbidden", Status: fiber.StatusForbidden, Message: "You are not allowed to access this resource"}
)

// BadRequest builds a one-off validation condition
func BadRequest(message string) *Error {
	return &Error{Code: "BadRequest", Status: fiber.StatusBadRequest, Message: message}
}

// Handler translates app errors into HTTP responses. Anything untyped
// becomes a 500 with a generic message.
func Handler(c *fiber.Ctx, err error) error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return c.Status(appErr.Status).JSON(fiber.Map{"error": appErr.Message, "code": appErr.Code})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
}
