package utils

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/opencatalog/metacat/internal/types"
)

// SuccessResponse sends a standard success response
func SuccessResponse(c *fiber.Ctx, data interface{}, status int) error {
	return c.Status(status).JSON(data)
}

// ErrorResponse sends a standard error response
func ErrorResponse(c *fiber.Ctx, message string, status int, errorType string) error {
	return c.Status(status).JSON(fiber.Map{
		"status":    status,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      errorType,
	})
}

// GUIDResponse sends the identifier of a newly created element.
func GUIDResponse(c *fiber.Ctx, guid string) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"guid": guid,
		"ok":   true,
	})
}

// CountResponse sends a bare attachment count.
func CountResponse(c *fiber.Ctx, count int) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"count": count,
		"ok":    true,
	})
}

// MutationSuccessResponse sends a success response for mutations without a
// body of their own (PUT/DELETE).
func MutationSuccessResponse(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":   "Success",
		"ok":        true,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// ServiceErrorResponse translates a service error into the matching HTTP
// response: invalid parameter 400, unauthorized 403, not found 404,
// everything else is a repository fault at 500.
func ServiceErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case types.IsInvalidParameter(err):
		return ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "invalid-parameter")
	case types.IsUserNotAuthorized(err):
		return ErrorResponse(c, err.Error(), fiber.StatusForbidden, "user-not-authorized")
	case types.IsNotFound(err):
		return ErrorResponse(c, err.Error(), fiber.StatusNotFound, "not-found")
	default:
		return ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "property-server")
	}
}

// ErrorResponseStruct defines the schema for error responses
type ErrorResponseStruct struct {
	Status    int    `json:"status"`
	Message   string `json:"message"`
	Ok        bool   `json:"ok"`
	Timestamp string `json:"timestamp"`
	URL       string `json:"url"`
	Type      string `json:"type,omitempty"`
}

// GUIDResponseStruct defines the schema for creation responses
type GUIDResponseStruct struct {
	GUID string `json:"guid"`
	Ok   bool   `json:"ok"`
}

// CountResponseStruct defines the schema for count responses
type CountResponseStruct struct {
	Count int  `json:"count"`
	Ok    bool `json:"ok"`
}

// SuccessResponseStruct defines the schema for mutation success responses
type SuccessResponseStruct struct {
	Message   string `json:"message"`
	Ok        bool   `json:"ok"`
	Timestamp string `json:"timestamp"`
}
