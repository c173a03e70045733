package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/opencatalog/metacat/internal/utils"
)

// UserIDLocal is the context key the identity middleware stores the caller
// under.
const UserIDLocal = "userId"

// CallerIdentity validates the :userId path parameter and stores it in the
// request context. Every catalog route is scoped to a caller; a blank
// identity is rejected before any handler runs.
func CallerIdentity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := strings.TrimSpace(c.Params("userId"))
		if userID == "" {
			return utils.ErrorResponse(c, "userId path parameter is null or blank",
				fiber.StatusBadRequest, "invalid-parameter")
		}
		c.Locals(UserIDLocal, userID)
		return c.Next()
	}
}

// UserID returns the caller identity stored by CallerIdentity.
func UserID(c *fiber.Ctx) string {
	if userID, ok := c.Locals(UserIDLocal).(string); ok {
		return userID
	}
	return ""
}
