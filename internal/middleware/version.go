package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// APIVersionLocal is the context key the version middleware stores the
// negotiated API version under.
const APIVersionLocal = "apiVersion"

// VersionMiddleware negotiates the API version for the request: it reads the
// X-Api-Version header, normalizes known aliases, stores the result in the
// request context, and echoes it back on the response so callers can see
// which version served them.
func VersionMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		version := c.Get("X-Api-Version", "1.0.0")
		if version == "1.0" {
			version = "1.0.0"
		}

		c.Locals(APIVersionLocal, version)
		c.Set("X-Api-Version", version)

		return c.Next()
	}
}

// APIVersion returns the version stored by VersionMiddleware.
func APIVersion(c *fiber.Ctx) string {
	if version, ok := c.Locals(APIVersionLocal).(string); ok {
		return version
	}
	return ""
}
