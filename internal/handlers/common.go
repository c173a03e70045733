package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/opencatalog/metacat/internal/middleware"
	"github.com/opencatalog/metacat/internal/omtypes"
)

// parsePaging extracts the startFrom and pageSize query parameters. Values
// are not validated here; the service layer owns the paging rules and the
// error they produce.
func parsePaging(c *fiber.Ctx) (startFrom, pageSize int) {
	return c.QueryInt("startFrom", 0), c.QueryInt("pageSize", 0)
}

// anchorType extracts the anchorType query parameter, defaulting to the
// Referenceable base type.
func anchorType(c *fiber.Ctx) string {
	t := strings.TrimSpace(c.Query("anchorType"))
	if t == "" {
		return omtypes.ReferenceableType.Name
	}
	return t
}

// callerID returns the validated caller identity for the request.
func callerID(c *fiber.Ctx) string {
	return middleware.UserID(c)
}
