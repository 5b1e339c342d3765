package handlers

import (
	applog "blossom/internal/log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// adminTokenOK checks the X-Admin-Token header against the configured bcrypt
// hash. An empty hash means the admin surface is disabled entirely.
func adminTokenOK(c *fiber.Ctx, secretHash string) bool {
	if secretHash == "" {
		return false
	}
	tok := c.Get("X-Admin-Token")
	if tok == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(secretHash), []byte(tok)) == nil
}

// RequireAdminToken guards the mutating product endpoints.
func RequireAdminToken(secretHash string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !adminTokenOK(c, secretHash) {
			applog.Security(c, "access.denied.token", nil)
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "access denied"})
		}
		return c.Next()
	}
}
