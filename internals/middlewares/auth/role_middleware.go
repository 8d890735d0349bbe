package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// RequireRoles only lets the listed roles through. Must run after
// AuthMiddleware so the role claim is in Locals.
func RequireRoles(message string, roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[strings.ToLower(r)] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		if _, ok := allowed[strings.ToLower(role)]; !ok {
			if message == "" {
				message = "You do not have access to this feature."
			}
			return fiber.NewError(fiber.StatusForbidden, message)
		}
		return c.Next()
	}
}
