package auth

import (
	"github.com/gofiber/fiber/v2"

	helper "schoolku_backend/internals/helpers"
)

// RoleMiddleware = role gate. Allow-list statis per route group,
// dievaluasi sekali per request terhadap role hasil re-fetch.
// Ownership check ("submission ini milik student ini") bukan urusan gate —
// itu tanggung jawab controller.
func RoleMiddleware(allowedRoles []string, customForbiddenMessage string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals(LocUserRole).(string)
		if !ok || role == "" {
			// Resolver dilewati atau gagal — tidak boleh terjadi di route protected
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized: missing role information")
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}

		msg := customForbiddenMessage
		if msg == "" {
			msg = "Forbidden: you are not authorized to access this resource"
		}
		return helper.JsonErrorWithDetails(c, fiber.StatusForbidden, msg, fiber.Map{
			"required": allowedRoles,
			"current":  role,
		})
	}
}

// OnlyRoles shortcut biar pemakaian lebih clean
func OnlyRoles(customMessage string, roles ...string) fiber.Handler {
	return RoleMiddleware(roles, customMessage)
}
