package middleware

import (
	"github.com/gofiber/fiber/v2"

	"socialmentor/database"
	"socialmentor/models"
)

// LoadCurrentUser resolves the authenticated user from the id set by
// JWTMiddleware and stores the full record in Locals under "currentUser".
// Must run after JWTMiddleware.
func LoadCurrentUser(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.First(&user, userID).Error; err != nil {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	c.Locals("currentUser", &user)
	return c.Next()
}

// RequireRole returns a middleware that rejects requests from users outside
// the given role. Must run after LoadCurrentUser.
func RequireRole(role models.Role, message string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := c.Locals("currentUser").(*models.User)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		}
		if user.Role != role {
			return JsonResponse(c, fiber.StatusForbidden, false, message, nil)
		}
		return c.Next()
	}
}

// CurrentUser pulls the user loaded by LoadCurrentUser out of Locals.
func CurrentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals("currentUser").(*models.User)
	return user, ok
}
