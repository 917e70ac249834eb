package authRoutes

import (
	authController "socialmentor/controllers/auth"
	"socialmentor/middleware"
	authValidator "socialmentor/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/register", authValidator.Register(), authController.Register)
	authGroup.Post("/login", authValidator.Login(), authController.Login)
	authGroup.Get("/me", middleware.JWTMiddleware, middleware.LoadCurrentUser, authController.Me)
}
