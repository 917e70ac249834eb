package userRoutes

import (
	certificateController "socialmentor/controllers/certificate"
	dashboardController "socialmentor/controllers/dashboard"
	impactController "socialmentor/controllers/impact"
	"socialmentor/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	app.Get("/certificates", middleware.JWTMiddleware, middleware.LoadCurrentUser, certificateController.List)
	app.Get("/impact", middleware.JWTMiddleware, middleware.LoadCurrentUser, impactController.Report)
	app.Get("/leaderboard", middleware.JWTMiddleware, middleware.LoadCurrentUser, dashboardController.Leaderboard)
	app.Get("/dashboard/stats", middleware.JWTMiddleware, middleware.LoadCurrentUser, dashboardController.Stats)
}
