package donationRoutes

import (
	donationController "socialmentor/controllers/donation"
	"socialmentor/middleware"
	"socialmentor/models"
	donationValidator "socialmentor/validators/donation"

	"github.com/gofiber/fiber/v2"
)

func SetupDonationRoutes(app *fiber.App) {
	donationGroup := app.Group("/donations", middleware.JWTMiddleware, middleware.LoadCurrentUser)

	donationGroup.Get("/", donationController.List)
	donationGroup.Post("/",
		middleware.RequireRole(models.RoleDonor, "Only donors can create donations!"),
		donationValidator.Create(), donationController.Create)

	// Nearby is registered before :id so it is not captured as a parameter.
	donationGroup.Get("/nearby",
		middleware.RequireRole(models.RoleVolunteer, "Only volunteers can view nearby donations!"),
		donationController.Nearby)

	donationGroup.Get("/:id", donationController.Get)
	donationGroup.Post("/:id/accept",
		middleware.RequireRole(models.RoleVolunteer, "Only volunteers can accept donations!"),
		donationController.Accept)
	donationGroup.Post("/:id/collect",
		middleware.RequireRole(models.RoleVolunteer, "Only volunteers can collect donations!"),
		donationController.Collect)
	donationGroup.Post("/:id/deliver",
		middleware.RequireRole(models.RoleVolunteer, "Only volunteers can deliver donations!"),
		donationValidator.Deliver(), donationController.Deliver)
}
