package certificateController

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"socialmentor/database"
	"socialmentor/middleware"
	"socialmentor/store"
)

// List returns the caller's earned certificates, most recently issued first.
func List(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	certificates := store.NewCertificateStore(database.Database.Db)

	certs, err := certificates.ByUser(user.ID)
	if err != nil {
		log.Printf("Error fetching certificates for user %d: %v", user.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certificates!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully.", certs)
}
