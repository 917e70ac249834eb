package impactController

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"socialmentor/config"
	"socialmentor/database"
	"socialmentor/middleware"
	"socialmentor/models"
	"socialmentor/store"
)

// impactEntry pairs one impact report with its delivered donation and the
// people involved.
type impactEntry struct {
	Donation struct {
		models.Donation
		Donor     *models.PublicUser `json:"donor"`
		Volunteer *models.PublicUser `json:"volunteer"`
	} `json:"donation"`
	Impact models.Impact `json:"impact"`
}

// Report aggregates the impact of the caller's delivered donations: their own
// listings for donors, their deliveries for volunteers, everything for admins.
func Report(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db
	users := store.NewUserStore(db, config.AppConfig.SaltRound)
	donations := store.NewDonationStore(db)
	impacts := store.NewImpactStore(db)

	delivered, err := donations.DeliveredFor(user)
	if err != nil {
		log.Printf("Error fetching delivered donations: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch impact report!", nil)
	}

	totalPeopleHelped := 0
	entries := []impactEntry{}

	for _, donation := range delivered {
		reports, err := impacts.ByDonation(donation.ID)
		if err != nil {
			log.Printf("Error fetching impacts for donation %d: %v", donation.ID, err)
			continue
		}

		var donor, volunteer *models.PublicUser
		if u, err := users.FindByID(donation.DonorID); err == nil {
			public := u.Public()
			donor = &public
		}
		if donation.VolunteerID != nil {
			if u, err := users.FindByID(*donation.VolunteerID); err == nil {
				public := u.Public()
				volunteer = &public
			}
		}

		for _, report := range reports {
			if report.PeopleHelped != nil {
				totalPeopleHelped += *report.PeopleHelped
			}
			entry := impactEntry{Impact: report}
			entry.Donation.Donation = donation
			entry.Donation.Donor = donor
			entry.Donation.Volunteer = volunteer
			entries = append(entries, entry)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Impact report fetched successfully.", fiber.Map{
		"total":   totalPeopleHelped,
		"impacts": entries,
	})
}
