package dashboardController

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"socialmentor/config"
	"socialmentor/database"
	"socialmentor/middleware"
	"socialmentor/models"
	"socialmentor/store"
)

const leaderboardSize = 10

// Leaderboard returns the top donors and volunteers by points.
func Leaderboard(c *fiber.Ctx) error {
	users := store.NewUserStore(database.Database.Db, config.AppConfig.SaltRound)

	donors, err := users.Leaderboard(models.RoleDonor, leaderboardSize)
	if err != nil {
		log.Printf("Error fetching donor leaderboard: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch leaderboard!", nil)
	}
	volunteers, err := users.Leaderboard(models.RoleVolunteer, leaderboardSize)
	if err != nil {
		log.Printf("Error fetching volunteer leaderboard: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch leaderboard!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Leaderboard fetched successfully.", fiber.Map{
		"donors":     publicAll(donors),
		"volunteers": publicAll(volunteers),
	})
}

// Stats returns the role-dependent dashboard counters: listing totals for
// donors, workload for volunteers, platform-wide numbers for admins.
func Stats(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db
	users := store.NewUserStore(db, config.AppConfig.SaltRound)
	donations := store.NewDonationStore(db)

	switch user.Role {
	case models.RoleDonor:
		own, err := donations.ByDonor(user.ID)
		if err != nil {
			return statsError(c, err)
		}
		pending, delivered := 0, 0
		for _, d := range own {
			switch d.Status {
			case models.StatusPending:
				pending++
			case models.StatusDelivered:
				delivered++
			}
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Stats fetched successfully.", fiber.Map{
			"total":     len(own),
			"pending":   pending,
			"delivered": delivered,
		})

	case models.RoleVolunteer:
		assigned, err := donations.ByVolunteer(user.ID)
		if err != nil {
			return statsError(c, err)
		}
		inProgress, completed := 0, 0
		for _, d := range assigned {
			switch d.Status {
			case models.StatusAssigned, models.StatusCollected:
				inProgress++
			case models.StatusDelivered:
				completed++
			}
		}
		nearby, err := store.NewMatcher(users, donations).Nearby(user)
		if err != nil {
			return statsError(c, err)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Stats fetched successfully.", fiber.Map{
			"available": len(nearby),
			"assigned":  inProgress,
			"completed": completed,
		})

	default:
		userCount, err := users.Count()
		if err != nil {
			return statsError(c, err)
		}
		donationCount, err := donations.Count()
		if err != nil {
			return statsError(c, err)
		}
		delivered, err := donations.CountByStatus(models.StatusDelivered)
		if err != nil {
			return statsError(c, err)
		}
		pending, err := donations.CountByStatus(models.StatusPending)
		if err != nil {
			return statsError(c, err)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Stats fetched successfully.", fiber.Map{
			"users":     userCount,
			"donations": donationCount,
			"delivered": delivered,
			"pending":   pending,
		})
	}
}

func statsError(c *fiber.Ctx, err error) error {
	log.Printf("Error computing stats: %v", err)
	return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch stats!", nil)
}

func publicAll(users []models.User) []models.PublicUser {
	public := make([]models.PublicUser, len(users))
	for i := range users {
		public[i] = users[i].Public()
	}
	return public
}
