package donationController

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"socialmentor/config"
	"socialmentor/database"
	"socialmentor/middleware"
	"socialmentor/models"
	"socialmentor/store"
	"socialmentor/utils"
	donationValidator "socialmentor/validators/donation"
)

// donationView is a donation enriched with the public projections of its
// donor and (when assigned) volunteer.
type donationView struct {
	models.Donation
	Donor     *models.PublicUser `json:"donor"`
	Volunteer *models.PublicUser `json:"volunteer"`
}

func enrich(users *store.UserStore, donation models.Donation) donationView {
	view := donationView{Donation: donation}
	if donor, err := users.FindByID(donation.DonorID); err == nil {
		public := donor.Public()
		view.Donor = &public
	}
	if donation.VolunteerID != nil {
		if volunteer, err := users.FindByID(*donation.VolunteerID); err == nil {
			public := volunteer.Public()
			view.Volunteer = &public
		}
	}
	return view
}

func enrichAll(users *store.UserStore, donations []models.Donation) []donationView {
	views := make([]donationView, len(donations))
	for i, donation := range donations {
		views[i] = enrich(users, donation)
	}
	return views
}

func newStores() (*store.UserStore, *store.DonationStore) {
	db := database.Database.Db
	return store.NewUserStore(db, config.AppConfig.SaltRound), store.NewDonationStore(db)
}

// List returns the donations relevant to the caller: their own listings for
// donors, their assigned deliveries for volunteers, everything for admins.
func List(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	users, donations := newStores()

	var records []models.Donation
	var err error
	switch user.Role {
	case models.RoleDonor:
		records, err = donations.ByDonor(user.ID)
	case models.RoleVolunteer:
		records, err = donations.ByVolunteer(user.ID)
	default:
		records, err = donations.All()
	}
	if err != nil {
		log.Printf("Error listing donations: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch donations!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Donations fetched successfully.", enrichAll(users, records))
}

// Create lists a new donation for the calling donor. Missing location fields
// fall back to the donor's profile. Point awards run after the insert as a
// best-effort chain: a failure there never rolls the donation back.
func Create(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedDonation").(*donationValidator.CreateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	users, donations := newStores()

	input := store.NewDonationInput{
		DonorID:       user.ID,
		Category:      reqData.Category,
		Description:   reqData.Description,
		Quantity:      reqData.Quantity,
		PickupAddress: reqData.PickupAddress,
		City:          reqData.City,
		Area:          reqData.Area,
		Latitude:      reqData.Latitude,
		Longitude:     reqData.Longitude,
	}
	if input.City == "" {
		input.City = user.City
	}
	if input.Area == "" {
		input.Area = user.Area
	}
	if input.Latitude == nil {
		input.Latitude = user.Latitude
	}
	if input.Longitude == nil {
		input.Longitude = user.Longitude
	}

	donation, err := donations.Create(input)
	if err != nil {
		log.Printf("Error creating donation: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create donation!", nil)
	}

	rewards := store.NewRewardsEngine(users, donations, store.NewCertificateStore(database.Database.Db))
	if count, err := donations.CountByDonor(user.ID); err == nil && count == 1 {
		rewards.AwardPoints(user.ID, store.ActionFirstDonation)
	}
	rewards.AwardPoints(user.ID, store.ActionDonation)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Donation created successfully.", enrich(users, *donation))
}

// Get returns a single donation with donor and volunteer details.
func Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid donation id!", nil)
	}

	users, donations := newStores()

	donation, err := donations.ByID(uint(id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Donation not found!", nil)
		}
		log.Printf("Error fetching donation %d: %v", id, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch donation!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Donation fetched successfully.", enrich(users, *donation))
}

// Nearby returns the pending donations within matching range of the calling
// volunteer, closest first.
func Nearby(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	users, donations := newStores()

	nearby, err := store.NewMatcher(users, donations).Nearby(user)
	if err != nil {
		log.Printf("Error matching donations: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch nearby donations!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Nearby donations fetched successfully.", nearby)
}

// Accept assigns a pending donation to the calling volunteer.
func Accept(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid donation id!", nil)
	}

	users, donations := newStores()

	donation, err := donations.Accept(uint(id), user.ID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Donation not found!", nil)
		case errors.Is(err, store.ErrAlreadyAssigned):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Donation already assigned!", nil)
		}
		log.Printf("Error accepting donation %d: %v", id, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to accept donation!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Donation accepted.", enrich(users, *donation))
}

// Collect marks an assigned donation as picked up and awards collection points.
func Collect(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid donation id!", nil)
	}

	users, donations := newStores()

	donation, err := donations.Collect(uint(id), user.ID)
	if err != nil {
		return transitionError(c, err, id, "collect")
	}

	rewards := store.NewRewardsEngine(users, donations, store.NewCertificateStore(database.Database.Db))
	rewards.AwardPoints(user.ID, store.ActionVolunteerCollect)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Donation collected.", enrich(users, *donation))
}

// Deliver marks a collected donation as handed over, records the impact
// report, awards delivery points and fires the best-effort notifications.
func Deliver(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid donation id!", nil)
	}

	reqData, ok := c.Locals("validatedDelivery").(*donationValidator.DeliverRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	users, donations := newStores()

	donation, err := donations.Deliver(uint(id), user.ID, store.DeliveryInput{
		RecipientName:    reqData.RecipientName,
		RecipientContact: reqData.RecipientContact,
	})
	if err != nil {
		return transitionError(c, err, id, "deliver")
	}

	impacts := store.NewImpactStore(database.Database.Db)
	if _, err := impacts.Create(store.NewImpactInput{
		DonationID:   donation.ID,
		PeopleHelped: reqData.PeopleHelped,
		Feedback:     reqData.Feedback,
	}); err != nil {
		// The delivery already happened; losing the report must not undo it.
		log.Printf("Error recording impact for donation %d: %v", donation.ID, err)
	}

	rewards := store.NewRewardsEngine(users, donations, store.NewCertificateStore(database.Database.Db))
	rewards.AwardPoints(user.ID, store.ActionVolunteerDeliver)

	if donor, err := users.FindByID(donation.DonorID); err == nil {
		go utils.NotifyDelivery(*donation, donor.Public(), user.Public(), reqData.PeopleHelped)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Donation delivered.", enrich(users, *donation))
}

// transitionError maps a failed collect/deliver to its HTTP response.
func transitionError(c *fiber.Ctx, err error, id int, action string) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Donation not found!", nil)
	case errors.Is(err, store.ErrNotOwner):
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Not your donation!", nil)
	case errors.Is(err, store.ErrInvalidStatus):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Donation is not in the required status!", nil)
	}
	log.Printf("Error on %s of donation %d: %v", action, id, err)
	return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update donation!", nil)
}
