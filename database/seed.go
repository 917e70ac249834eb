package database

import (
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"socialmentor/models"
)

// Seed loads the demo fixture: an admin, two donors, two volunteers around
// Mumbai, donations across every lifecycle state, one bronze certificate and
// two impact reports. A no-op when any user already exists, so restarting
// with SEED_DATA=true does not duplicate data.
func Seed(db *gorm.DB, saltRound int) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Seed skipped: users table is not empty.")
		return nil
	}

	log.Println("Seeding demo data...")

	hash := func(password string) string {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), saltRound)
		if err != nil {
			log.Fatalf("Seeding failed to hash password: %v", err)
		}
		return string(hashed)
	}

	users := []models.User{
		{
			Username: "admin",
			Email:    "admin@socialmentor.com",
			Password: hash("admin123"),
			Role:     models.RoleAdmin,
			City:     "Mumbai",
			Area:     "Central",
		},
		{
			Username:  "donor1",
			Email:     "donor1@example.com",
			Password:  hash("password123"),
			Role:      models.RoleDonor,
			Phone:     "9876543210",
			City:      "Mumbai",
			Area:      "Andheri",
			Latitude:  ptr(19.1136),
			Longitude: ptr(72.8697),
			Points:    120,
		},
		{
			Username:  "donor2",
			Email:     "donor2@example.com",
			Password:  hash("password123"),
			Role:      models.RoleDonor,
			Phone:     "9876543211",
			City:      "Mumbai",
			Area:      "Bandra",
			Latitude:  ptr(19.0596),
			Longitude: ptr(72.8295),
			Points:    80,
		},
		{
			Username:  "volunteer1",
			Email:     "volunteer1@example.com",
			Password:  hash("password123"),
			Role:      models.RoleVolunteer,
			Phone:     "9876543212",
			City:      "Mumbai",
			Area:      "Dadar",
			Latitude:  ptr(19.0178),
			Longitude: ptr(72.8478),
			Points:    200,
		},
		{
			Username:  "volunteer2",
			Email:     "volunteer2@example.com",
			Password:  hash("password123"),
			Role:      models.RoleVolunteer,
			Phone:     "9876543213",
			City:      "Mumbai",
			Area:      "Powai",
			Latitude:  ptr(19.1176),
			Longitude: ptr(72.9060),
			Points:    150,
		},
	}
	if err := db.Create(&users).Error; err != nil {
		return err
	}

	donor1 := users[1].ID
	donor2 := users[2].ID
	volunteer1 := users[3].ID
	volunteer2 := users[4].ID

	donations := []models.Donation{
		{
			DonorID:          donor1,
			VolunteerID:      &volunteer1,
			Category:         "Food",
			Description:      "50 packets of rice and dal",
			Quantity:         "50 packets",
			PickupAddress:    "123 Andheri West, Mumbai",
			City:             "Mumbai",
			Area:             "Andheri",
			Latitude:         ptr(19.1136),
			Longitude:        ptr(72.8697),
			Status:           models.StatusDelivered,
			CollectedAt:      daysAgo(19),
			DeliveredAt:      daysAgo(18),
			RecipientName:    "Hope Foundation",
			RecipientContact: "9876500001",
		},
		{
			DonorID:          donor1,
			VolunteerID:      &volunteer2,
			Category:         "Clothing",
			Description:      "30 sets of winter clothing for children",
			Quantity:         "30 sets",
			PickupAddress:    "456 Andheri East, Mumbai",
			City:             "Mumbai",
			Area:             "Andheri",
			Latitude:         ptr(19.1196),
			Longitude:        ptr(72.8789),
			Status:           models.StatusDelivered,
			CollectedAt:      daysAgo(14),
			DeliveredAt:      daysAgo(13),
			RecipientName:    "Children's Shelter",
			RecipientContact: "9876500002",
		},
		{
			DonorID:       donor2,
			Category:      "Books",
			Description:   "100 textbooks for grade 5-10",
			Quantity:      "100 books",
			PickupAddress: "789 Bandra West, Mumbai",
			City:          "Mumbai",
			Area:          "Bandra",
			Latitude:      ptr(19.0596),
			Longitude:     ptr(72.8295),
			Status:        models.StatusPending,
		},
		{
			DonorID:       donor1,
			VolunteerID:   &volunteer1,
			Category:      "Food",
			Description:   "25 kg fruits and vegetables",
			Quantity:      "25 kg",
			PickupAddress: "321 Andheri West, Mumbai",
			City:          "Mumbai",
			Area:          "Andheri",
			Latitude:      ptr(19.1186),
			Longitude:     ptr(72.8647),
			Status:        models.StatusCollected,
			CollectedAt:   daysAgo(2),
		},
		{
			DonorID:       donor2,
			Category:      "Medicine",
			Description:   "First aid kits and basic medicines",
			Quantity:      "20 kits",
			PickupAddress: "654 Bandra East, Mumbai",
			City:          "Mumbai",
			Area:          "Bandra",
			Latitude:      ptr(19.0616),
			Longitude:     ptr(72.8395),
			Status:        models.StatusPending,
		},
		{
			DonorID:       donor1,
			VolunteerID:   &volunteer2,
			Category:      "Clothing",
			Description:   "15 blankets for homeless shelter",
			Quantity:      "15 blankets",
			PickupAddress: "987 Andheri West, Mumbai",
			City:          "Mumbai",
			Area:          "Andheri",
			Latitude:      ptr(19.1166),
			Longitude:     ptr(72.8717),
			Status:        models.StatusAssigned,
		},
	}
	if err := db.Create(&donations).Error; err != nil {
		return err
	}

	certificate := models.Certificate{
		UserID:            volunteer1,
		CertificateType:   models.CertBronze,
		CertificateNumber: uuid.NewString(),
		IssuedAt:          *daysAgo(10),
		DonationsCount:    5,
	}
	if err := db.Create(&certificate).Error; err != nil {
		return err
	}

	impacts := []models.Impact{
		{
			DonationID:   donations[0].ID,
			PeopleHelped: intPtr(25),
			Feedback:     "The food packets were distributed to 25 families in the local community.",
		},
		{
			DonationID:   donations[1].ID,
			PeopleHelped: intPtr(30),
			Feedback:     "Winter clothing provided to 30 children at the shelter. They were very grateful.",
		},
	}
	if err := db.Create(&impacts).Error; err != nil {
		return err
	}

	log.Println("Seeding completed successfully.")
	return nil
}

func ptr(v float64) *float64 {
	return &v
}

func intPtr(v int) *int {
	return &v
}

func daysAgo(days int) *time.Time {
	t := time.Now().AddDate(0, 0, -days)
	return &t
}
