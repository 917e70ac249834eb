package store

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"socialmentor/models"
)

// newTestDB opens a private in-memory database per test. The pool is pinned
// to one connection so every query sees the same sqlite memory instance.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Donation{},
		&models.Certificate{},
		&models.Impact{},
	))
	return db
}

func newTestUserStore(db *gorm.DB) *UserStore {
	return NewUserStore(db, bcrypt.MinCost)
}

func createUser(t *testing.T, users *UserStore, username string, role models.Role) *models.User {
	t.Helper()
	user, err := users.Create(NewUserInput{
		Username: username,
		Email:    username + "@example.com",
		Password: "password123",
		Role:     role,
	})
	require.NoError(t, err)
	return user
}

func createPendingDonation(t *testing.T, donations *DonationStore, donorID uint) *models.Donation {
	t.Helper()
	donation, err := donations.Create(NewDonationInput{
		DonorID:     donorID,
		Category:    "Food",
		Description: "rice and dal packets",
	})
	require.NoError(t, err)
	return donation
}

func ptr(v float64) *float64 {
	return &v
}

func toJSON(t *testing.T, v interface{}) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return string(data)
}
