package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"socialmentor/models"
)

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

func TestSeedLoadsDemoFixture(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, Seed(db, bcrypt.MinCost))

	var users, donations, certificates, impacts int64
	db.Model(&models.User{}).Count(&users)
	db.Model(&models.Donation{}).Count(&donations)
	db.Model(&models.Certificate{}).Count(&certificates)
	db.Model(&models.Impact{}).Count(&impacts)

	assert.EqualValues(t, 5, users)
	assert.EqualValues(t, 6, donations)
	assert.EqualValues(t, 1, certificates)
	assert.EqualValues(t, 2, impacts)

	var admin models.User
	require.NoError(t, db.Where("username = ?", "admin").First(&admin).Error)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("admin123")))
}

func TestSeedIsIdempotent(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, Seed(db, bcrypt.MinCost))
	require.NoError(t, Seed(db, bcrypt.MinCost))

	var users int64
	db.Model(&models.User{}).Count(&users)
	assert.EqualValues(t, 5, users)
}
