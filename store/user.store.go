// Package store owns the four persisted collections (users, donations,
// certificates, impacts) and is the only mutation path into them.
package store

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"socialmentor/models"
)

// UserStore holds user records and credentials.
type UserStore struct {
	db        *gorm.DB
	saltRound int
}

func NewUserStore(db *gorm.DB, saltRound int) *UserStore {
	return &UserStore{db: db, saltRound: saltRound}
}

// NewUserInput carries the registration fields. Role is fixed at creation.
type NewUserInput struct {
	Username  string
	Email     string
	Password  string
	Role      models.Role
	Phone     string
	City      string
	Area      string
	Latitude  *float64
	Longitude *float64
}

// Create registers a new user with zero points. The password is hashed before
// storage; the plaintext is never persisted. Fails with ErrDuplicateIdentity
// if the username or email is already taken.
func (s *UserStore) Create(input NewUserInput) (*models.User, error) {
	var count int64
	if err := s.db.Model(&models.User{}).
		Where("username = ? OR email = ?", input.Username, input.Email).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateIdentity
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.saltRound)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:  input.Username,
		Email:     input.Email,
		Password:  string(hashed),
		Role:      input.Role,
		Phone:     input.Phone,
		City:      input.City,
		Area:      input.Area,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		Points:    0,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByID returns the full user record or ErrNotFound.
func (s *UserStore) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByUsername returns the full user record or ErrNotFound.
func (s *UserStore) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByEmail returns the full user record or ErrNotFound.
func (s *UserStore) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// VerifyCredential checks a username/password pair. Unknown username and wrong
// password both fail with ErrInvalidCredential so the outward signal does not
// leak which one it was. bcrypt's comparison is constant time.
func (s *UserStore) VerifyCredential(username, password string) (*models.User, error) {
	user, err := s.FindByUsername(username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredential
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredential
	}
	return user, nil
}

// AddPoints increments a user's point total. Points only ever grow; callers
// pass positive deltas. Used by the rewards engine only.
func (s *UserStore) AddPoints(userID uint, points uint) error {
	return s.db.Model(&models.User{}).
		Where("id = ?", userID).
		UpdateColumn("points", gorm.Expr("points + ?", points)).Error
}

// Leaderboard returns the top users of a role ordered by points, capped at limit.
func (s *UserStore) Leaderboard(role models.Role, limit int) ([]models.User, error) {
	var users []models.User
	err := s.db.Where("role = ?", role).
		Order("points desc").
		Limit(limit).
		Find(&users).Error
	return users, err
}

// Count returns the total number of registered users.
func (s *UserStore) Count() (int64, error) {
	var count int64
	err := s.db.Model(&models.User{}).Count(&count).Error
	return count, err
}
