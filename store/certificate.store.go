package store

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"socialmentor/models"
)

// CertificateStore holds issued certificates. Certificates are append-only:
// once issued for a (user, tier) pair, never re-issued or revoked.
type CertificateStore struct {
	db *gorm.DB
}

func NewCertificateStore(db *gorm.DB) *CertificateStore {
	return &CertificateStore{db: db}
}

// Exists reports whether the user already holds a certificate of the given type.
func (s *CertificateStore) Exists(userID uint, certType models.CertificateType) (bool, error) {
	var cert models.Certificate
	err := s.db.Where("user_id = ? AND certificate_type = ?", userID, certType).
		First(&cert).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Issue creates a certificate with the qualifying delivered count snapshotted
// at issuance time.
func (s *CertificateStore) Issue(userID uint, certType models.CertificateType, donationsCount int) (*models.Certificate, error) {
	cert := models.Certificate{
		UserID:            userID,
		CertificateType:   certType,
		CertificateNumber: uuid.NewString(),
		IssuedAt:          time.Now(),
		DonationsCount:    donationsCount,
	}
	if err := s.db.Create(&cert).Error; err != nil {
		return nil, err
	}
	return &cert, nil
}

// ByUser lists a user's certificates, most recently issued first.
func (s *CertificateStore) ByUser(userID uint) ([]models.Certificate, error) {
	var certs []models.Certificate
	err := s.db.Where("user_id = ?", userID).
		Order("issued_at desc").
		Find(&certs).Error
	return certs, err
}
