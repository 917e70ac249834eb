package store

import (
	"gorm.io/gorm"

	"socialmentor/models"
)

// ImpactStore holds post-delivery outcome reports. Append-only.
type ImpactStore struct {
	db *gorm.DB
}

func NewImpactStore(db *gorm.DB) *ImpactStore {
	return &ImpactStore{db: db}
}

// NewImpactInput carries the outcome a volunteer reports at delivery.
type NewImpactInput struct {
	DonationID   uint
	PeopleHelped *int
	Feedback     string
}

// Create records an impact report against a donation.
func (s *ImpactStore) Create(input NewImpactInput) (*models.Impact, error) {
	impact := models.Impact{
		DonationID:   input.DonationID,
		PeopleHelped: input.PeopleHelped,
		Feedback:     input.Feedback,
	}
	if err := s.db.Create(&impact).Error; err != nil {
		return nil, err
	}
	return &impact, nil
}

// ByDonation lists the impact reports referencing a donation.
func (s *ImpactStore) ByDonation(donationID uint) ([]models.Impact, error) {
	var impacts []models.Impact
	err := s.db.Where("donation_id = ?", donationID).Find(&impacts).Error
	return impacts, err
}

// All lists every impact report.
func (s *ImpactStore) All() ([]models.Impact, error) {
	var impacts []models.Impact
	err := s.db.Find(&impacts).Error
	return impacts, err
}
