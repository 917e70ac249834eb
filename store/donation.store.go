package store

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"socialmentor/models"
)

// DonationStore holds donation records. Status transitions are issued as
// single conditional UPDATE statements keyed on the expected current state, so
// the check-then-act of accept/collect/deliver stays atomic even when fiber
// serves handlers concurrently: of two racing accepts, exactly one matches the
// pending row.
type DonationStore struct {
	db *gorm.DB
}

func NewDonationStore(db *gorm.DB) *DonationStore {
	return &DonationStore{db: db}
}

// NewDonationInput carries the fields a donor supplies when listing a donation.
type NewDonationInput struct {
	DonorID       uint
	Category      string
	Description   string
	Quantity      string
	PickupAddress string
	City          string
	Area          string
	Latitude      *float64
	Longitude     *float64
}

// Create lists a new donation in the pending state with no volunteer.
func (s *DonationStore) Create(input NewDonationInput) (*models.Donation, error) {
	donation := models.Donation{
		DonorID:       input.DonorID,
		Category:      input.Category,
		Description:   input.Description,
		Quantity:      input.Quantity,
		PickupAddress: input.PickupAddress,
		City:          input.City,
		Area:          input.Area,
		Latitude:      input.Latitude,
		Longitude:     input.Longitude,
		Status:        models.StatusPending,
	}
	if err := s.db.Create(&donation).Error; err != nil {
		return nil, err
	}
	return &donation, nil
}

// ByID returns the donation or ErrNotFound.
func (s *DonationStore) ByID(id uint) (*models.Donation, error) {
	var donation models.Donation
	if err := s.db.First(&donation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &donation, nil
}

// ByDonor lists a donor's donations, most recent first.
func (s *DonationStore) ByDonor(donorID uint) ([]models.Donation, error) {
	var donations []models.Donation
	err := s.db.Where("donor_id = ?", donorID).
		Order("created_at desc").
		Find(&donations).Error
	return donations, err
}

// ByVolunteer lists the donations assigned to a volunteer, most recent first.
func (s *DonationStore) ByVolunteer(volunteerID uint) ([]models.Donation, error) {
	var donations []models.Donation
	err := s.db.Where("volunteer_id = ?", volunteerID).
		Order("created_at desc").
		Find(&donations).Error
	return donations, err
}

// All lists every donation, most recent first.
func (s *DonationStore) All() ([]models.Donation, error) {
	var donations []models.Donation
	err := s.db.Order("created_at desc").Find(&donations).Error
	return donations, err
}

// Pending lists unassigned donations. Unordered: the matching query re-sorts
// by distance after filtering.
func (s *DonationStore) Pending() ([]models.Donation, error) {
	var donations []models.Donation
	err := s.db.Where("status = ?", models.StatusPending).Find(&donations).Error
	return donations, err
}

// Accept assigns a pending donation to a volunteer. The volunteer id is set
// exactly once here and never changes afterward. Fails with ErrAlreadyAssigned
// if the donation has left the pending state.
func (s *DonationStore) Accept(id, volunteerID uint) (*models.Donation, error) {
	result := s.db.Model(&models.Donation{}).
		Where("id = ? AND status = ?", id, models.StatusPending).
		Updates(map[string]interface{}{
			"volunteer_id": volunteerID,
			"status":       models.StatusAssigned,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		if _, err := s.ByID(id); err != nil {
			return nil, err
		}
		return nil, ErrAlreadyAssigned
	}
	return s.ByID(id)
}

// Collect marks an assigned donation as picked up by its volunteer.
func (s *DonationStore) Collect(id, volunteerID uint) (*models.Donation, error) {
	now := time.Now()
	result := s.db.Model(&models.Donation{}).
		Where("id = ? AND status = ? AND volunteer_id = ?", id, models.StatusAssigned, volunteerID).
		Updates(map[string]interface{}{
			"status":       models.StatusCollected,
			"collected_at": now,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, s.classifyTransitionFailure(id, volunteerID)
	}
	return s.ByID(id)
}

// DeliveryInput carries the recipient details recorded at handover.
type DeliveryInput struct {
	RecipientName    string
	RecipientContact string
}

// Deliver marks a collected donation as handed to the recipient.
func (s *DonationStore) Deliver(id, volunteerID uint, input DeliveryInput) (*models.Donation, error) {
	now := time.Now()
	result := s.db.Model(&models.Donation{}).
		Where("id = ? AND status = ? AND volunteer_id = ?", id, models.StatusCollected, volunteerID).
		Updates(map[string]interface{}{
			"status":            models.StatusDelivered,
			"delivered_at":      now,
			"recipient_name":    input.RecipientName,
			"recipient_contact": input.RecipientContact,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, s.classifyTransitionFailure(id, volunteerID)
	}
	return s.ByID(id)
}

// classifyTransitionFailure re-reads a donation after a conditional update
// matched no row and decides which precondition was violated. Ownership is
// checked before status: a wrong volunteer gets ErrNotOwner regardless of the
// donation's state.
func (s *DonationStore) classifyTransitionFailure(id, volunteerID uint) error {
	donation, err := s.ByID(id)
	if err != nil {
		return err
	}
	if donation.VolunteerID == nil || *donation.VolunteerID != volunteerID {
		return ErrNotOwner
	}
	return ErrInvalidStatus
}

// CountByDonor returns a donor's lifetime donation count.
func (s *DonationStore) CountByDonor(donorID uint) (int64, error) {
	var count int64
	err := s.db.Model(&models.Donation{}).
		Where("donor_id = ?", donorID).
		Count(&count).Error
	return count, err
}

// DeliveredCountFor counts the delivered donations a user is credited with:
// as donor for donors, as volunteer for volunteers. Admins are credited with
// none.
func (s *DonationStore) DeliveredCountFor(user *models.User) (int64, error) {
	query := s.db.Model(&models.Donation{}).Where("status = ?", models.StatusDelivered)
	switch user.Role {
	case models.RoleDonor:
		query = query.Where("donor_id = ?", user.ID)
	case models.RoleVolunteer:
		query = query.Where("volunteer_id = ?", user.ID)
	default:
		return 0, nil
	}
	var count int64
	err := query.Count(&count).Error
	return count, err
}

// DeliveredFor lists the delivered donations a user is credited with, in the
// same sense as DeliveredCountFor. Admins see all delivered donations.
func (s *DonationStore) DeliveredFor(user *models.User) ([]models.Donation, error) {
	query := s.db.Where("status = ?", models.StatusDelivered)
	switch user.Role {
	case models.RoleDonor:
		query = query.Where("donor_id = ?", user.ID)
	case models.RoleVolunteer:
		query = query.Where("volunteer_id = ?", user.ID)
	case models.RoleAdmin:
		// no extra filter
	}
	var donations []models.Donation
	err := query.Order("created_at desc").Find(&donations).Error
	return donations, err
}

// CountByStatus returns how many donations are in the given status.
func (s *DonationStore) CountByStatus(status models.DonationStatus) (int64, error) {
	var count int64
	err := s.db.Model(&models.Donation{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

// Count returns the total number of donations.
func (s *DonationStore) Count() (int64, error) {
	var count int64
	err := s.db.Model(&models.Donation{}).Count(&count).Error
	return count, err
}
