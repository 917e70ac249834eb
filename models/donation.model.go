package models

import (
	"time"

	"gorm.io/gorm"
)

// DonationStatus is the lifecycle state of a donation. Transitions only ever
// move forward: pending -> assigned -> collected -> delivered.
type DonationStatus string

const (
	StatusPending   DonationStatus = "pending"
	StatusAssigned  DonationStatus = "assigned"
	StatusCollected DonationStatus = "collected"
	StatusDelivered DonationStatus = "delivered"
)

type Donation struct {
	gorm.Model
	DonorID          uint           `json:"donor_id" gorm:"index;not null"`
	VolunteerID      *uint          `json:"volunteer_id" gorm:"index"` // set once on accept
	Category         string         `json:"category" gorm:"not null"`
	Description      string         `json:"description" gorm:"not null"`
	Quantity         string         `json:"quantity"`
	PickupAddress    string         `json:"pickup_address"`
	City             string         `json:"city"`
	Area             string         `json:"area"`
	Latitude         *float64       `json:"latitude"`
	Longitude        *float64       `json:"longitude"`
	Status           DonationStatus `json:"status" gorm:"index;default:'pending'"`
	CollectedAt      *time.Time     `json:"collected_at"`
	DeliveredAt      *time.Time     `json:"delivered_at"`
	RecipientName    string         `json:"recipient_name"`
	RecipientContact string         `json:"recipient_contact"`
}

// HasCoordinates reports whether the pickup location is geocoded.
func (d *Donation) HasCoordinates() bool {
	return d.Latitude != nil && d.Longitude != nil
}
