package models

import "gorm.io/gorm"

// Impact is an outcome report attached to a delivered donation. Immutable
// after creation; references the donation by id only.
type Impact struct {
	gorm.Model
	DonationID   uint   `json:"donation_id" gorm:"index;not null"`
	PeopleHelped *int   `json:"people_helped"`
	Feedback     string `json:"feedback"`
}
