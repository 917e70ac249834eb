package models

import (
	"time"

	"gorm.io/gorm"
)

// CertificateType is a recognition tier, ordered by ascending delivery threshold.
type CertificateType string

const (
	CertBronze   CertificateType = "bronze"
	CertSilver   CertificateType = "silver"
	CertGold     CertificateType = "gold"
	CertPlatinum CertificateType = "platinum"
)

// Certificate is an earned recognition. At most one certificate of a given
// type exists per user; once issued it is never revoked.
type Certificate struct {
	gorm.Model
	UserID            uint            `json:"user_id" gorm:"index;not null"`
	CertificateType   CertificateType `json:"certificate_type" gorm:"not null"`
	CertificateNumber string          `json:"certificate_number" gorm:"unique"`
	IssuedAt          time.Time       `json:"issued_at"`
	DonationsCount    int             `json:"donations_count"` // qualifying count at issuance time
}
