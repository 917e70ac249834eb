package models

import (
	"time"

	"gorm.io/gorm"
)

// Role is the fixed account role, set at registration and never changed.
type Role string

const (
	RoleDonor     Role = "donor"
	RoleVolunteer Role = "volunteer"
	RoleAdmin     Role = "admin"
)

// IsValid reports whether r is one of the three known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleDonor, RoleVolunteer, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	gorm.Model
	Username  string   `json:"username" gorm:"unique;not null"`
	Email     string   `json:"email" gorm:"unique;not null"`
	Password  string   `json:"-" gorm:"not null"` // bcrypt digest, never serialized
	Role      Role     `json:"role" gorm:"not null"`
	Phone     string   `json:"phone"`
	City      string   `json:"city"`
	Area      string   `json:"area"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Points    uint     `json:"points" gorm:"default:0"`
}

// PublicUser is the external projection of a User with the credential stripped.
type PublicUser struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	Phone     string    `json:"phone,omitempty"`
	City      string    `json:"city,omitempty"`
	Area      string    `json:"area,omitempty"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
	Points    uint      `json:"points"`
	CreatedAt time.Time `json:"created_at"`
}

// Public returns the projection that is safe to hand out of the store boundary.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		Phone:     u.Phone,
		City:      u.City,
		Area:      u.Area,
		Latitude:  u.Latitude,
		Longitude: u.Longitude,
		Points:    u.Points,
		CreatedAt: u.CreatedAt,
	}
}

// HasCoordinates reports whether the user has a location on file.
func (u *User) HasCoordinates() bool {
	return u.Latitude != nil && u.Longitude != nil
}
