package store

import (
	"sort"

	"socialmentor/geo"
	"socialmentor/models"
)

// MaxMatchRadiusKm bounds how far a pending donation may be from a volunteer
// to count as nearby.
const MaxMatchRadiusKm = 20

// NearbyDonation is a pending donation within range of a volunteer, enriched
// with the donor's public projection and the distance in kilometers.
type NearbyDonation struct {
	models.Donation
	Donor    *models.PublicUser `json:"donor"`
	Distance float64            `json:"distance"` // km, rounded to 2 decimals
}

// Matcher derives the nearby-pending-donations view for volunteers.
type Matcher struct {
	users     *UserStore
	donations *DonationStore
}

func NewMatcher(users *UserStore, donations *DonationStore) *Matcher {
	return &Matcher{users: users, donations: donations}
}

// Nearby returns the pending donations within MaxMatchRadiusKm of the
// volunteer, sorted ascending by distance. Volunteers without coordinates on
// file get an empty result, never an error; donations without coordinates are
// skipped. The radius check uses the exact distance; only the reported value
// is rounded.
func (m *Matcher) Nearby(volunteer *models.User) ([]NearbyDonation, error) {
	nearby := []NearbyDonation{}
	if !volunteer.HasCoordinates() {
		return nearby, nil
	}

	pending, err := m.donations.Pending()
	if err != nil {
		return nil, err
	}

	for _, donation := range pending {
		if !donation.HasCoordinates() {
			continue
		}
		distance := geo.Distance(*volunteer.Latitude, *volunteer.Longitude, *donation.Latitude, *donation.Longitude)
		if distance > MaxMatchRadiusKm {
			continue
		}

		entry := NearbyDonation{
			Donation: donation,
			Distance: geo.Round2(distance),
		}
		if donor, err := m.users.FindByID(donation.DonorID); err == nil {
			public := donor.Public()
			entry.Donor = &public
		}
		nearby = append(nearby, entry)
	}

	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].Distance < nearby[j].Distance
	})
	return nearby, nil
}
