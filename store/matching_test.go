package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialmentor/models"
)

// Volunteer in Andheri; fixtures around Mumbai with known haversine distances.
const (
	volunteerLat = 19.1136
	volunteerLon = 72.8697
)

func newMatchingFixture(t *testing.T) (*Matcher, *UserStore, *DonationStore, *models.User, *models.User) {
	t.Helper()
	db := newTestDB(t)
	users := newTestUserStore(db)
	donations := NewDonationStore(db)

	donor := createUser(t, users, "donor1", models.RoleDonor)

	volunteer, err := users.Create(NewUserInput{
		Username:  "volunteer1",
		Email:     "volunteer1@example.com",
		Password:  "password123",
		Role:      models.RoleVolunteer,
		Latitude:  ptr(volunteerLat),
		Longitude: ptr(volunteerLon),
	})
	require.NoError(t, err)

	return NewMatcher(users, donations), users, donations, donor, volunteer
}

func createLocatedDonation(t *testing.T, donations *DonationStore, donorID uint, lat, lon float64) *models.Donation {
	t.Helper()
	donation, err := donations.Create(NewDonationInput{
		DonorID:     donorID,
		Category:    "Food",
		Description: "packets",
		Latitude:    ptr(lat),
		Longitude:   ptr(lon),
	})
	require.NoError(t, err)
	return donation
}

func TestNearbyFiltersByRadius(t *testing.T) {
	matcher, _, donations, donor, volunteer := newMatchingFixture(t)

	inRange := createLocatedDonation(t, donations, donor.ID, 19.0596, 72.8295) // ~7.34 km
	createLocatedDonation(t, donations, donor.ID, 19.1136, 73.1000)            // ~24.2 km, out

	nearby, err := matcher.Nearby(volunteer)
	require.NoError(t, err)
	require.Len(t, nearby, 1)
	assert.Equal(t, inRange.ID, nearby[0].ID)
	assert.InDelta(t, 7.34, nearby[0].Distance, 0.01)
}

func TestNearbyAttachesDonorProjection(t *testing.T) {
	matcher, _, donations, donor, volunteer := newMatchingFixture(t)

	createLocatedDonation(t, donations, donor.ID, 19.0596, 72.8295)

	nearby, err := matcher.Nearby(volunteer)
	require.NoError(t, err)
	require.Len(t, nearby, 1)
	require.NotNil(t, nearby[0].Donor)
	assert.Equal(t, donor.Username, nearby[0].Donor.Username)
	assert.NotContains(t, toJSON(t, nearby[0].Donor), "password")
}

func TestNearbySortedAscendingByDistance(t *testing.T) {
	matcher, _, donations, donor, volunteer := newMatchingFixture(t)

	far := createLocatedDonation(t, donations, donor.ID, 19.0178, 72.8478)  // ~10.9 km
	near := createLocatedDonation(t, donations, donor.ID, 19.1176, 72.9060) // ~3.84 km
	mid := createLocatedDonation(t, donations, donor.ID, 19.0596, 72.8295)  // ~7.34 km

	nearby, err := matcher.Nearby(volunteer)
	require.NoError(t, err)
	require.Len(t, nearby, 3)
	assert.Equal(t, near.ID, nearby[0].ID)
	assert.Equal(t, mid.ID, nearby[1].ID)
	assert.Equal(t, far.ID, nearby[2].ID)
}

func TestNearbySkipsNonPendingDonations(t *testing.T) {
	matcher, users, donations, donor, volunteer := newMatchingFixture(t)

	assigned := createLocatedDonation(t, donations, donor.ID, 19.1176, 72.9060)
	other := createUser(t, users, "volunteer2", models.RoleVolunteer)
	_, err := donations.Accept(assigned.ID, other.ID)
	require.NoError(t, err)

	nearby, err := matcher.Nearby(volunteer)
	require.NoError(t, err)
	assert.Empty(t, nearby)
}

func TestNearbySkipsDonationsWithoutCoordinates(t *testing.T) {
	matcher, _, donations, donor, volunteer := newMatchingFixture(t)

	createPendingDonation(t, donations, donor.ID) // no coordinates

	nearby, err := matcher.Nearby(volunteer)
	require.NoError(t, err)
	assert.Empty(t, nearby)
}

func TestNearbyWithoutVolunteerCoordinatesIsEmptyNotError(t *testing.T) {
	matcher, users, donations, donor, _ := newMatchingFixture(t)

	createLocatedDonation(t, donations, donor.ID, 19.1176, 72.9060)
	homeless := createUser(t, users, "volunteer-nowhere", models.RoleVolunteer)

	nearby, err := matcher.Nearby(homeless)
	require.NoError(t, err)
	assert.NotNil(t, nearby)
	assert.Empty(t, nearby)
}
