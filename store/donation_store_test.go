package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialmentor/models"
)

func TestCreateDonationStartsPendingUnassigned(t *testing.T) {
	db := newTestDB(t)
	users := newTestUserStore(db)
	donations := NewDonationStore(db)

	donor := createUser(t, users, "donor1", models.RoleDonor)
	donation := createPendingDonation(t, donations, donor.ID)

	assert.Equal(t, models.StatusPending, donation.Status)
	assert.Nil(t, donation.VolunteerID)
	assert.Nil(t, donation.CollectedAt)
	assert.Nil(t, donation.DeliveredAt)
}

func TestAcceptAssignsVolunteerOnce(t *testing.T) {
	db := newTestDB(t)
	users := newTestUserStore(db)
	donations := NewDonationStore(db)

	donor := createUser(t, users, "donor1", models.RoleDonor)
	volunteer := createUser(t, users, "volunteer1", models.RoleVolunteer)
	donation := createPendingDonation(t, donations, donor.ID)

	accepted, err := donations.Accept(donation.ID, volunteer.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAssigned, accepted.Status)
	require.NotNil(t, accepted.VolunteerID)
	assert.Equal(t, volunteer.ID, *accepted.VolunteerID)
}

func TestAcceptTwiceFailsAlreadyAssigned(t *testing.T) {
	db := newTestDB(t)
	users := newTestUserStore(db)
	donations := NewDonationStore(db)

	donor := createUser(t, users, "donor1", models.RoleDonor)
	volunteer := createUser(t, users, "volunteer1", models.RoleVolunteer)
	other := createUser(t, users, "volunteer2", models.RoleVolunteer)
	donation := createPendingDonation(t, donations, donor.ID)

	_, err := donations.Accept(donation.ID, volunteer.ID)
	require.NoError(t, err)

	// Same volunteer and a different one both hit the same wall.
	_, err = donations.Accept(donation.ID, volunteer.ID)
	assert.ErrorIs(t, err, ErrAlreadyAssigned)
	_, err = donations.Accept(donation.ID, other.ID)
	assert.ErrorIs(t, err, ErrAlreadyAssigned)

	reloaded, err := donations.ByID(donation.ID)
	require.NoError(t, err)
	assert.Equal(t, volunteer.ID, *reloaded.VolunteerID)
}

func TestTransitionsOnMissingDonation(t *testing.T) {
	db := newTestDB(t)
	users := newTestUserStore(db)
	donations := NewDonationStore(db)

	volunteer := createUser(t, users, "volunteer1", models.RoleVolunteer)

	_, err := donations.Accept(404, volunteer.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = donations.Collect(404, volunteer.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = donations.Deliver(404, volunteer.ID, DeliveryInput{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCollectByWrongVolunteerFailsNotOwner(t *testing.T) {
	db := newTestDB(t)
	users := newTestUserStore(db)
	donations := NewDonationStore(db)

	donor := createUser(t, users, "donor1", models.RoleDonor)
	volunteer := createUser(t, users, "volunteer1", models.RoleVolunteer)
	other := createUser(t, users, "volunteer2", models.RoleVolunteer)
	donation := createPendingDonation(t, donations, donor.ID)

	_, err := donations.Accept(donation.ID, volunteer.ID)
	require.NoError(t, err)

	_, err = donations.Collect(donation.ID, other.ID)
	assert.ErrorIs(t, err, ErrNotOwner)

	// Still assigned, untouched.
	reloaded, err := donations.ByID(donation.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAssigned, reloaded.Status)
}

func TestCollectBeforeAcceptFailsNotOwner(t *testing.T) {
	db := newTestDB(t)
	users := newTestUserStore(db)
	donations := NewDonationStore(db)

	donor := createUser(t, users, "donor1", models.RoleDonor)
	volunteer := createUser(t, users, "volunteer1", models.RoleVolunteer)
	donation := createPendingDonation(t, donations, donor.ID)

	// Nobody is assigned yet, so the caller cannot be the owner.
	_, err := donations.Collect(donation.ID, volunteer.ID)
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestDeliverBeforeCollectFailsInvalidStatus(t *testing.T) {
	db := newTestDB(t)
	users := newTestUserStore(db)
	donations := NewDonationStore(db)

	donor := createUser(t, users, "donor1", models.RoleDonor)
	volunteer := createUser(t, users, "volunteer1", models.RoleVolunteer)
	donation := createPendingDonation(t, donations, donor.ID)

	_, err := donations.Accept(donation.ID, volunteer.ID)
	require.NoError(t, err)

	_, err = donations.Deliver(donation.ID, volunteer.ID, DeliveryInput{RecipientName: "Shelter"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestFullLifecycleMovesForwardOnly(t *testing.T) {
	db := newTestDB(t)
	users := newTestUserStore(db)
	donations := NewDonationStore(db)

	donor := createUser(t, users, "donor1", models.RoleDonor)
	volunteer := createUser(t, users, "volunteer1", models.RoleVolunteer)
	donation := createPendingDonation(t, donations, donor.ID)

	_, err := donations.Accept(donation.ID, volunteer.ID)
	require.NoError(t, err)

	collected, err := donations.Collect(donation.ID, volunteer.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCollected, collected.Status)
	require.NotNil(t, collected.CollectedAt)

	delivered, err := donations.Deliver(donation.ID, volunteer.ID, DeliveryInput{
		RecipientName:    "Hope Foundation",
		RecipientContact: "9876500001",
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusDelivered, delivered.Status)
	require.NotNil(t, delivered.DeliveredAt)
	assert.Equal(t, "Hope Foundation", delivered.RecipientName)

	// No transition can move the record backwards or repeat.
	_, err = donations.Accept(donation.ID, volunteer.ID)
	assert.ErrorIs(t, err, ErrAlreadyAssigned)
	_, err = donations.Collect(donation.ID, volunteer.ID)
	assert.ErrorIs(t, err, ErrInvalidStatus)
	_, err = donations.Deliver(donation.ID, volunteer.ID, DeliveryInput{})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	final, err := donations.ByID(donation.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDelivered, final.Status)
}

func TestListingsSortedMostRecentFirst(t *testing.T) {
	db := newTestDB(t)
	users := newTestUserStore(db)
	donations := NewDonationStore(db)

	donor := createUser(t, users, "donor1", models.RoleDonor)

	older := models.Donation{DonorID: donor.ID, Category: "Books", Description: "textbooks", Status: models.StatusPending}
	older.CreatedAt = time.Now().AddDate(0, 0, -5)
	newer := models.Donation{DonorID: donor.ID, Category: "Food", Description: "fruit", Status: models.StatusPending}
	newer.CreatedAt = time.Now().AddDate(0, 0, -1)
	require.NoError(t, db.Create(&older).Error)
	require.NoError(t, db.Create(&newer).Error)

	byDonor, err := donations.ByDonor(donor.ID)
	require.NoError(t, err)
	require.Len(t, byDonor, 2)
	assert.Equal(t, "Food", byDonor[0].Category)
	assert.Equal(t, "Books", byDonor[1].Category)

	all, err := donations.All()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Food", all[0].Category)
}

func TestDeliveredCountFollowsRole(t *testing.T) {
	db := newTestDB(t)
	users := newTestUserStore(db)
	donations := NewDonationStore(db)

	donor := createUser(t, users, "donor1", models.RoleDonor)
	volunteer := createUser(t, users, "volunteer1", models.RoleVolunteer)
	admin := createUser(t, users, "admin", models.RoleAdmin)

	for i := 0; i < 3; i++ {
		donation := createPendingDonation(t, donations, donor.ID)
		_, err := donations.Accept(donation.ID, volunteer.ID)
		require.NoError(t, err)
		_, err = donations.Collect(donation.ID, volunteer.ID)
		require.NoError(t, err)
		_, err = donations.Deliver(donation.ID, volunteer.ID, DeliveryInput{RecipientName: "Shelter"})
		require.NoError(t, err)
	}
	createPendingDonation(t, donations, donor.ID) // still pending, not counted

	donorCount, err := donations.DeliveredCountFor(donor)
	require.NoError(t, err)
	assert.EqualValues(t, 3, donorCount)

	volunteerCount, err := donations.DeliveredCountFor(volunteer)
	require.NoError(t, err)
	assert.EqualValues(t, 3, volunteerCount)

	adminCount, err := donations.DeliveredCountFor(admin)
	require.NoError(t, err)
	assert.EqualValues(t, 0, adminCount)
}

func TestPendingListsOnlyPending(t *testing.T) {
	db := newTestDB(t)
	users := newTestUserStore(db)
	donations := NewDonationStore(db)

	donor := createUser(t, users, "donor1", models.RoleDonor)
	volunteer := createUser(t, users, "volunteer1", models.RoleVolunteer)

	pending := createPendingDonation(t, donations, donor.ID)
	assigned := createPendingDonation(t, donations, donor.ID)
	_, err := donations.Accept(assigned.ID, volunteer.ID)
	require.NoError(t, err)

	list, err := donations.Pending()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, pending.ID, list[0].ID)
}
