package store

import (
	"errors"
	"log"

	"socialmentor/models"
)

// Action is a point-earning event kind.
type Action string

const (
	ActionDonation         Action = "donation"
	ActionVolunteerCollect Action = "volunteer_collect"
	ActionVolunteerDeliver Action = "volunteer_deliver"
	ActionFirstDonation    Action = "first_donation"
)

var actionPoints = map[Action]uint{
	ActionDonation:         10,
	ActionVolunteerCollect: 15,
	ActionVolunteerDeliver: 20,
	ActionFirstDonation:    50,
}

// certTiers is walked from the highest threshold down; the first qualifying
// tier the user does not yet hold is issued, and only that one.
var certTiers = []struct {
	Threshold int64
	Type      models.CertificateType
}{
	{100, models.CertPlatinum},
	{50, models.CertGold},
	{20, models.CertSilver},
	{5, models.CertBronze},
}

// RewardsEngine awards points for qualifying actions and issues tier
// certificates. Rewards are a best-effort side effect of an action that
// already succeeded, so AwardPoints never fails: a missing user or a storage
// hiccup is logged and swallowed rather than invalidating the primary
// transaction.
type RewardsEngine struct {
	users        *UserStore
	donations    *DonationStore
	certificates *CertificateStore
}

func NewRewardsEngine(users *UserStore, donations *DonationStore, certificates *CertificateStore) *RewardsEngine {
	return &RewardsEngine{
		users:        users,
		donations:    donations,
		certificates: certificates,
	}
}

// AwardPoints adds the fixed point value for an action to the user's total
// and then re-evaluates certificate eligibility. Unknown users and unknown
// actions are silent no-ops.
func (e *RewardsEngine) AwardPoints(userID uint, action Action) {
	user, err := e.users.FindByID(userID)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("rewards: lookup of user %d failed: %v", userID, err)
		}
		return
	}

	if points, ok := actionPoints[action]; ok {
		if err := e.users.AddPoints(user.ID, points); err != nil {
			log.Printf("rewards: awarding %d points to user %d failed: %v", points, user.ID, err)
		}
	}

	e.checkCertificateEligibility(user)
}

// checkCertificateEligibility counts the user's delivered donations (as donor
// or as volunteer depending on role; admins are never evaluated) and issues
// the single highest tier the count qualifies for that the user does not
// already hold. One certificate per evaluation at most, even when a count
// jumps several thresholds at once; lower tiers are not backfilled.
func (e *RewardsEngine) checkCertificateEligibility(user *models.User) {
	if user.Role == models.RoleAdmin {
		return
	}

	count, err := e.donations.DeliveredCountFor(user)
	if err != nil {
		log.Printf("rewards: delivered count for user %d failed: %v", user.ID, err)
		return
	}

	for _, tier := range certTiers {
		if count < tier.Threshold {
			continue
		}
		held, err := e.certificates.Exists(user.ID, tier.Type)
		if err != nil {
			log.Printf("rewards: certificate lookup for user %d failed: %v", user.ID, err)
			return
		}
		if !held {
			if _, err := e.certificates.Issue(user.ID, tier.Type, int(count)); err != nil {
				log.Printf("rewards: issuing %s certificate to user %d failed: %v", tier.Type, user.ID, err)
			}
		}
		break
	}
}
