package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceSymmetric(t *testing.T) {
	d1 := Distance(19.1136, 72.8697, 19.0596, 72.8295)
	d2 := Distance(19.0596, 72.8295, 19.1136, 72.8697)
	assert.Equal(t, d1, d2)
}

func TestDistanceZeroAtIdentity(t *testing.T) {
	assert.Zero(t, Distance(19.1136, 72.8697, 19.1136, 72.8697))
}

func TestDistanceKnownValues(t *testing.T) {
	// Andheri to Bandra, Mumbai.
	assert.InDelta(t, 7.34, Distance(19.1136, 72.8697, 19.0596, 72.8295), 0.01)
	// Andheri to Dadar.
	assert.InDelta(t, 10.90, Distance(19.1136, 72.8697, 19.0178, 72.8478), 0.01)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 7.34, Round2(7.341595))
	assert.Equal(t, 7.35, Round2(7.346))
	assert.Equal(t, 0.0, Round2(0))
}
