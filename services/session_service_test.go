package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Paintedstork28/fitness-tracker/models"
)

func seedSession(t *testing.T, slots SlotStore, loginTime time.Time) {
	t.Helper()
	raw, err := json.Marshal(models.SessionRecord{
		Name:      "Jordan Smith",
		Picture:   "https://cdn.example.com/avatars/jordan.png",
		LoginTime: loginTime,
	})
	require.NoError(t, err)
	require.NoError(t, slots.Set(UserSlot, string(raw)))
	require.NoError(t, slots.Set(TokenSlot, "opaque-token"))
}

func TestCurrentWithFreshSession(t *testing.T) {
	slots := NewMemorySlotStore()
	seedSession(t, slots, time.Now().Add(-2*time.Hour))

	user, err := NewSessionService(slots).Current()
	require.NoError(t, err)
	assert.Equal(t, "Jordan Smith", user.Name)
	assert.Equal(t, "Jordan", user.FirstName())
}

func TestCurrentMissingSlots(t *testing.T) {
	svc := NewSessionService(NewMemorySlotStore())

	_, err := svc.Current()
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestCurrentMissingTokenOnly(t *testing.T) {
	slots := NewMemorySlotStore()
	seedSession(t, slots, time.Now())
	require.NoError(t, slots.Delete(TokenSlot))

	_, err := NewSessionService(slots).Current()
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestCurrentExpiredSessionLogsOut(t *testing.T) {
	slots := NewMemorySlotStore()
	seedSession(t, slots, time.Now().Add(-25*time.Hour))

	_, err := NewSessionService(slots).Current()
	assert.ErrorIs(t, err, ErrSessionExpired)

	// logout cleared both slots
	_, ok, _ := slots.Get(UserSlot)
	assert.False(t, ok)
	_, ok, _ = slots.Get(TokenSlot)
	assert.False(t, ok)
}

func TestCurrentExactlyAtMaxAgeStillValid(t *testing.T) {
	slots := NewMemorySlotStore()
	loginTime := time.Now()
	seedSession(t, slots, loginTime)

	svc := NewSessionService(slots)
	svc.now = func() time.Time { return loginTime.Add(models.SessionMaxAge) }

	_, err := svc.Current()
	assert.NoError(t, err)
}

func TestCurrentMalformedRecordLogsOut(t *testing.T) {
	slots := NewMemorySlotStore()
	require.NoError(t, slots.Set(UserSlot, "not a session record"))
	require.NoError(t, slots.Set(TokenSlot, "opaque-token"))

	_, err := NewSessionService(slots).Current()
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	_, ok, _ := slots.Get(TokenSlot)
	assert.False(t, ok)
}

func TestStartSessionRoundTrip(t *testing.T) {
	slots := NewMemorySlotStore()
	svc := NewSessionService(slots)

	require.NoError(t, svc.StartSession(models.SessionRecord{
		Name:      "Demo User",
		LoginTime: time.Now(),
	}, "minted-token"))

	user, err := svc.Current()
	require.NoError(t, err)
	assert.Equal(t, "Demo User", user.Name)
}
