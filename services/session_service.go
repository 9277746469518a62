package services

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/Paintedstork28/fitness-tracker/models"
)

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrSessionExpired   = errors.New("session expired")
)

// SessionService is a presence gate over the session slots, not an
// authentication mechanism: it never verifies the token, it only checks
// that the external login flow stored one and that the login is still
// fresh. Anything with slot access can satisfy it.
type SessionService struct {
	slots SlotStore
	now   func() time.Time
}

func NewSessionService(slots SlotStore) *SessionService {
	return &SessionService{slots: slots, now: time.Now}
}

// Current returns the logged-in user's session record. A missing record
// or token reports ErrNotAuthenticated. A record that fails to parse is
// cleared and reports ErrNotAuthenticated; one older than
// models.SessionMaxAge is cleared and reports ErrSessionExpired. Either
// way the caller redirects to the login view.
func (s *SessionService) Current() (models.SessionRecord, error) {
	userJSON, haveUser, err := s.slots.Get(UserSlot)
	if err != nil {
		return models.SessionRecord{}, err
	}
	token, haveToken, err := s.slots.Get(TokenSlot)
	if err != nil {
		return models.SessionRecord{}, err
	}
	if !haveUser || !haveToken || token == "" {
		return models.SessionRecord{}, ErrNotAuthenticated
	}

	var user models.SessionRecord
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		_ = s.Logout()
		return models.SessionRecord{}, ErrNotAuthenticated
	}

	if user.Expired(s.now()) {
		_ = s.Logout()
		return models.SessionRecord{}, ErrSessionExpired
	}

	return user, nil
}

// Logout clears both session slots.
func (s *SessionService) Logout() error {
	if err := s.slots.Delete(UserSlot); err != nil {
		return err
	}
	return s.slots.Delete(TokenSlot)
}

// StartSession stores a session record and token the way the external
// login flow would. Only the dev seeder calls this.
func (s *SessionService) StartSession(user models.SessionRecord, token string) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := s.slots.Set(UserSlot, string(raw)); err != nil {
		return err
	}
	return s.slots.Set(TokenSlot, token)
}
