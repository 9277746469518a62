package models

import "time"

// SessionMaxAge is how long a login stays valid before the gate treats the
// session as absent.
const SessionMaxAge = 24 * time.Hour

// SessionRecord mirrors what the external login flow stores. This service
// only reads it; it never writes one outside the dev seeder.
type SessionRecord struct {
	Name      string    `json:"name"`
	Picture   string    `json:"picture"` // avatar URL
	LoginTime time.Time `json:"loginTime"`
}

// Expired reports whether more than SessionMaxAge has passed since login.
func (s SessionRecord) Expired(now time.Time) bool {
	return now.Sub(s.LoginTime) > SessionMaxAge
}

// FirstName is the leading word of the display name, used for the
// dashboard welcome message.
func (s SessionRecord) FirstName() string {
	for i, r := range s.Name {
		if r == ' ' {
			return s.Name[:i]
		}
	}
	return s.Name
}
