// Package session caches the current user's session in a single local slot.
// Presence of a cached session is used as a sign-in shortcut; it is not
// cryptographically re-verified on load.
package session

import "time"

// Session is the locally cached record of the signed-in user.
type Session struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Token     string    `json:"token,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Store is the single-slot local session cache. At most one session is
// cached at a time; Save overwrites any prior value. Failures are logged
// by implementations and never surfaced, matching the best-effort contract
// of a device-local cache.
type Store interface {
	Save(s *Session)
	Load() *Session
	Clear()
}
