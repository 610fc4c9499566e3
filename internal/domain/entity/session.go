package entity

import "time"

// Session represents one authenticated device context: the pair of tokens
// currently issued to a (user, user agent) combination. Sessions are never
// physically removed; ending one flips IsActive off.
type Session struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	UserAgent    string    `json:"useragent"`
	AccessToken  string    `json:"jwt"`
	RefreshToken string    `json:"refresh_token"`
	IsActive     bool      `json:"is_active"`
	LastActivity time.Time `json:"last_activity"`
}

// SessionInfo is a token-free view of a session, safe to list back to users
// reviewing their active devices.
type SessionInfo struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	UserAgent    string    `json:"useragent"`
	IsActive     bool      `json:"is_active"`
	LastActivity time.Time `json:"last_activity"`
}

// Info strips token material from the session.
func (s *Session) Info() *SessionInfo {
	return &SessionInfo{
		ID:           s.ID,
		UserID:       s.UserID,
		UserAgent:    s.UserAgent,
		IsActive:     s.IsActive,
		LastActivity: s.LastActivity,
	}
}
