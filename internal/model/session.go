package model

import (
	"time"
)

// A Session represents a database record.
type Session struct {
	Base `storm:"inline"`

	ExpireAt  time.Time `json:"expire_at"  storm:"index"`
	UserID    string    `json:"user_id"    storm:"index"`
	UserAgent string    `json:"user_agent"`
	Token     string    `json:"token"      storm:"unique"`
}

// Expired returns true if the session is expired at the given time.
func (s *Session) Expired(t time.Time) bool {
	return !t.Before(s.ExpireAt)
}
