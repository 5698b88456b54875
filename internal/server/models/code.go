package models

import "time"

// VerificationCode is the latest one-time code issued for an identifier.
type VerificationCode struct {
	Identifier string
	Code       uint32
	// IssuedAt is always UTC.
	IssuedAt time.Time
}

// Expired reports whether more than validity has passed between IssuedAt and now.
func (c *VerificationCode) Expired(now time.Time, validity time.Duration) bool {
	return now.Sub(c.IssuedAt) > validity
}
