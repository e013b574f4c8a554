package domain

import "time"

// DeviceClaims is what a valid device token asserts.
type DeviceClaims struct {
	DeviceID  string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// NeedsRenewal reports whether the token is past half its lifetime at now.
// Reissuing such tokens on use lets an active device outlive any one token.
func (c DeviceClaims) NeedsRenewal(now time.Time) bool {
	lifetime := c.ExpiresAt.Sub(c.IssuedAt)
	if lifetime <= 0 {
		return true
	}
	return !now.Before(c.IssuedAt.Add(lifetime / 2))
}
