package authdomain

import "time"

// Claims is the identity carried by a bearer token.
type Claims struct {
	UserID      string
	Email       string
	DisplayName string
	ExpiresAt   time.Time
	IssuedAt    time.Time
}

// IsExpired checks if the claims have expired.
func (c *Claims) IsExpired() bool {
	return time.Now().After(c.ExpiresAt)
}
