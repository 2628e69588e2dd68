package domain

import "time"

// Identity is the anonymous, client-held voter identity.
type Identity struct {
	Token     string    `json:"token"`
	Issued    bool      `json:"issued"`
	ExpiresAt time.Time `json:"expires_at"`
}
