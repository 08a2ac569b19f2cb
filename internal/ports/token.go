package ports

import "time"

// Claims are the user attributes carried by a bearer token
type Claims struct {
	Subject      string
	Username     string
	Plan         string
	PrefsSaved   bool
	AIOutfitUses int
	AITravelUses int
	ExpiresAt    time.Time
}

// TokenDecoder turns a bearer token into claims. It must fail closed: any
// malformed, incomplete or expired token is an error.
type TokenDecoder interface {
	Decode(token string, now time.Time) (*Claims, error)
}
