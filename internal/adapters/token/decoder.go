// Package token decodes the access tokens issued by the backend. The client
// never holds the signing key, so tokens are parsed without verification and
// only their expiry is checked; the backend stays the authority.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"guardianclima.app/internal/ports"
	"guardianclima.app/pkg/errors"
)

// accessClaims is the payload written by the backend on login and on every
// token rotation
type accessClaims struct {
	jwt.RegisteredClaims
	Username     string `json:"username"`
	Plan         string `json:"plan"`
	PrefsSaved   bool   `json:"prefs_saved"`
	AIOutfitUses int    `json:"ai_outfit_uses"`
	AITravelUses int    `json:"ai_travel_uses"`
}

// JWTDecoder implements ports.TokenDecoder
type JWTDecoder struct {
	parser *jwt.Parser
}

func NewJWTDecoder() *JWTDecoder {
	return &JWTDecoder{parser: jwt.NewParser()}
}

// Decode extracts the claims of a token. Any token that cannot be read, has
// no expiry or is expired at now is rejected.
func (d *JWTDecoder) Decode(token string, now time.Time) (*ports.Claims, error) {
	if token == "" {
		return nil, errors.NewTokenError("token is empty", nil)
	}

	claims := &accessClaims{}
	if _, _, err := d.parser.ParseUnverified(token, claims); err != nil {
		return nil, errors.NewTokenError("token is malformed", err)
	}

	if claims.ExpiresAt == nil {
		return nil, errors.NewTokenError("token has no expiry", nil)
	}
	expiresAt := claims.ExpiresAt.Time
	if !now.Before(expiresAt) {
		return nil, errors.NewTokenError("token is expired", jwt.ErrTokenExpired)
	}

	return &ports.Claims{
		Subject:      claims.Subject,
		Username:     claims.Username,
		Plan:         claims.Plan,
		PrefsSaved:   claims.PrefsSaved,
		AIOutfitUses: claims.AIOutfitUses,
		AITravelUses: claims.AITravelUses,
		ExpiresAt:    expiresAt,
	}, nil
}
