package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	JWTSecret         string = "EvProblemTracker"
	JWTExpirationTime        = time.Hour * 24 * 7
)

// UserClaims carries the authenticated user identity inside the token.
type UserClaims struct {
	UserID   uint64 `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
