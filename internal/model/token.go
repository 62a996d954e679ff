package model

import (
	"time"

	"github.com/google/uuid"
)

// TokenClass distinguishes the two token kinds issued per login. Each class
// is signed with its own secret and carries its own lifetime.
type TokenClass string

const (
	TokenAccess  TokenClass = "access"
	TokenRefresh TokenClass = "refresh"
)

// TokenClaims is the identity payload embedded in a signed token. The same
// payload goes into both classes.
type TokenClaims struct {
	UserID uuid.UUID
	Email  string
}

// TokenManager signs and validates access/refresh tokens.
type TokenManager interface {
	Sign(class TokenClass, claims TokenClaims) (string, error)
	Parse(class TokenClass, token string) (TokenClaims, error)
	Lifetime(class TokenClass) time.Duration
}

// TokenPair bundles the short-lived access token and the long-lived refresh
// token returned by a successful login.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}
