package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/lmarques/auth-server/internal/model"
)

// Claims represents JWT claims carried by both token classes. The user ID
// travels in the registered "sub" claim.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// Params configures the JWT manager. Secrets and lifetimes are per class.
type Params struct {
	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

// JWT implements TokenManager backed by symmetric HMAC, one secret per
// token class. The time source is injectable for tests.
type JWT struct {
	secrets   map[model.TokenClass][]byte
	lifetimes map[model.TokenClass]time.Duration
	now       func() time.Time
}

var _ model.TokenManager = (*JWT)(nil)

// NewJWT creates a JWT token manager. An empty secret or non-positive
// lifetime is a configuration error.
func NewJWT(p Params) (*JWT, error) {
	if p.AccessSecret == "" {
		return nil, errors.New("access token secret is empty")
	}
	if p.RefreshSecret == "" {
		return nil, errors.New("refresh token secret is empty")
	}
	if p.AccessTTL <= 0 || p.RefreshTTL <= 0 {
		return nil, errors.New("token lifetime must be positive")
	}

	return &JWT{
		secrets: map[model.TokenClass][]byte{
			model.TokenAccess:  []byte(p.AccessSecret),
			model.TokenRefresh: []byte(p.RefreshSecret),
		},
		lifetimes: map[model.TokenClass]time.Duration{
			model.TokenAccess:  p.AccessTTL,
			model.TokenRefresh: p.RefreshTTL,
		},
		now: time.Now,
	}, nil
}

// WithNow replaces the time source. Test use only.
func (j *JWT) WithNow(now func() time.Time) *JWT {
	j.now = now
	return j
}

// Sign produces a signed token of the given class embedding claims, expiring
// at now + class lifetime.
func (j *JWT) Sign(class model.TokenClass, claims model.TokenClaims) (string, error) {
	secret, ok := j.secrets[class]
	if !ok {
		return "", fmt.Errorf("unknown token class: %s", class)
	}

	now := j.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.lifetimes[class])),
		},
		Email: claims.Email,
	})

	tokenString, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", class, err)
	}

	return tokenString, nil
}

// Parse validates a token of the given class and extracts its claims. A
// token signed with the other class's secret does not validate.
func (j *JWT) Parse(class model.TokenClass, tokenString string) (model.TokenClaims, error) {
	secret, ok := j.secrets[class]
	if !ok {
		return model.TokenClaims{}, fmt.Errorf("unknown token class: %s", class)
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return secret, nil
	}, jwt.WithTimeFunc(j.now))
	if err != nil {
		return model.TokenClaims{}, fmt.Errorf("failed to parse %s token: %w", class, err)
	}
	if !token.Valid {
		return model.TokenClaims{}, fmt.Errorf("%s token is invalid", class)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return model.TokenClaims{}, fmt.Errorf("failed to parse subject claim: %w", err)
	}

	return model.TokenClaims{UserID: userID, Email: claims.Email}, nil
}

// Lifetime returns the configured lifetime for a token class.
func (j *JWT) Lifetime(class model.TokenClass) time.Duration {
	return j.lifetimes[class]
}
