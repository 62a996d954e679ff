package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/lmarques/auth-server/internal/logger"
	"github.com/lmarques/auth-server/internal/model"
)

// Auth implements registration and the credential-verification plus
// dual-token issuance flow.
type Auth struct {
	users  model.UserStore
	hasher model.PasswordHasher
	tokens model.TokenManager
	cache  model.TokenCache
	logger *logger.Logger
}

func NewAuth(
	users model.UserStore,
	hasher model.PasswordHasher,
	tokens model.TokenManager,
	cache model.TokenCache,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		cache:  cache,
		logger: logger,
	}
}

// Register creates a new user with a hashed password. The email pre-check
// and the store's unique index both report ErrDuplicateEmail; the index is
// the final arbiter when a concurrent registration races past the pre-check.
func (a *Auth) Register(ctx context.Context, username, email, password string) (model.User, error) {
	a.logger.Debug("Auth service: starting user registration",
		"email", email)

	_, err := a.users.GetByEmail(ctx, email)
	if err == nil {
		a.logger.Info("Auth service: email already registered",
			"email", email)
		return model.User{}, model.ErrDuplicateEmail
	}
	if !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	hashed, err := a.hasher.Hash(password)
	if err != nil {
		a.logger.Error("Auth service: failed to hash password",
			"email", email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := model.User{
		ID:        uuid.New(),
		Username:  username,
		Email:     email,
		Password:  hashed,
		CreatedAt: time.Now(),
	}

	created, err := a.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, model.ErrDuplicateEmail) {
			a.logger.Info("Auth service: email taken at creation time",
				"email", email)
			return model.User{}, model.ErrDuplicateEmail
		}
		a.logger.Error("Auth service: failed to create user",
			"email", email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: user registered",
		"email", email,
		"user_id", created.ID)

	return created, nil
}

// Login verifies credentials, signs both token classes concurrently, and
// records both in the cache concurrently. Either the full pair is issued
// and recorded, or the call errors; no partial outcome reaches the caller.
func (a *Auth) Login(ctx context.Context, email, password string) (model.TokenPair, error) {
	a.logger.Debug("Auth service: starting login",
		"email", email)

	user, err := a.ValidateCredentials(ctx, email, password)
	if err != nil {
		return model.TokenPair{}, err
	}

	claims := model.TokenClaims{UserID: user.ID, Email: user.Email}

	var pair model.TokenPair
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		token, err := a.tokens.Sign(model.TokenAccess, claims)
		if err != nil {
			return fmt.Errorf("sign access token: %w", err)
		}
		pair.AccessToken = token
		return nil
	})
	g.Go(func() error {
		token, err := a.tokens.Sign(model.TokenRefresh, claims)
		if err != nil {
			return fmt.Errorf("sign refresh token: %w", err)
		}
		pair.RefreshToken = token
		return nil
	})
	if err := g.Wait(); err != nil {
		a.logger.Error("Auth service: token signing failed",
			"email", email,
			"user_id", user.ID,
			"error", err.Error())
		return model.TokenPair{}, fmt.Errorf("%w: %v", model.ErrTokenIssuance, err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		key := model.TokenCacheKey(model.TokenAccess, user.ID)
		return a.cache.Set(gctx, key, pair.AccessToken, a.tokens.Lifetime(model.TokenAccess))
	})
	g.Go(func() error {
		key := model.TokenCacheKey(model.TokenRefresh, user.ID)
		return a.cache.Set(gctx, key, pair.RefreshToken, a.tokens.Lifetime(model.TokenRefresh))
	})
	if err := g.Wait(); err != nil {
		a.logger.Error("Auth service: token cache write failed",
			"email", email,
			"user_id", user.ID,
			"error", err.Error())
		return model.TokenPair{}, fmt.Errorf("%w: %v", model.ErrTokenCache, err)
	}

	a.logger.Info("Auth service: login completed",
		"email", email,
		"user_id", user.ID)

	return pair, nil
}

// ValidateCredentials looks the user up by email and verifies the password.
// Both failure causes collapse to ErrInvalidCredentials; the log line keeps
// the distinction for diagnosis.
func (a *Auth) ValidateCredentials(ctx context.Context, email, password string) (model.User, error) {
	user, err := a.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			a.logger.Info("Auth service: email not registered",
				"email", email)
			return model.User{}, fmt.Errorf("email not registered: %w", model.ErrInvalidCredentials)
		}
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	ok, err := a.hasher.Compare(password, user.Password)
	if err != nil {
		a.logger.Error("Auth service: failed to verify password",
			"email", email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		a.logger.Info("Auth service: wrong password",
			"email", email)
		return model.User{}, fmt.Errorf("wrong password: %w", model.ErrInvalidCredentials)
	}

	return user, nil
}
