package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/lmarques/auth-server/internal/logger"
	"github.com/lmarques/auth-server/internal/model"
)

// Authenticate validates access tokens and injects the user ID into the
// request context. The presented token must still match the cached entry for
// the user, so a login on another client invalidates older tokens.
type Authenticate struct {
	tokens         model.TokenManager
	cache          model.TokenCache
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(
	tokens model.TokenManager,
	cache model.TokenCache,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Authenticate {
	return &Authenticate{
		tokens:         tokens,
		cache:          cache,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Handle wraps next with access token validation.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := extractToken(r)
		if tokenString == "" {
			m.unauthorized(w, "missing authorization token")
			return
		}

		claims, err := m.tokens.Parse(model.TokenAccess, tokenString)
		if err != nil {
			m.logger.Info("authentication failed: invalid token", "error", err.Error())
			m.unauthorized(w, "invalid authorization token")
			return
		}

		cached, err := m.cache.Get(r.Context(), model.TokenCacheKey(model.TokenAccess, claims.UserID))
		if err != nil {
			if !errors.Is(err, model.ErrNotFound) {
				m.logger.Error("authentication failed: cache lookup", "error", err.Error())
			}
			m.unauthorized(w, "invalid authorization token")
			return
		}
		if cached != tokenString {
			m.logger.Info("authentication failed: token superseded", "user_id", claims.UserID)
			m.unauthorized(w, "invalid authorization token")
			return
		}

		ctx := m.contextManager.SetUserIDToContext(r.Context(), claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Authenticate) unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"code":    http.StatusUnauthorized,
		"status":  http.StatusText(http.StatusUnauthorized),
		"message": message,
	})
}

func extractToken(r *http.Request) string {
	if auth := r.Header.Get("Authorization"); auth != "" {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	if c, err := r.Cookie("access_token"); err == nil {
		return c.Value
	}
	return ""
}
