package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/lmarques/auth-server/internal/logger"
	"github.com/lmarques/auth-server/internal/model"
)

// AuthService defines user registration and login operations.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (model.User, error)
	Login(ctx context.Context, email, password string) (model.TokenPair, error)
}

// Auth handles HTTP endpoints for registration and login.
type Auth struct {
	authService AuthService
	tokens      model.TokenManager
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, tokens model.TokenManager, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		tokens:      tokens,
		logger:      logger,
	}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Register creates a new user account.
func (h *Auth) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, "username, email and password are required", nil)
		return
	}

	user, err := h.authService.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		h.logger.Error("Auth handler: registration failed",
			"email", req.Email,
			"error", err.Error())
		writeError(w, err)
		return
	}

	h.logger.Info("Auth handler: user registered",
		"user_id", user.ID,
		"email", user.Email)

	writeJSON(w, http.StatusCreated, "user registered", registerResponse{
		ID:        user.ID.String(),
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	})
}

// Login authenticates credentials and issues the token pair. Tokens are
// returned in the body and mirrored as cookies with max-age matching the
// token lifetimes.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if req.Email == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, "email and password are required", nil)
		return
	}

	pair, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Error("Auth handler: login failed",
			"email", req.Email,
			"error", err.Error())
		writeError(w, err)
		return
	}

	h.setTokenCookie(w, "access_token", pair.AccessToken, h.tokens.Lifetime(model.TokenAccess))
	h.setTokenCookie(w, "refresh_token", pair.RefreshToken, h.tokens.Lifetime(model.TokenRefresh))

	h.logger.Info("Auth handler: login completed", "email", req.Email)

	writeJSON(w, http.StatusOK, "login successful", loginResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

func (h *Auth) setTokenCookie(w http.ResponseWriter, name, value string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
