package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/lmarques/auth-server/internal/logger"
	"github.com/lmarques/auth-server/internal/model"
)

// UserService defines user lookup operations.
type UserService interface {
	GetByID(ctx context.Context, id uuid.UUID) (model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
}

// User handles HTTP endpoints for user lookups.
type User struct {
	userService    UserService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(userService UserService, contextManager model.ContextManager, logger *logger.Logger) *User {
	return &User{
		userService:    userService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type userResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Get looks a user up by the id or email query parameter. Without either it
// returns the authenticated user.
func (h *User) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var (
		user model.User
		err  error
	)

	switch {
	case r.URL.Query().Get("id") != "":
		var id uuid.UUID
		id, err = uuid.Parse(r.URL.Query().Get("id"))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, "invalid user id", nil)
			return
		}
		user, err = h.userService.GetByID(ctx, id)
	case r.URL.Query().Get("email") != "":
		user, err = h.userService.GetByEmail(ctx, r.URL.Query().Get("email"))
	default:
		userID, ok := h.contextManager.GetUserIDFromContext(ctx)
		if !ok {
			writeJSON(w, http.StatusUnauthorized, "missing authorization", nil)
			return
		}
		user, err = h.userService.GetByID(ctx, userID)
	}

	if err != nil {
		h.logger.Error("User handler: lookup failed", "error", err.Error())
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, "", userResponse{
		ID:        user.ID.String(),
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	})
}
