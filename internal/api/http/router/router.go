package router

import (
	"net/http"

	"github.com/lmarques/auth-server/internal/api/http/handler"
	"github.com/lmarques/auth-server/internal/api/http/middleware"
	"github.com/lmarques/auth-server/internal/logger"
	"github.com/lmarques/auth-server/internal/model"
	"github.com/lmarques/auth-server/internal/service"
)

// Router wires handlers and middleware into an HTTP handler.
type Router struct {
	authService    *service.Auth
	userService    *service.User
	tokens         model.TokenManager
	cache          model.TokenCache
	contextManager model.ContextManager
	logger         *logger.Logger
}

// New creates a new Router instance.
func New(
	authService *service.Auth,
	userService *service.User,
	tokens model.TokenManager,
	cache model.TokenCache,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		userService:    userService,
		tokens:         tokens,
		cache:          cache,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register sets up all routes and middleware and returns the root handler.
// Registration and login are public; everything else requires a valid access
// token.
func (r *Router) Register() http.Handler {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokens, r.cache, r.contextManager, r.logger)

	authHandler := handler.NewAuth(r.authService, r.tokens, r.logger)
	userHandler := handler.NewUser(r.userService, r.contextManager, r.logger)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/register", authHandler.Register)
	mux.HandleFunc("POST /auth/login", authHandler.Login)
	mux.Handle("GET /user", authenticate.Handle(http.HandlerFunc(userHandler.Get)))

	return logging.Handle(mux)
}
