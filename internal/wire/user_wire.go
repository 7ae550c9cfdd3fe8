package wire

import (
	"carparts-store/internal/adaptor"
	"carparts-store/internal/data/repository"
	"carparts-store/pkg/auth"
	"carparts-store/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	tokens *auth.TokenManager,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/admin/{email} - Check whether an email is an admin (public)
	r.Get("/api/admin/{email}", userHandler.CheckAdmin)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(tokens, log))
		r.Use(middleware.Admin(repo.User, log))

		// GET /api/users - List all users (admin)
		r.Get("/api/users", userHandler.GetAllUsers)

		// PUT /api/user/admin/{email} - Grant admin role (admin)
		r.Put("/api/user/admin/{email}", userHandler.PromoteToAdmin)
	})
}
