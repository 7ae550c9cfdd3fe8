package wire

import (
	"carparts-store/internal/adaptor"
	"carparts-store/pkg/auth"
	"carparts-store/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireProfile(
	r chi.Router,
	profileHandler *adaptor.ProfileHandler,
	tokens *auth.TokenManager,
	log *zap.Logger,
) {
	// GET /api/support - Support contact entries (public)
	r.Get("/api/support", profileHandler.GetSupportMessages)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(tokens, log))

		// GET /api/myprofile - The caller's profile
		r.Get("/api/myprofile", profileHandler.GetProfile)

		// POST /api/myprofile - Create or update the caller's profile
		r.Post("/api/myprofile", profileHandler.UpsertProfile)
	})
}
