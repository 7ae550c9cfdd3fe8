package wire

import (
	"carparts-store/internal/adaptor"
	"carparts-store/pkg/auth"
	"carparts-store/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	tokens *auth.TokenManager,
	log *zap.Logger,
) {
	// GET /api/reviews - List reviews (public)
	r.Get("/api/reviews", reviewHandler.GetReviews)

	// POST /api/reviews - Create a review (authenticated users only)
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(tokens, log))
		r.Post("/api/reviews", reviewHandler.CreateReview)
	})
}
