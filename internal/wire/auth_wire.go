package wire

import (
	"carparts-store/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// POST /api/session-token - Upsert user and issue a session token (public)
	r.Post("/api/session-token", authHandler.Login)
}
