package middleware

import (
	"net/http"
	"strings"

	"carparts-store/internal/data/repository"
	"carparts-store/pkg/auth"
	"carparts-store/pkg/utils"

	"go.uber.org/zap"
)

// Auth validates the bearer token and puts the asserted email into the
// request context. A missing credential and an invalid one are distinct
// outcomes: no Authorization header is 401, a bad or expired token is 403.
func Auth(tokens *auth.TokenManager, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseForbidden(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			email, err := tokens.Verify(parts[1])
			if err != nil {
				logger.Warn("Invalid or expired token",
					zap.String("path", r.URL.Path),
					zap.Error(err))
				utils.ResponseForbidden(w, "Invalid or expired token")
				return
			}

			ctx := utils.SetEmailContext(r.Context(), email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Admin checks that the authenticated email belongs to an admin account.
// An email with no stored user record is simply not an admin, never a
// server fault.
func Admin(userRepo repository.UserRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email, ok := utils.GetEmailFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			user, err := userRepo.FindByEmail(r.Context(), email)
			if err != nil {
				logger.Error("Admin check: failed to get user",
					zap.Error(err), zap.String("email", email))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if !user.IsAdmin() {
				logger.Warn("Admin check: non-admin access attempt",
					zap.String("email", email),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
