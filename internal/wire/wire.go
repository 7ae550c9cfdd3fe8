package wire

import (
	"net/http"

	"carparts-store/internal/adaptor"
	"carparts-store/internal/data/repository"
	"carparts-store/internal/usecase"
	"carparts-store/pkg/auth"
	"carparts-store/pkg/cache"
	"carparts-store/pkg/metrics"
	"carparts-store/pkg/middleware"
	"carparts-store/pkg/payment"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring assembles services, handlers and routes.
func Wiring(
	repo *repository.Repository,
	tokens *auth.TokenManager,
	gateway payment.Gateway,
	store *cache.Cache,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, tokens, gateway, store, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, tokens, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	tokens *auth.TokenManager,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())
	r.Use(metrics.Middleware())

	// Routes
	wireAuth(r, handler.Auth)
	wireUser(r, handler.User, repo, tokens, logger)
	wireProduct(r, handler.Product, repo, tokens, logger)
	wireOrder(r, handler.Order, tokens, logger)
	wireReview(r, handler.Review, tokens, logger)
	wireProfile(r, handler.Profile, tokens, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", metrics.Handler())

	return r
}
