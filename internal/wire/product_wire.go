package wire

import (
	"carparts-store/internal/adaptor"
	"carparts-store/internal/data/repository"
	"carparts-store/pkg/auth"
	"carparts-store/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireProduct(
	r chi.Router,
	productHandler *adaptor.ProductHandler,
	repo *repository.Repository,
	tokens *auth.TokenManager,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/products - Catalog listing (public)
	r.Get("/api/products", productHandler.GetProducts)

	// GET /api/products/{id} - Single product (public)
	r.Get("/api/products/{id}", productHandler.GetProduct)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(tokens, log))
		r.Use(middleware.Admin(repo.User, log))

		// POST /api/products - Add a product (admin)
		r.Post("/api/products", productHandler.CreateProduct)

		// PUT /api/products/{id} - Decrement stock (admin)
		r.Put("/api/products/{id}", productHandler.UpdateStock)

		// DELETE /api/products/{id} - Remove a product (admin)
		r.Delete("/api/products/{id}", productHandler.DeleteProduct)
	})
}
