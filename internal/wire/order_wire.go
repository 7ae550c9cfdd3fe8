package wire

import (
	"carparts-store/internal/adaptor"
	"carparts-store/pkg/auth"
	"carparts-store/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireOrder(
	r chi.Router,
	orderHandler *adaptor.OrderHandler,
	tokens *auth.TokenManager,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/orders/{id} - Order status by id, e.g. for a receipt page (public)
	r.Get("/api/orders/{id}", orderHandler.GetOrder)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(tokens, log))

		// POST /api/payment-intents - Authorize an amount with the processor
		r.Post("/api/payment-intents", orderHandler.CreateIntent)

		// POST /api/orders - Create an unpaid order owned by the caller
		r.Post("/api/orders", orderHandler.CreateOrder)

		// GET /api/orders?email= - The caller's own order history
		r.Get("/api/orders", orderHandler.GetOrders)

		// PATCH /api/orders/{id} - Settle the order after payment confirmation
		r.Patch("/api/orders/{id}", orderHandler.SettleOrder)

		// DELETE /api/orders/{id} - Delete an unpaid order (owner or admin)
		r.Delete("/api/orders/{id}", orderHandler.DeleteOrder)
	})
}
