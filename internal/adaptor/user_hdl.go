package adaptor

import (
	"net/http"

	"carparts-store/internal/dto/request"
	"carparts-store/internal/dto/response"
	"carparts-store/internal/usecase"
	"carparts-store/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// GetAllUsers handles GET /api/users (admin only)
func (h *UserHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	page, perPage := paginationFromQuery(r)
	req := request.PaginatedRequest{Page: page, PerPage: perPage}

	users, err := h.service.GetAllUsers(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get all users")
		return
	}

	utils.ResponseSuccess(w, "success", users)
}

// CheckAdmin handles GET /api/admin/{email} (public)
//
// Unknown emails answer {admin: false} with 200; this endpoint leaks
// nothing beyond what the admin UI needs for gating.
func (h *UserHandler) CheckAdmin(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if email == "" {
		utils.ResponseBadRequest(w, "Email is required", nil)
		return
	}

	admin, err := h.service.IsAdmin(r.Context(), email)
	if err != nil {
		handleServiceError(w, h.log, err, "check admin")
		return
	}

	utils.ResponseSuccess(w, "success", response.AdminCheckResponse{
		Email: email,
		Admin: admin,
	})
}

// PromoteToAdmin handles PUT /api/user/admin/{email} (admin only)
func (h *UserHandler) PromoteToAdmin(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if email == "" {
		utils.ResponseBadRequest(w, "Email is required", nil)
		return
	}

	if err := h.service.PromoteToAdmin(r.Context(), email); err != nil {
		handleServiceError(w, h.log, err, "promote to admin")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
