package adaptor

import (
	"encoding/json"
	"net/http"

	"carparts-store/internal/dto/request"
	"carparts-store/internal/usecase"
	"carparts-store/pkg/utils"

	"go.uber.org/zap"
)

type ProfileHandler struct {
	service usecase.ProfileService
	log     *zap.Logger
}

func NewProfileHandler(service usecase.ProfileService, log *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		service: service,
		log:     log.With(zap.String("handler", "profile")),
	}
}

// GetProfile handles GET /api/myprofile (protected)
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	email, ok := utils.GetEmailFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	profile, err := h.service.GetProfile(r.Context(), email)
	if err != nil {
		handleServiceError(w, h.log, err, "get profile")
		return
	}

	utils.ResponseSuccess(w, "success", profile)
}

// UpsertProfile handles POST /api/myprofile (protected)
func (h *ProfileHandler) UpsertProfile(w http.ResponseWriter, r *http.Request) {
	email, ok := utils.GetEmailFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.UpsertProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	profile, err := h.service.UpsertProfile(r.Context(), email, req)
	if err != nil {
		handleServiceError(w, h.log, err, "upsert profile")
		return
	}

	utils.ResponseSuccess(w, "success", profile)
}

// GetSupportMessages handles GET /api/support (public)
func (h *ProfileHandler) GetSupportMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.service.GetSupportMessages(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get support messages")
		return
	}

	utils.ResponseSuccess(w, "success", messages)
}
