package response

import (
	"time"

	"carparts-store/internal/data/entity"
)

type ProfileResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Education *string   `json:"education,omitempty"`
	Location  *string   `json:"location,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	LinkedIn  *string   `json:"linkedin,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToProfileResponse(p *entity.Profile) ProfileResponse {
	return ProfileResponse{
		ID:        p.ID.String(),
		Email:     p.Email,
		Education: p.Education,
		Location:  p.Location,
		Phone:     p.Phone,
		LinkedIn:  p.LinkedIn,
		UpdatedAt: p.UpdatedAt,
	}
}
