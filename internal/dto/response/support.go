package response

import (
	"time"

	"carparts-store/internal/data/entity"
)

type SupportResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func ToSupportResponses(messages []*entity.SupportMessage) []SupportResponse {
	out := make([]SupportResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, SupportResponse{
			ID:        m.ID.String(),
			Name:      m.Name,
			Email:     m.Email,
			Message:   m.Message,
			CreatedAt: m.CreatedAt,
		})
	}
	return out
}
