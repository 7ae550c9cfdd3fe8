package response

import (
	"time"

	"carparts-store/internal/data/entity"
)

// PaymentResponse is a settlement receipt. Amount is in minor units.
type PaymentResponse struct {
	ID            string    `json:"id"`
	OrderID       string    `json:"order_id"`
	TransactionID string    `json:"transaction_id"`
	Amount        int64     `json:"amount"`
	PaymentMethod string    `json:"payment_method,omitempty"`
	Email         string    `json:"email"`
	CreatedAt     time.Time `json:"created_at"`
}

// IntentResponse carries the processor's client secret; the client uses it
// to confirm the payment on its side.
type IntentResponse struct {
	ClientSecret string `json:"client_secret"`
}

func ToPaymentResponse(p *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID.String(),
		OrderID:       p.OrderID.String(),
		TransactionID: p.TransactionID,
		Amount:        p.Amount,
		PaymentMethod: p.PaymentMethod,
		Email:         p.Email,
		CreatedAt:     p.CreatedAt,
	}
}
