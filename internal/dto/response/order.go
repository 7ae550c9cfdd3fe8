package response

import (
	"time"

	"carparts-store/internal/data/entity"
)

type OrderResponse struct {
	ID            string           `json:"id"`
	Email         string           `json:"email"`
	ProductID     string           `json:"product_id"`
	ProductName   string           `json:"product_name"`
	Quantity      int              `json:"quantity"`
	Price         float64          `json:"price"`
	Paid          bool             `json:"paid"`
	TransactionID *string          `json:"transaction_id,omitempty"`
	Payment       *PaymentResponse `json:"payment,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
}

func ToOrderResponse(o *entity.Order) OrderResponse {
	return OrderResponse{
		ID:            o.ID.String(),
		Email:         o.Email,
		ProductID:     o.ProductID.String(),
		ProductName:   o.ProductName,
		Quantity:      o.Quantity,
		Price:         o.Price,
		Paid:          o.Paid,
		TransactionID: o.TransactionID,
		CreatedAt:     o.CreatedAt,
	}
}

// ToOrderResponseWithPayment embeds the settlement receipt when one exists.
func ToOrderResponseWithPayment(o *entity.Order, p *entity.Payment) OrderResponse {
	resp := ToOrderResponse(o)
	if p != nil {
		receipt := ToPaymentResponse(p)
		resp.Payment = &receipt
	}
	return resp
}

func ToOrderResponses(orders []*entity.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, ToOrderResponse(o))
	}
	return out
}
