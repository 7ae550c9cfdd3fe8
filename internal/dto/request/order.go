package request

type CreateOrderRequest struct {
	ProductID string  `json:"product_id" validate:"required,uuid4"`
	Quantity  int     `json:"quantity" validate:"required,min=1"`
	Price     float64 `json:"price" validate:"required,gt=0"`
}

// SettleOrderRequest carries the transaction id the client received from
// the processor after confirming payment.
type SettleOrderRequest struct {
	TransactionID string `json:"transaction_id" validate:"required,min=1,max=200"`
	PaymentMethod string `json:"payment_method,omitempty" validate:"omitempty,max=50"`
}
