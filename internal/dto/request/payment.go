package request

type CreateIntentRequest struct {
	Price float64 `json:"price" validate:"required,gt=0"`
}
