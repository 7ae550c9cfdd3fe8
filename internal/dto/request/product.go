package request

type CreateProductRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	ImageURL    *string `json:"image_url,omitempty" validate:"omitempty,max=500"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Quantity    int     `json:"quantity" validate:"min=0"`
}

// UpdateStockRequest decrements the product's stock by Quantity.
type UpdateStockRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}
