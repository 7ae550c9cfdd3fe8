package request

type CreateReviewRequest struct {
	Name    string  `json:"name" validate:"required,min=2,max=100"`
	Rating  int     `json:"rating" validate:"required,min=1,max=5"`
	Comment *string `json:"comment,omitempty" validate:"omitempty,max=1000"`
}
