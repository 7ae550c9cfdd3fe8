package request

// LoginRequest is the passwordless login/bootstrap payload: the user record
// is upserted by email and a session token is returned.
type LoginRequest struct {
	Email   string  `json:"email" validate:"required,email"`
	Name    string  `json:"name" validate:"required,min=2,max=100"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,min=7,max=20"`
	Address *string `json:"address,omitempty" validate:"omitempty,max=200"`
}
