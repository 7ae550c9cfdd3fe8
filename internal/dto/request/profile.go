package request

type UpsertProfileRequest struct {
	Education *string `json:"education,omitempty" validate:"omitempty,max=200"`
	Location  *string `json:"location,omitempty" validate:"omitempty,max=200"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,min=7,max=20"`
	LinkedIn  *string `json:"linkedin,omitempty" validate:"omitempty,max=200"`
}
