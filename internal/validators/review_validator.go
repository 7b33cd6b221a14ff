package validators

type ReviewCreateRequest struct {
	Booking string `json:"booking" validate:"required,object_id"`
	Rating  int    `json:"rating" validate:"required,rating_value"`
	Comment string `json:"comment" validate:"omitempty,max=500"`
}

func ValidateReviewCreate(req *ReviewCreateRequest) ValidationErrors {
	return ValidateStruct(req)
}
