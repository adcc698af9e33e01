package dto

type PlatformFeeResponse struct {
	Value float64 `json:"value"`
}

type UpdatePlatformFeeRequest struct {
	Value *float64 `json:"value" validate:"required,gte=0,lte=100"`
}
