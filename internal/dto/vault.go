package dto

type CreateCredentialRequest struct {
	ServiceName string `json:"service_name" validate:"required,max=128"`
	Username    string `json:"username" validate:"max=256"`
	Secret      string `json:"secret" validate:"required"`
	Notes       string `json:"notes" validate:"max=2000"`
}

type CredentialResponse struct {
	ID          string `json:"id"`
	ServiceName string `json:"service_name"`
	Username    string `json:"username"`
	Secret      string `json:"secret"`
	Notes       string `json:"notes,omitempty"`
	CreatedAt   string `json:"created_at"`
}
