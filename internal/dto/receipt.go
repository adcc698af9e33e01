package dto

// IngestReceiptForm holds the non-file fields of the multipart upload.
type IngestReceiptForm struct {
	CompanyID string   `form:"company_id" validate:"required"`
	Amount    *float64 `form:"amount" validate:"required,gte=0"`
	Notes     string   `form:"notes" validate:"max=2000"`
}

type ScanResponse struct {
	Amount       *float64 `json:"amount,omitempty"`
	CompanyID    *string  `json:"company_id,omitempty"`
	CompanyName  string   `json:"company_name,omitempty"`
	CompanyGuess string   `json:"company_guess,omitempty"`
}

type IngestReceiptResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	Warning     string              `json:"warning,omitempty"`
}
