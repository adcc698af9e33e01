package dto

type TransactionResponse struct {
	ID               string  `json:"id"`
	CompanyID        string  `json:"company_id"`
	CompanyName      string  `json:"company_name,omitempty"`
	UserID           string  `json:"user_id"`
	Amount           float64 `json:"amount"`
	ReceiptURL       string  `json:"receipt_url"`
	DateExpected     string  `json:"date_expected"`
	Status           string  `json:"status"`
	ProfitPercentage float64 `json:"profit_percentage"`
	Notes            string  `json:"notes,omitempty"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

type SetProfitPercentageRequest struct {
	Value *float64 `json:"value" validate:"required,gte=0,lte=100"`
}

type AggregatesResponse struct {
	TotalPending    float64 `json:"total_pending"`
	TotalApproved   float64 `json:"total_approved"`
	EstimatedProfit float64 `json:"estimated_profit"`
}

type AdminTableResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Aggregates   AggregatesResponse    `json:"aggregates"`
}

type PayoutResponse struct {
	Gross float64 `json:"gross"`
	Fee   float64 `json:"fee"`
	Net   float64 `json:"net"`
}

type HistoryEntryResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	Payout      PayoutResponse      `json:"payout"`
}

type PartnerHistoryResponse struct {
	FeePercent float64                `json:"fee_percent"`
	Pending    []HistoryEntryResponse `json:"pending"`
	Processed  []HistoryEntryResponse `json:"processed"`
}
