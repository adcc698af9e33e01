package dto

type CompanyResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ChecklistEntryResponse struct {
	Company       CompanyResponse `json:"company"`
	HasUploaded   bool            `json:"has_uploaded"`
	TransactionID *string         `json:"transaction_id,omitempty"`
	Amount        *float64        `json:"amount,omitempty"`
}

type DailyChecklistResponse struct {
	Date       string                   `json:"date"`
	Entries    []ChecklistEntryResponse `json:"entries"`
	Uploaded   int                      `json:"uploaded"`
	Missing    int                      `json:"missing"`
	FeePercent float64                  `json:"fee_percent"`
	Payout     PayoutResponse           `json:"payout"`
}

type OverviewRowResponse struct {
	Company     CompanyResponse      `json:"company"`
	Transaction *TransactionResponse `json:"transaction,omitempty"`
}

type OverviewResponse struct {
	Date     string                `json:"date"`
	Rows     []OverviewRowResponse `json:"rows"`
	Uploaded int                   `json:"uploaded"`
	Pending  int                   `json:"pending"`
	Approved int                   `json:"approved"`
	Total    float64               `json:"total"`
}
