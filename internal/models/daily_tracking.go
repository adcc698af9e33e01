package models

import (
	"time"

	"github.com/google/uuid"
)

// DailyTracking marks that a company received an upload on a given day.
// (company_id, tracking_date) is unique; TransactionID points at the latest
// tracked upload and may dangle after that transaction is deleted.
type DailyTracking struct {
	CompanyID     uuid.UUID `db:"company_id"`
	TrackingDate  time.Time `db:"tracking_date"`
	HasUploaded   bool      `db:"has_uploaded"`
	TransactionID uuid.UUID `db:"transaction_id"`
	UpdatedAt     time.Time `db:"updated_at"`
}

// TrackedUpload is a tracking row joined with the amount of the transaction
// it points at. Linked is None when the transaction no longer exists.
type TrackedUpload struct {
	DailyTracking
	Linked Variant[float64]
}
