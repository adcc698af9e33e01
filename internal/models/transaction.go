package models

import (
	"time"

	"github.com/google/uuid"
)

type TransactionStatus string

const (
	StatusPending  TransactionStatus = "pending"
	StatusApproved TransactionStatus = "approved"
	StatusRejected TransactionStatus = "rejected"
)

// DefaultProfitPercentage is assigned to every newly ingested transaction.
const DefaultProfitPercentage = 10.0

func (s TransactionStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// CanTransitionTo reports whether the workflow allows moving from s to next.
// Approved and rejected are terminal.
func (s TransactionStatus) CanTransitionTo(next TransactionStatus) bool {
	return s == StatusPending && (next == StatusApproved || next == StatusRejected)
}

type Transaction struct {
	ID               uuid.UUID         `db:"id"`
	CompanyID        uuid.UUID         `db:"company_id"`
	UserID           uuid.UUID         `db:"user_id"`
	Amount           float64           `db:"amount"`
	ReceiptURL       string            `db:"receipt_url"`
	DateExpected     time.Time         `db:"date_expected"`
	Status           TransactionStatus `db:"status"`
	ProfitPercentage float64           `db:"profit_percentage"`
	Notes            string            `db:"notes"`
	CreatedAt        time.Time         `db:"created_at"`
	UpdatedAt        time.Time         `db:"updated_at"`

	// CompanyName is filled by joined reads only.
	CompanyName string `db:"company_name"`
}

// TransactionFilter narrows list queries; nil fields are ignored.
type TransactionFilter struct {
	UserID       *uuid.UUID
	CompanyID    *uuid.UUID
	DateExpected *time.Time
	Status       *TransactionStatus
}
