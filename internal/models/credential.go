package models

import (
	"time"

	"github.com/google/uuid"
)

// Credential is a vault entry. Secrets are stored as entered.
type Credential struct {
	ID          uuid.UUID `db:"id"`
	ServiceName string    `db:"service_name"`
	Username    string    `db:"username"`
	Secret      string    `db:"secret"`
	Notes       string    `db:"notes"`
	CreatedAt   time.Time `db:"created_at"`
}
