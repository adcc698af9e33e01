package models

import (
	"time"

	"github.com/google/uuid"
)

// Company is one of the LLCs a partner deposits for. Names are unique.
type Company struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}
