package service

import (
	"context"
	"time"

	"receipt-desk/internal/models"

	"github.com/google/uuid"
)

// CompanyStore is the company registry.
type CompanyStore interface {
	List(ctx context.Context) ([]*models.Company, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Company, error)
}

type TransactionStore interface {
	Create(ctx context.Context, tx *models.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	List(ctx context.Context, filter models.TransactionFilter) ([]*models.Transaction, error)
	UpdateStatusIfPending(ctx context.Context, id uuid.UUID, status models.TransactionStatus) (bool, error)
	UpdateProfitPercentageIfPending(ctx context.Context, id uuid.UUID, value float64) (bool, error)
	DeleteIfPending(ctx context.Context, id uuid.UUID) (bool, error)
}

// TrackingStore must implement Upsert as a single insert-or-update on
// (company_id, tracking_date).
type TrackingStore interface {
	Upsert(ctx context.Context, dt *models.DailyTracking) error
	ListUploadedOn(ctx context.Context, day time.Time) ([]*models.TrackedUpload, error)
}

type SettingStore interface {
	Get(ctx context.Context, key string) (*models.GlobalSetting, error)
	Upsert(ctx context.Context, s *models.GlobalSetting) error
}

type CredentialStore interface {
	List(ctx context.Context, service string) ([]*models.Credential, error)
	Create(ctx context.Context, c *models.Credential) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// BlobStore matches storage.BlobStore.
type BlobStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// Extractor is the hosted document-understanding model.
type Extractor interface {
	ExtractFromImage(ctx context.Context, image []byte, fileName, mimeType, prompt string) (string, error)
	ExtractFromText(ctx context.Context, text, prompt string) (string, error)
}

// SettingsCache is an optional read-through cache for settings values.
type SettingsCache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Clock returns the current time; tests substitute a fixed one.
type Clock func() time.Time

// Actor is the authenticated caller of a service operation.
type Actor struct {
	UserID uuid.UUID
	Role   models.Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == models.RoleAdmin
}

func requireAdmin(a Actor) error {
	if !a.IsAdmin() {
		return ErrForbidden
	}
	return nil
}

// calendarDay truncates t to midnight in loc, returned as a UTC-zoned date so
// that it compares equal to DATE columns read back from the database.
func calendarDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
