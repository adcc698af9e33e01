package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"time"

	"receipt-desk/internal/models"
	"receipt-desk/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// IngestReceiptInput is a submitted receipt. Amount and CompanyID are the
// caller's final values, possibly pre-filled by a scan.
type IngestReceiptInput struct {
	CompanyID   uuid.UUID
	Amount      float64
	Notes       string
	File        []byte
	FileName    string
	ContentType string
	UserID      uuid.UUID
}

type IngestionService struct {
	companies    CompanyStore
	transactions TransactionStore
	tracking     TrackingStore
	blobs        BlobStore
	location     *time.Location
	now          Clock
	logger       *zap.Logger
}

func NewIngestionService(
	companies CompanyStore,
	transactions TransactionStore,
	tracking TrackingStore,
	blobs BlobStore,
	location *time.Location,
	logger *zap.Logger,
) *IngestionService {
	if location == nil {
		location = time.UTC
	}
	return &IngestionService{
		companies:    companies,
		transactions: transactions,
		tracking:     tracking,
		blobs:        blobs,
		location:     location,
		now:          time.Now,
		logger:       logger,
	}
}

// IngestReceipt stores the receipt, records a pending transaction dated today
// and marks the company as uploaded for today.
//
// A blob stored before a failed insert is left behind. When only the tracking
// upsert fails, the created transaction is returned along with
// ErrTrackingIncomplete.
func (s *IngestionService) IngestReceipt(ctx context.Context, in IngestReceiptInput) (*models.Transaction, error) {
	if err := s.validate(ctx, in); err != nil {
		return nil, err
	}

	now := s.now()
	key := fmt.Sprintf("receipts/%s-%d%s", in.CompanyID, now.UnixNano(), receiptExtension(in.FileName, in.ContentType))

	url, err := s.blobs.Put(ctx, key, in.File, in.ContentType)
	if err != nil {
		s.logger.Error("Failed to store receipt", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	tx := &models.Transaction{
		ID:               uuid.New(),
		CompanyID:        in.CompanyID,
		UserID:           in.UserID,
		Amount:           in.Amount,
		ReceiptURL:       url,
		DateExpected:     calendarDay(now, s.location),
		Status:           models.StatusPending,
		ProfitPercentage: models.DefaultProfitPercentage,
		Notes:            sanitizeUTF8(strings.TrimSpace(in.Notes)),
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.transactions.Create(ctx, tx); err != nil {
		s.logger.Error("Failed to create transaction",
			zap.String("company_id", in.CompanyID.String()),
			zap.String("receipt_url", url),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	err = s.tracking.Upsert(ctx, &models.DailyTracking{
		CompanyID:     tx.CompanyID,
		TrackingDate:  tx.DateExpected,
		HasUploaded:   true,
		TransactionID: tx.ID,
		UpdatedAt:     now,
	})
	if err != nil {
		s.logger.Warn("Transaction created but daily tracking not updated",
			zap.String("transaction_id", tx.ID.String()),
			zap.Error(err),
		)
		return tx, fmt.Errorf("%w: %v", ErrTrackingIncomplete, err)
	}

	s.logger.Info("Receipt ingested",
		zap.String("transaction_id", tx.ID.String()),
		zap.String("company_id", tx.CompanyID.String()),
		zap.Float64("amount", tx.Amount),
	)
	return tx, nil
}

func (s *IngestionService) validate(ctx context.Context, in IngestReceiptInput) error {
	if math.IsNaN(in.Amount) || math.IsInf(in.Amount, 0) || in.Amount < 0 {
		return fmt.Errorf("%w: amount must be a non-negative number", ErrInvalidArgument)
	}
	if len(in.File) == 0 {
		return validationf("receipt file is empty")
	}
	if in.CompanyID == uuid.Nil {
		return validationf("company is required")
	}

	if _, err := s.companies.GetByID(ctx, in.CompanyID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return validationf("unknown company %s", in.CompanyID)
		}
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

var extensionsByType = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/webp":      ".webp",
	"image/heic":      ".heic",
	"application/pdf": ".pdf",
}

func receiptExtension(fileName, contentType string) string {
	if ext := strings.ToLower(filepath.Ext(fileName)); ext != "" {
		return ext
	}
	return extensionsByType[contentType]
}
