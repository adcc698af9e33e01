package repository

import (
	"context"
	"time"

	"receipt-desk/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const trackingConflictClause = "ON CONFLICT (company_id, tracking_date) DO UPDATE SET " +
	"has_uploaded = EXCLUDED.has_uploaded, " +
	"transaction_id = EXCLUDED.transaction_id, " +
	"updated_at = EXCLUDED.updated_at"

type DailyTrackingRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewDailyTrackingRepository(db *pgxpool.Pool, logger *zap.Logger) *DailyTrackingRepository {
	return &DailyTrackingRepository{
		db:     db,
		logger: logger,
	}
}

// Upsert writes the row for (company, day) with the database's native
// insert-or-update so concurrent uploads never produce two rows.
func (r *DailyTrackingRepository) Upsert(ctx context.Context, dt *models.DailyTracking) error {
	sql, args, err := buildTrackingUpsert(dt).ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// ListUploadedOn returns the day's uploaded rows joined with the amount of the
// transaction each one points at.
func (r *DailyTrackingRepository) ListUploadedOn(ctx context.Context, day time.Time) ([]*models.TrackedUpload, error) {
	sql, args, err := buildTrackingListUploaded(day).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var uploads []*models.TrackedUpload
	for rows.Next() {
		var u models.TrackedUpload
		var amount *float64
		if err := rows.Scan(
			&u.CompanyID, &u.TrackingDate, &u.HasUploaded, &u.TransactionID, &u.UpdatedAt, &amount,
		); err != nil {
			return nil, err
		}
		u.Linked = models.FromPointer(amount)
		uploads = append(uploads, &u)
	}

	return uploads, rows.Err()
}

func buildTrackingUpsert(dt *models.DailyTracking) squirrel.InsertBuilder {
	return squirrel.Insert("daily_tracking").
		Columns("company_id", "tracking_date", "has_uploaded", "transaction_id", "updated_at").
		Values(dt.CompanyID, dt.TrackingDate, dt.HasUploaded, dt.TransactionID, dt.UpdatedAt).
		Suffix(trackingConflictClause).
		PlaceholderFormat(squirrel.Dollar)
}

func buildTrackingListUploaded(day time.Time) squirrel.SelectBuilder {
	return squirrel.Select(
		"dt.company_id", "dt.tracking_date", "dt.has_uploaded", "dt.transaction_id", "dt.updated_at", "t.amount",
	).
		From("daily_tracking dt").
		LeftJoin("transactions t ON t.id = dt.transaction_id").
		Where(squirrel.Eq{"dt.tracking_date": day, "dt.has_uploaded": true}).
		PlaceholderFormat(squirrel.Dollar)
}
