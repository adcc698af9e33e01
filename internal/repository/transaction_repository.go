package repository

import (
	"context"

	"receipt-desk/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var transactionColumns = []string{
	"t.id", "t.company_id", "t.user_id", "t.amount", "t.receipt_url", "t.date_expected",
	"t.status", "t.profit_percentage", "COALESCE(t.notes, '')", "t.created_at", "t.updated_at",
	"COALESCE(c.name, '')",
}

type TransactionRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewTransactionRepository(db *pgxpool.Pool, logger *zap.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *TransactionRepository) Create(ctx context.Context, tx *models.Transaction) error {
	sql, args, err := buildTransactionInsert(tx).ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *TransactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	sql, args, err := selectTransactions().Where(squirrel.Eq{"t.id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	tx, err := scanTransaction(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, mapNoRows(err)
	}
	return tx, nil
}

// List returns matching transactions, newest expected date first.
func (r *TransactionRepository) List(ctx context.Context, filter models.TransactionFilter) ([]*models.Transaction, error) {
	sql, args, err := buildTransactionList(filter).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []*models.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}

	return transactions, rows.Err()
}

// UpdateStatusIfPending moves a pending transaction to status in one
// statement. It reports false when no pending row with that id exists.
func (r *TransactionRepository) UpdateStatusIfPending(ctx context.Context, id uuid.UUID, status models.TransactionStatus) (bool, error) {
	return r.execAffected(ctx, squirrel.Update("transactions").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": models.StatusPending}).
		PlaceholderFormat(squirrel.Dollar))
}

func (r *TransactionRepository) UpdateProfitPercentageIfPending(ctx context.Context, id uuid.UUID, value float64) (bool, error) {
	return r.execAffected(ctx, squirrel.Update("transactions").
		Set("profit_percentage", value).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": models.StatusPending}).
		PlaceholderFormat(squirrel.Dollar))
}

// DeleteIfPending removes a pending transaction. Tracking rows that point at
// it are left in place.
func (r *TransactionRepository) DeleteIfPending(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.execAffected(ctx, squirrel.Delete("transactions").
		Where(squirrel.Eq{"id": id, "status": models.StatusPending}).
		PlaceholderFormat(squirrel.Dollar))
}

func (r *TransactionRepository) execAffected(ctx context.Context, query squirrel.Sqlizer) (bool, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return false, err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func buildTransactionInsert(tx *models.Transaction) squirrel.InsertBuilder {
	var notes interface{}
	if tx.Notes != "" {
		notes = tx.Notes
	}

	return squirrel.Insert("transactions").
		Columns("id", "company_id", "user_id", "amount", "receipt_url", "date_expected",
			"status", "profit_percentage", "notes", "created_at", "updated_at").
		Values(tx.ID, tx.CompanyID, tx.UserID, tx.Amount, tx.ReceiptURL, tx.DateExpected,
			tx.Status, tx.ProfitPercentage, notes, tx.CreatedAt, tx.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)
}

func selectTransactions() squirrel.SelectBuilder {
	return squirrel.Select(transactionColumns...).
		From("transactions t").
		LeftJoin("companies c ON c.id = t.company_id").
		PlaceholderFormat(squirrel.Dollar)
}

func buildTransactionList(filter models.TransactionFilter) squirrel.SelectBuilder {
	query := selectTransactions()

	if filter.UserID != nil {
		query = query.Where(squirrel.Eq{"t.user_id": *filter.UserID})
	}
	if filter.CompanyID != nil {
		query = query.Where(squirrel.Eq{"t.company_id": *filter.CompanyID})
	}
	if filter.DateExpected != nil {
		query = query.Where(squirrel.Eq{"t.date_expected": *filter.DateExpected})
	}
	if filter.Status != nil {
		query = query.Where(squirrel.Eq{"t.status": *filter.Status})
	}

	return query.OrderBy("t.date_expected DESC", "t.created_at DESC")
}

func scanTransaction(row pgx.Row) (*models.Transaction, error) {
	var tx models.Transaction
	err := row.Scan(
		&tx.ID, &tx.CompanyID, &tx.UserID, &tx.Amount, &tx.ReceiptURL, &tx.DateExpected,
		&tx.Status, &tx.ProfitPercentage, &tx.Notes, &tx.CreatedAt, &tx.UpdatedAt,
		&tx.CompanyName,
	)
	if err != nil {
		return nil, err
	}
	return &tx, nil
}
