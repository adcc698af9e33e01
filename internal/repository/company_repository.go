package repository

import (
	"context"

	"receipt-desk/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type CompanyRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewCompanyRepository(db *pgxpool.Pool, logger *zap.Logger) *CompanyRepository {
	return &CompanyRepository{
		db:     db,
		logger: logger,
	}
}

// List returns every company ordered by name; this order is the resolver's
// registry order.
func (r *CompanyRepository) List(ctx context.Context) ([]*models.Company, error) {
	sql, args, err := squirrel.Select("id", "name", "created_at").
		From("companies").
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var companies []*models.Company
	for rows.Next() {
		var c models.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, err
		}
		companies = append(companies, &c)
	}

	return companies, rows.Err()
}

func (r *CompanyRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	sql, args, err := squirrel.Select("id", "name", "created_at").
		From("companies").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var c models.Company
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
		return nil, mapNoRows(err)
	}
	return &c, nil
}

// CreateIfMissing inserts a company unless one with the same name exists.
// It reports whether a row was inserted.
func (r *CompanyRepository) CreateIfMissing(ctx context.Context, c *models.Company) (bool, error) {
	sql, args, err := squirrel.Insert("companies").
		Columns("id", "name", "created_at").
		Values(c.ID, c.Name, c.CreatedAt).
		Suffix("ON CONFLICT (name) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
