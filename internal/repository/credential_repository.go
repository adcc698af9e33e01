package repository

import (
	"context"

	"receipt-desk/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type CredentialRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewCredentialRepository(db *pgxpool.Pool, logger *zap.Logger) *CredentialRepository {
	return &CredentialRepository{
		db:     db,
		logger: logger,
	}
}

// List returns vault entries ordered by service name. A non-empty service
// narrows the result to names containing it, case-insensitively.
func (r *CredentialRepository) List(ctx context.Context, service string) ([]*models.Credential, error) {
	sql, args, err := buildCredentialList(service).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var creds []*models.Credential
	for rows.Next() {
		var c models.Credential
		if err := rows.Scan(&c.ID, &c.ServiceName, &c.Username, &c.Secret, &c.Notes, &c.CreatedAt); err != nil {
			return nil, err
		}
		creds = append(creds, &c)
	}

	return creds, rows.Err()
}

func (r *CredentialRepository) Create(ctx context.Context, c *models.Credential) error {
	sql, args, err := squirrel.Insert("vault_credentials").
		Columns("id", "service_name", "username", "secret", "notes", "created_at").
		Values(c.ID, c.ServiceName, c.Username, c.Secret, c.Notes, c.CreatedAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// Delete returns ErrNotFound when no entry has the id.
func (r *CredentialRepository) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := squirrel.Delete("vault_credentials").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func buildCredentialList(service string) squirrel.SelectBuilder {
	query := squirrel.Select("id", "service_name", "username", "secret", "COALESCE(notes, '')", "created_at").
		From("vault_credentials").
		PlaceholderFormat(squirrel.Dollar)

	if service != "" {
		query = query.Where(squirrel.ILike{"service_name": "%" + service + "%"})
	}

	return query.OrderBy("service_name ASC", "created_at DESC")
}
