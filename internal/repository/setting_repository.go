package repository

import (
	"context"

	"receipt-desk/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type SettingRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewSettingRepository(db *pgxpool.Pool, logger *zap.Logger) *SettingRepository {
	return &SettingRepository{
		db:     db,
		logger: logger,
	}
}

// Get returns ErrNotFound when the key was never written.
func (r *SettingRepository) Get(ctx context.Context, key string) (*models.GlobalSetting, error) {
	sql, args, err := squirrel.Select("setting_key", "setting_value", "COALESCE(description, '')", "updated_at").
		From("global_settings").
		Where(squirrel.Eq{"setting_key": key}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var s models.GlobalSetting
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&s.Key, &s.Value, &s.Description, &s.UpdatedAt); err != nil {
		return nil, mapNoRows(err)
	}
	return &s, nil
}

func (r *SettingRepository) Upsert(ctx context.Context, s *models.GlobalSetting) error {
	sql, args, err := buildSettingUpsert(s).ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func buildSettingUpsert(s *models.GlobalSetting) squirrel.InsertBuilder {
	return squirrel.Insert("global_settings").
		Columns("setting_key", "setting_value", "description", "updated_at").
		Values(s.Key, s.Value, s.Description, s.UpdatedAt).
		Suffix("ON CONFLICT (setting_key) DO UPDATE SET " +
			"setting_value = EXCLUDED.setting_value, updated_at = EXCLUDED.updated_at").
		PlaceholderFormat(squirrel.Dollar)
}
