package postgres

import (
	"context"
	"database/sql"

	"olms-backend/internal/domain"
	"olms-backend/internal/logger"
	"olms-backend/internal/repository"
)

type settingRepository struct {
	db *sql.DB
}

func NewSettingRepository(db *sql.DB) repository.SettingRepository {
	return &settingRepository{db: db}
}

func (r *settingRepository) Get(ctx context.Context, key string) (*domain.Setting, error) {
	s := &domain.Setting{}
	query := `SELECT key, value, COALESCE(description, '') FROM settings WHERE key = $1`
	if err := r.db.QueryRowContext(ctx, query, key).Scan(&s.Key, &s.Value, &s.Description); err != nil {
		return nil, notFound(err)
	}
	return s, nil
}

func (r *settingRepository) List(ctx context.Context) ([]domain.Setting, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key, value, COALESCE(description, '') FROM settings ORDER BY key`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var settings []domain.Setting
	for rows.Next() {
		var s domain.Setting
		if err := rows.Scan(&s.Key, &s.Value, &s.Description); err != nil {
			return nil, err
		}
		settings = append(settings, s)
	}
	return settings, rows.Err()
}

func (r *settingRepository) Create(ctx context.Context, s *domain.Setting) error {
	query := `INSERT INTO settings (key, value, description, updated_at) VALUES ($1, $2, $3, NOW())`
	_, err := r.db.ExecContext(ctx, query, s.Key, s.Value, s.Description)
	return err
}

func (r *settingRepository) Upsert(ctx context.Context, key, value string) error {
	query := `INSERT INTO settings (key, value, updated_at) VALUES ($1, $2, NOW())
	          ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`
	logger.DatabaseCall("UPSERT", "settings", "key", key)
	res, err := r.db.ExecContext(ctx, query, key, value)
	var affected int64
	if err == nil {
		affected, _ = res.RowsAffected()
	}
	logger.DatabaseResult("UPSERT", affected, err, "key", key)
	return err
}
