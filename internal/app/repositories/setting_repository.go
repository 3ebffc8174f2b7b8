package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/psanashik/academy/internal/app/models"
	"github.com/psanashik/academy/internal/pkg/apperrors"
	"github.com/psanashik/academy/internal/pkg/dberrors"
)

type settingRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSettingRepository creates a new system settings repository
func NewSettingRepository(db *pgxpool.Pool) SettingRepository {
	return &settingRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const settingColumns = `id, key, value, description, category, updated_by, updated_at`

func scanSetting(row pgx.Row) (*models.SystemSetting, error) {
	var setting models.SystemSetting
	err := row.Scan(
		&setting.ID,
		&setting.Key,
		&setting.Value,
		&setting.Description,
		&setting.Category,
		&setting.UpdatedBy,
		&setting.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

// Create stores a new setting. Keys are unique.
func (r *settingRepository) Create(ctx context.Context, setting *models.SystemSetting) error {
	query := `
		INSERT INTO system_settings (key, value, description, category, updated_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		setting.Key, setting.Value, setting.Description, setting.Category, setting.UpdatedBy,
	).Scan(&setting.ID, &setting.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "system_settings_key_key") {
			return apperrors.ErrSettingKeyExists
		}
		return fmt.Errorf("error creating setting: %w", err)
	}
	return nil
}

// GetByKey retrieves a setting by its unique key
func (r *settingRepository) GetByKey(ctx context.Context, key string) (*models.SystemSetting, error) {
	query := fmt.Sprintf(`SELECT %s FROM system_settings WHERE key = $1`, settingColumns)

	setting, err := scanSetting(r.db.QueryRow(ctx, query, key))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSettingNotFound
		}
		return nil, fmt.Errorf("error retrieving setting: %w", err)
	}
	return setting, nil
}

// List retrieves settings, optionally restricted to a category
func (r *settingRepository) List(ctx context.Context, category string) ([]*models.SystemSetting, error) {
	builder := r.sb.Select(settingColumns).From("system_settings").OrderBy("category", "key")
	if category != "" {
		builder = builder.Where(squirrel.Eq{"category": category})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build setting list query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing settings: %w", err)
	}
	defer rows.Close()

	var settings []*models.SystemSetting
	for rows.Next() {
		setting, err := scanSetting(rows)
		if err != nil {
			return nil, err
		}
		settings = append(settings, setting)
	}
	return settings, rows.Err()
}

// Update replaces a setting's value and metadata, keyed by the setting key
func (r *settingRepository) Update(ctx context.Context, setting *models.SystemSetting) error {
	query := `
		UPDATE system_settings
		SET value = $1, description = COALESCE($2, description), updated_by = $3, updated_at = now()
		WHERE key = $4
		RETURNING id, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		setting.Value, setting.Description, setting.UpdatedBy, setting.Key,
	).Scan(&setting.ID, &setting.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrSettingNotFound
		}
		return fmt.Errorf("error updating setting: %w", err)
	}
	return nil
}

// Delete removes a setting by key
func (r *settingRepository) Delete(ctx context.Context, key string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM system_settings WHERE key = $1`, key)
	if err != nil {
		return fmt.Errorf("error deleting setting: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSettingNotFound
	}
	return nil
}
