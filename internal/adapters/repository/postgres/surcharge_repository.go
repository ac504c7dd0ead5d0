package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vncsmyrnk/rentas/internal/core/domain"
	"github.com/vncsmyrnk/rentas/internal/core/ports"
)

type surchargeConfigRepository struct {
	db *sql.DB
}

func NewSurchargeConfigRepository(db *sql.DB) ports.SurchargeConfigRepository {
	return &surchargeConfigRepository{db: db}
}

const surchargeColumns = `id, name, type, value, grace_days, max_amount, active, description, created_at, updated_at`

var surchargeSortColumns = map[string]string{
	"id":        "id",
	"name":      "name",
	"type":      "type",
	"value":     "value",
	"graceDays": "grace_days",
	"createdAt": "created_at",
}

func scanSurcharge(row rowScanner) (domain.SurchargeConfig, error) {
	var s domain.SurchargeConfig
	err := row.Scan(&s.ID, &s.Name, &s.Type, &s.Value, &s.GraceDays, &s.MaxAmount, &s.Active, &s.Description,
		&s.CreatedAt, &s.UpdatedAt)
	return s, err
}

func (r *surchargeConfigRepository) Create(ctx context.Context, config *domain.SurchargeConfig) error {
	query := `
		INSERT INTO surcharge_configs (name, type, value, grace_days, max_amount, active, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		config.Name, config.Type, config.Value, config.GraceDays, config.MaxAmount, config.Active, config.Description,
		config.CreatedAt, config.UpdatedAt,
	).Scan(&config.ID)
	if err != nil {
		return translateError(err)
	}
	return nil
}

func (r *surchargeConfigRepository) GetByID(ctx context.Context, id int64) (*domain.SurchargeConfig, error) {
	s, err := scanSurcharge(r.db.QueryRowContext(ctx, `SELECT `+surchargeColumns+` FROM surcharge_configs WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSurchargeConfigNotFound
		}
		return nil, fmt.Errorf("failed to get surcharge config: %w", err)
	}
	return &s, nil
}

func (r *surchargeConfigRepository) List(ctx context.Context, filter domain.SurchargeConfigFilter, page domain.PageRequest) ([]domain.SurchargeConfig, int64, error) {
	w := &where{}
	if filter.Active != nil {
		w.add("active = $%d", *filter.Active)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM surcharge_configs`+w.String(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count surcharge configs: %w", err)
	}

	limit, args := w.limit(page)
	rows, err := r.db.QueryContext(ctx, `SELECT `+surchargeColumns+` FROM surcharge_configs`+w.String()+orderBy(page, surchargeSortColumns)+limit, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list surcharge configs: %w", err)
	}
	defer rows.Close()

	configs := make([]domain.SurchargeConfig, 0)
	for rows.Next() {
		s, err := scanSurcharge(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan surcharge config: %w", err)
		}
		configs = append(configs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating surcharge configs: %w", err)
	}
	return configs, total, nil
}

func (r *surchargeConfigRepository) Update(ctx context.Context, config *domain.SurchargeConfig) error {
	query := `
		UPDATE surcharge_configs
		SET name = $2, type = $3, value = $4, grace_days = $5, max_amount = $6, active = $7,
			description = $8, updated_at = $9
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query,
		config.ID, config.Name, config.Type, config.Value, config.GraceDays, config.MaxAmount, config.Active,
		config.Description, config.UpdatedAt,
	)
	if err != nil {
		return translateError(err)
	}
	return expectAffected(res, domain.ErrSurchargeConfigNotFound)
}

func (r *surchargeConfigRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM surcharge_configs WHERE id = $1`, id)
	if err != nil {
		return translateError(err)
	}
	return expectAffected(res, domain.ErrSurchargeConfigNotFound)
}
