package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vncsmyrnk/rentas/internal/core/domain"
	"github.com/vncsmyrnk/rentas/internal/core/ports"
)

type propertyRepository struct {
	db *sql.DB
}

func NewPropertyRepository(db *sql.DB) ports.PropertyRepository {
	return &propertyRepository{db: db}
}

const propertyColumns = `id, agency_id, title, address, type, area_m2, bedrooms, bathrooms,
	monthly_rent, status, description, created_at, updated_at`

var propertySortColumns = map[string]string{
	"id":          "id",
	"agencyId":    "agency_id",
	"title":       "title",
	"type":        "type",
	"monthlyRent": "monthly_rent",
	"status":      "status",
	"createdAt":   "created_at",
}

func scanProperty(row rowScanner) (domain.Property, error) {
	var p domain.Property
	err := row.Scan(&p.ID, &p.AgencyID, &p.Title, &p.Address, &p.Type, &p.AreaM2, &p.Bedrooms, &p.Bathrooms,
		&p.MonthlyRent, &p.Status, &p.Description, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *propertyRepository) Create(ctx context.Context, property *domain.Property) error {
	query := `
		INSERT INTO properties (agency_id, title, address, type, area_m2, bedrooms, bathrooms,
			monthly_rent, status, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		property.AgencyID, property.Title, property.Address, property.Type, property.AreaM2,
		property.Bedrooms, property.Bathrooms, property.MonthlyRent, property.Status, property.Description,
		property.CreatedAt, property.UpdatedAt,
	).Scan(&property.ID)
	if err != nil {
		return translateError(err)
	}
	return nil
}

func (r *propertyRepository) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	p, err := scanProperty(r.db.QueryRowContext(ctx, `SELECT `+propertyColumns+` FROM properties WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("failed to get property: %w", err)
	}
	return &p, nil
}

func (r *propertyRepository) List(ctx context.Context, filter domain.PropertyFilter, page domain.PageRequest) ([]domain.Property, int64, error) {
	w := &where{}
	if filter.AgencyID != 0 {
		w.add("agency_id = $%d", filter.AgencyID)
	}
	if filter.Type != "" {
		w.add("type = $%d", filter.Type)
	}
	if filter.Status != "" {
		w.add("status = $%d", filter.Status)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM properties`+w.String(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count properties: %w", err)
	}

	limit, args := w.limit(page)
	rows, err := r.db.QueryContext(ctx, `SELECT `+propertyColumns+` FROM properties`+w.String()+orderBy(page, propertySortColumns)+limit, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list properties: %w", err)
	}
	defer rows.Close()

	properties := make([]domain.Property, 0)
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan property: %w", err)
		}
		properties = append(properties, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating properties: %w", err)
	}
	return properties, total, nil
}

func (r *propertyRepository) Update(ctx context.Context, property *domain.Property) error {
	query := `
		UPDATE properties
		SET agency_id = $2, title = $3, address = $4, type = $5, area_m2 = $6, bedrooms = $7,
			bathrooms = $8, monthly_rent = $9, status = $10, description = $11, updated_at = $12
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query,
		property.ID, property.AgencyID, property.Title, property.Address, property.Type, property.AreaM2,
		property.Bedrooms, property.Bathrooms, property.MonthlyRent, property.Status, property.Description,
		property.UpdatedAt,
	)
	if err != nil {
		return translateError(err)
	}
	return expectAffected(res, domain.ErrPropertyNotFound)
}

func (r *propertyRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		return translateError(err)
	}
	return expectAffected(res, domain.ErrPropertyNotFound)
}

func (r *propertyRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM properties WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}
