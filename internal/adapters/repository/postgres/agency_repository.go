package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vncsmyrnk/rentas/internal/core/domain"
	"github.com/vncsmyrnk/rentas/internal/core/ports"
)

type agencyRepository struct {
	db *sql.DB
}

func NewAgencyRepository(db *sql.DB) ports.AgencyRepository {
	return &agencyRepository{db: db}
}

const agencyColumns = `id, name, tax_id, contact_name, email, phone, address, status, registered_at, updated_at`

var agencySortColumns = map[string]string{
	"id":           "id",
	"name":         "name",
	"nombre":       "name",
	"taxId":        "tax_id",
	"status":       "status",
	"registeredAt": "registered_at",
}

func scanAgency(row rowScanner) (domain.Agency, error) {
	var a domain.Agency
	err := row.Scan(&a.ID, &a.Name, &a.TaxID, &a.ContactName, &a.Email, &a.Phone, &a.Address,
		&a.Status, &a.RegisteredAt, &a.UpdatedAt)
	return a, err
}

func (r *agencyRepository) Create(ctx context.Context, agency *domain.Agency) error {
	query := `
		INSERT INTO agencies (name, tax_id, contact_name, email, phone, address, status, registered_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		agency.Name, agency.TaxID, agency.ContactName, agency.Email, agency.Phone, agency.Address,
		agency.Status, agency.RegisteredAt, agency.UpdatedAt,
	).Scan(&agency.ID)
	if err != nil {
		return translateError(err)
	}
	return nil
}

func (r *agencyRepository) GetByID(ctx context.Context, id int64) (*domain.Agency, error) {
	a, err := scanAgency(r.db.QueryRowContext(ctx, `SELECT `+agencyColumns+` FROM agencies WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAgencyNotFound
		}
		return nil, fmt.Errorf("failed to get agency: %w", err)
	}
	return &a, nil
}

func (r *agencyRepository) List(ctx context.Context, filter domain.AgencyFilter, page domain.PageRequest) ([]domain.Agency, int64, error) {
	w := &where{}
	if filter.Name != "" {
		w.add("name ILIKE $%d", "%"+filter.Name+"%")
	}
	if filter.Status != "" {
		w.add("status = $%d", filter.Status)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM agencies`+w.String(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count agencies: %w", err)
	}

	limit, args := w.limit(page)
	rows, err := r.db.QueryContext(ctx, `SELECT `+agencyColumns+` FROM agencies`+w.String()+orderBy(page, agencySortColumns)+limit, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list agencies: %w", err)
	}
	defer rows.Close()

	agencies := make([]domain.Agency, 0)
	for rows.Next() {
		a, err := scanAgency(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan agency: %w", err)
		}
		agencies = append(agencies, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating agencies: %w", err)
	}
	return agencies, total, nil
}

func (r *agencyRepository) Update(ctx context.Context, agency *domain.Agency) error {
	query := `
		UPDATE agencies
		SET name = $2, tax_id = $3, contact_name = $4, email = $5, phone = $6, address = $7,
			status = $8, updated_at = $9
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query,
		agency.ID, agency.Name, agency.TaxID, agency.ContactName, agency.Email, agency.Phone, agency.Address,
		agency.Status, agency.UpdatedAt,
	)
	if err != nil {
		return translateError(err)
	}
	return expectAffected(res, domain.ErrAgencyNotFound)
}

func (r *agencyRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM agencies WHERE id = $1`, id)
	if err != nil {
		return translateError(err)
	}
	return expectAffected(res, domain.ErrAgencyNotFound)
}

func (r *agencyRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM agencies WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *agencyRepository) ExistsByTaxID(ctx context.Context, taxID string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM agencies WHERE tax_id = $1 AND id <> $2)`, taxID, excludeID,
	).Scan(&exists)
	return exists, err
}
