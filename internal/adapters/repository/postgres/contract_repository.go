package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vncsmyrnk/rentas/internal/core/domain"
	"github.com/vncsmyrnk/rentas/internal/core/ports"
)

type rentalContractRepository struct {
	db *sql.DB
}

func NewRentalContractRepository(db *sql.DB) ports.RentalContractRepository {
	return &rentalContractRepository{db: db}
}

const contractColumns = `id, property_id, start_date, end_date, duration_months, status,
	security_deposit, special_conditions, notification_contact, notification_days,
	created_at, updated_at`

var contractSortColumns = map[string]string{
	"id":             "id",
	"propertyId":     "property_id",
	"startDate":      "start_date",
	"endDate":        "end_date",
	"durationMonths": "duration_months",
	"status":         "status",
	"createdAt":      "created_at",
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanContract(row rowScanner) (domain.RentalContract, error) {
	var c domain.RentalContract
	err := row.Scan(
		&c.ID, &c.PropertyID, &c.StartDate, &c.EndDate, &c.DurationMonths, &c.Status,
		&c.SecurityDeposit, &c.SpecialConditions, &c.NotificationContact, &c.NotificationDays,
		&c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

// CreateActive locks the property row so concurrent creations for the same
// property are serialized; the partial unique index is the backstop.
func (r *rentalContractRepository) CreateActive(ctx context.Context, contract *domain.RentalContract) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var locked int64
	err = tx.QueryRowContext(ctx, `SELECT id FROM properties WHERE id = $1 FOR UPDATE`, contract.PropertyID).Scan(&locked)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrPropertyNotFound
		}
		return fmt.Errorf("failed to lock property: %w", err)
	}

	var active bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM rental_contracts WHERE property_id = $1 AND status = 'ACTIVO')`,
		contract.PropertyID,
	).Scan(&active)
	if err != nil {
		return fmt.Errorf("failed to check active contracts: %w", err)
	}
	if active {
		return domain.ErrActiveContractExists
	}

	query := `
		INSERT INTO rental_contracts (property_id, start_date, end_date, duration_months, status,
			security_deposit, special_conditions, notification_contact, notification_days,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`
	err = tx.QueryRowContext(ctx, query,
		contract.PropertyID, contract.StartDate, contract.EndDate, contract.DurationMonths, contract.Status,
		contract.SecurityDeposit, contract.SpecialConditions, contract.NotificationContact, contract.NotificationDays,
		contract.CreatedAt, contract.UpdatedAt,
	).Scan(&contract.ID)
	if err != nil {
		return translateError(err)
	}

	if err := tx.Commit(); err != nil {
		return translateError(err)
	}
	return nil
}

func (r *rentalContractRepository) GetByID(ctx context.Context, id int64) (*domain.RentalContract, error) {
	query := `SELECT ` + contractColumns + ` FROM rental_contracts WHERE id = $1`
	c, err := scanContract(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrContractNotFound
		}
		return nil, fmt.Errorf("failed to get contract: %w", err)
	}
	return &c, nil
}

func (r *rentalContractRepository) List(ctx context.Context, page domain.PageRequest) ([]domain.RentalContract, int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM rental_contracts`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count contracts: %w", err)
	}

	w := &where{}
	limit, args := w.limit(page)
	query := `SELECT ` + contractColumns + ` FROM rental_contracts` + orderBy(page, contractSortColumns) + limit
	contracts, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return contracts, total, nil
}

func (r *rentalContractRepository) Update(ctx context.Context, contract *domain.RentalContract) error {
	query := `
		UPDATE rental_contracts
		SET property_id = $2, start_date = $3, end_date = $4, duration_months = $5, status = $6,
			security_deposit = $7, special_conditions = $8, notification_contact = $9,
			notification_days = $10, updated_at = $11
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query,
		contract.ID, contract.PropertyID, contract.StartDate, contract.EndDate, contract.DurationMonths, contract.Status,
		contract.SecurityDeposit, contract.SpecialConditions, contract.NotificationContact,
		contract.NotificationDays, contract.UpdatedAt,
	)
	if err != nil {
		return translateError(err)
	}
	return expectAffected(res, domain.ErrContractNotFound)
}

func (r *rentalContractRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM rental_contracts WHERE id = $1`, id)
	if err != nil {
		return translateError(err)
	}
	return expectAffected(res, domain.ErrContractNotFound)
}

func (r *rentalContractRepository) ExistsActiveByProperty(ctx context.Context, propertyID, excludeID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM rental_contracts WHERE property_id = $1 AND status = 'ACTIVO' AND id <> $2)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, query, propertyID, excludeID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *rentalContractRepository) ListByProperty(ctx context.Context, propertyID int64) ([]domain.RentalContract, error) {
	query := `SELECT ` + contractColumns + ` FROM rental_contracts WHERE property_id = $1 ORDER BY start_date DESC, id DESC`
	return r.query(ctx, query, propertyID)
}

func (r *rentalContractRepository) ListByStatus(ctx context.Context, status domain.ContractStatus) ([]domain.RentalContract, error) {
	query := `SELECT ` + contractColumns + ` FROM rental_contracts WHERE status = $1 ORDER BY end_date, id`
	return r.query(ctx, query, status)
}

func (r *rentalContractRepository) ListEndingBetween(ctx context.Context, start, end time.Time) ([]domain.RentalContract, error) {
	query := `SELECT ` + contractColumns + ` FROM rental_contracts WHERE end_date BETWEEN $1 AND $2 ORDER BY end_date, id`
	return r.query(ctx, query, start, end)
}

func (r *rentalContractRepository) ListActiveEndingBefore(ctx context.Context, before time.Time) ([]domain.RentalContract, error) {
	query := `SELECT ` + contractColumns + ` FROM rental_contracts WHERE status = 'ACTIVO' AND end_date <= $1 ORDER BY end_date, id`
	return r.query(ctx, query, before)
}

func (r *rentalContractRepository) ListActiveInNoticeWindow(ctx context.Context, now time.Time, defaultDays int) ([]domain.RentalContract, error) {
	query := `SELECT ` + contractColumns + ` FROM rental_contracts
		WHERE status = 'ACTIVO'
		AND end_date - make_interval(days => CASE WHEN notification_days > 0 THEN notification_days ELSE $2::int END) <= $1
		ORDER BY end_date, id`
	return r.query(ctx, query, now, defaultDays)
}

func (r *rentalContractRepository) MarkExpired(ctx context.Context, now time.Time) (int64, error) {
	query := `UPDATE rental_contracts SET status = 'VENCIDO', updated_at = $1 WHERE status = 'ACTIVO' AND end_date < $1`
	res, err := r.db.ExecContext(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("failed to mark expired contracts: %w", err)
	}
	return res.RowsAffected()
}

func (r *rentalContractRepository) query(ctx context.Context, query string, args ...any) ([]domain.RentalContract, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query contracts: %w", err)
	}
	defer rows.Close()

	contracts := make([]domain.RentalContract, 0)
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contract: %w", err)
		}
		contracts = append(contracts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contracts: %w", err)
	}
	return contracts, nil
}

func expectAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}
