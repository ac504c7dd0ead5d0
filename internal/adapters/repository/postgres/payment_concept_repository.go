package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vncsmyrnk/rentas/internal/core/domain"
	"github.com/vncsmyrnk/rentas/internal/core/ports"
)

type paymentConceptRepository struct {
	db *sql.DB
}

func NewPaymentConceptRepository(db *sql.DB) ports.PaymentConceptRepository {
	return &paymentConceptRepository{db: db}
}

const conceptColumns = `id, name, description, type, periodicity, active, created_at, updated_at`

var conceptSortColumns = map[string]string{
	"id":        "id",
	"name":      "name",
	"nombre":    "name",
	"type":      "type",
	"createdAt": "created_at",
}

func scanConcept(row rowScanner) (domain.PaymentConcept, error) {
	var c domain.PaymentConcept
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.Type, &c.Periodicity, &c.Active, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (r *paymentConceptRepository) Create(ctx context.Context, concept *domain.PaymentConcept) error {
	query := `
		INSERT INTO payment_concepts (name, description, type, periodicity, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		concept.Name, concept.Description, concept.Type, concept.Periodicity, concept.Active,
		concept.CreatedAt, concept.UpdatedAt,
	).Scan(&concept.ID)
	if err != nil {
		return translateError(err)
	}
	return nil
}

func (r *paymentConceptRepository) GetByID(ctx context.Context, id int64) (*domain.PaymentConcept, error) {
	c, err := scanConcept(r.db.QueryRowContext(ctx, `SELECT `+conceptColumns+` FROM payment_concepts WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPaymentConceptNotFound
		}
		return nil, fmt.Errorf("failed to get payment concept: %w", err)
	}
	return &c, nil
}

func (r *paymentConceptRepository) List(ctx context.Context, filter domain.PaymentConceptFilter, page domain.PageRequest) ([]domain.PaymentConcept, int64, error) {
	w := &where{}
	if filter.Type != "" {
		w.add("type = $%d", filter.Type)
	}
	if filter.Active != nil {
		w.add("active = $%d", *filter.Active)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM payment_concepts`+w.String(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payment concepts: %w", err)
	}

	limit, args := w.limit(page)
	rows, err := r.db.QueryContext(ctx, `SELECT `+conceptColumns+` FROM payment_concepts`+w.String()+orderBy(page, conceptSortColumns)+limit, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payment concepts: %w", err)
	}
	defer rows.Close()

	concepts := make([]domain.PaymentConcept, 0)
	for rows.Next() {
		c, err := scanConcept(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payment concept: %w", err)
		}
		concepts = append(concepts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating payment concepts: %w", err)
	}
	return concepts, total, nil
}

func (r *paymentConceptRepository) Update(ctx context.Context, concept *domain.PaymentConcept) error {
	query := `
		UPDATE payment_concepts
		SET name = $2, description = $3, type = $4, periodicity = $5, active = $6, updated_at = $7
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query,
		concept.ID, concept.Name, concept.Description, concept.Type, concept.Periodicity, concept.Active, concept.UpdatedAt,
	)
	if err != nil {
		return translateError(err)
	}
	return expectAffected(res, domain.ErrPaymentConceptNotFound)
}

func (r *paymentConceptRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM payment_concepts WHERE id = $1`, id)
	if err != nil {
		return translateError(err)
	}
	return expectAffected(res, domain.ErrPaymentConceptNotFound)
}

func (r *paymentConceptRepository) ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM payment_concepts WHERE LOWER(name) = LOWER($1) AND id <> $2)`, name, excludeID,
	).Scan(&exists)
	return exists, err
}
