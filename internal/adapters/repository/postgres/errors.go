package postgres

import (
	"errors"

	"github.com/lib/pq"

	"github.com/vncsmyrnk/rentas/internal/core/domain"
)

const (
	uniqueViolation     pq.ErrorCode = "23505"
	foreignKeyViolation pq.ErrorCode = "23503"
)

// constraintErrors maps unique constraints to the domain conflict they guard.
var constraintErrors = map[string]error{
	"users_username_key":                 domain.ErrUsernameTaken,
	"users_email_key":                    domain.ErrEmailTaken,
	"agencies_tax_id_key":                domain.ErrDuplicateTaxID,
	"ux_payment_concepts_name":           domain.ErrDuplicateConceptName,
	"ux_rental_contracts_active_property": domain.ErrActiveContractExists,
}

// translateError converts constraint violations into domain errors and
// returns any other error unchanged.
func translateError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch pqErr.Code {
	case uniqueViolation:
		if mapped, ok := constraintErrors[pqErr.Constraint]; ok {
			return mapped
		}
		return errors.Join(domain.ErrConflict, err)
	case foreignKeyViolation:
		return domain.ErrInUse
	}
	return err
}
