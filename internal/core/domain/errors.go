package domain

import (
	"errors"
	"sort"
	"strings"
)

// Categories. Every specific error below wraps exactly one of them so the
// transport layer can translate with errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidToken = errors.New("invalid token")
	ErrInternal     = errors.New("internal server error")
)

var (
	ErrContractNotFound        = newError(ErrNotFound, "rental contract not found")
	ErrPropertyNotFound        = newError(ErrNotFound, "property not found")
	ErrAgencyNotFound          = newError(ErrNotFound, "agency not found")
	ErrPaymentConceptNotFound  = newError(ErrNotFound, "payment concept not found")
	ErrSurchargeConfigNotFound = newError(ErrNotFound, "surcharge config not found")
	ErrUserNotFound            = newError(ErrNotFound, "user not found")

	ErrActiveContractExists = newError(ErrConflict, "property already has an active contract")
	ErrUsernameTaken        = newError(ErrConflict, "username is already taken")
	ErrEmailTaken           = newError(ErrConflict, "email is already in use")
	ErrDuplicateTaxID       = newError(ErrConflict, "an agency with this tax id already exists")
	ErrDuplicateConceptName = newError(ErrConflict, "a payment concept with this name already exists")
	ErrInUse                = newError(ErrConflict, "entity is referenced by other records")

	ErrContractNotActive = newError(ErrValidation, "contract is not active")

	ErrInvalidCredentials = newError(ErrUnauthorized, "invalid username or password")
	ErrUserDisabled       = newError(ErrUnauthorized, "user is disabled")

	ErrTokenExpired          = newError(ErrInvalidToken, "token expired")
	ErrTokenMalformed        = newError(ErrInvalidToken, "token malformed")
	ErrTokenInvalidSignature = newError(ErrInvalidToken, "token signature invalid")
)

// categorized is an error with its own message that still matches its
// category through errors.Is.
type categorized struct {
	category error
	msg      string
}

func newError(category error, msg string) error {
	return &categorized{category: category, msg: msg}
}

func (e *categorized) Error() string { return e.msg }

func (e *categorized) Unwrap() error { return e.category }

// ValidationError carries field-level messages. It matches ErrValidation.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}

	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, ", ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
