package domain

import "time"

type SurchargeType string

const (
	SurchargePercentage SurchargeType = "PORCENTAJE"
	SurchargeFixed      SurchargeType = "MONTO_FIJO"
)

func (t SurchargeType) Valid() bool {
	return t == SurchargePercentage || t == SurchargeFixed
}

// SurchargeConfig is a late-fee policy (configuración de recargos).
type SurchargeConfig struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Type        SurchargeType `json:"type"`
	Value       float64       `json:"value"`
	GraceDays   int           `json:"grace_days"`
	MaxAmount   *float64      `json:"max_amount,omitempty"`
	Active      bool          `json:"active"`
	Description *string       `json:"description,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// Validate checks value bounds that depend on the surcharge type.
func (s *SurchargeConfig) Validate() error {
	if !s.Type.Valid() {
		return NewValidationError("type", "must be one of PORCENTAJE, MONTO_FIJO")
	}
	if s.Value <= 0 {
		return NewValidationError("value", "must be greater than 0")
	}
	if s.Type == SurchargePercentage && s.Value > 100 {
		return NewValidationError("value", "percentage must not exceed 100")
	}
	if s.GraceDays < 0 {
		return NewValidationError("grace_days", "must not be negative")
	}
	if s.MaxAmount != nil && *s.MaxAmount <= 0 {
		return NewValidationError("max_amount", "must be greater than 0")
	}
	return nil
}

// Amount computes the surcharge owed for a late payment of base that is
// daysLate days past due.
func (s *SurchargeConfig) Amount(base float64, daysLate int) float64 {
	if !s.Active || daysLate <= s.GraceDays {
		return 0
	}
	amount := s.Value
	if s.Type == SurchargePercentage {
		amount = base * s.Value / 100
	}
	if s.MaxAmount != nil && amount > *s.MaxAmount {
		amount = *s.MaxAmount
	}
	return amount
}

type SurchargeConfigFilter struct {
	Active *bool
}
