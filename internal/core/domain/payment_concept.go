package domain

import "time"

type ConceptType string

const (
	ConceptRent        ConceptType = "RENTA"
	ConceptService     ConceptType = "SERVICIO"
	ConceptDeposit     ConceptType = "DEPOSITO"
	ConceptMaintenance ConceptType = "MANTENIMIENTO"
	ConceptFine        ConceptType = "MULTA"
	ConceptOther       ConceptType = "OTRO"
)

func (t ConceptType) Valid() bool {
	switch t {
	case ConceptRent, ConceptService, ConceptDeposit, ConceptMaintenance, ConceptFine, ConceptOther:
		return true
	}
	return false
}

type Periodicity string

const (
	PeriodicityOnce      Periodicity = "UNICO"
	PeriodicityMonthly   Periodicity = "MENSUAL"
	PeriodicityBimonthly Periodicity = "BIMESTRAL"
	PeriodicityYearly    Periodicity = "ANUAL"
)

func (p Periodicity) Valid() bool {
	switch p {
	case PeriodicityOnce, PeriodicityMonthly, PeriodicityBimonthly, PeriodicityYearly:
		return true
	}
	return false
}

// PaymentConcept is a billable category (concepto de pago).
type PaymentConcept struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Description *string     `json:"description,omitempty"`
	Type        ConceptType `json:"type"`
	Periodicity Periodicity `json:"periodicity"`
	Active      bool        `json:"active"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

type PaymentConceptFilter struct {
	Type   ConceptType
	Active *bool
}
