package domain

import "time"

type AgencyStatus string

const (
	AgencyActive    AgencyStatus = "ACTIVA"
	AgencyInactive  AgencyStatus = "INACTIVA"
	AgencySuspended AgencyStatus = "SUSPENDIDA"
)

func (s AgencyStatus) Valid() bool {
	switch s {
	case AgencyActive, AgencyInactive, AgencySuspended:
		return true
	}
	return false
}

// Agency is a real-estate agency (inmobiliaria).
type Agency struct {
	ID           int64        `json:"id"`
	Name         string       `json:"name"`
	TaxID        string       `json:"tax_id"`
	ContactName  *string      `json:"contact_name,omitempty"`
	Email        *string      `json:"email,omitempty"`
	Phone        *string      `json:"phone,omitempty"`
	Address      *string      `json:"address,omitempty"`
	Status       AgencyStatus `json:"status"`
	RegisteredAt time.Time    `json:"registered_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

type AgencyFilter struct {
	Name   string
	Status AgencyStatus
}
