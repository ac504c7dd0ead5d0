package domain

import "time"

type PropertyType string

const (
	PropertyHouse     PropertyType = "CASA"
	PropertyApartment PropertyType = "DEPARTAMENTO"
	PropertyOffice    PropertyType = "OFICINA"
	PropertyRetail    PropertyType = "LOCAL_COMERCIAL"
	PropertyWarehouse PropertyType = "BODEGA"
	PropertyLand      PropertyType = "TERRENO"
)

func (t PropertyType) Valid() bool {
	switch t {
	case PropertyHouse, PropertyApartment, PropertyOffice, PropertyRetail, PropertyWarehouse, PropertyLand:
		return true
	}
	return false
}

type PropertyStatus string

const (
	PropertyAvailable   PropertyStatus = "DISPONIBLE"
	PropertyRented      PropertyStatus = "RENTADA"
	PropertyMaintenance PropertyStatus = "MANTENIMIENTO"
	PropertyInactive    PropertyStatus = "INACTIVA"
)

func (s PropertyStatus) Valid() bool {
	switch s {
	case PropertyAvailable, PropertyRented, PropertyMaintenance, PropertyInactive:
		return true
	}
	return false
}

// Property is a unit managed by an agency (propiedad).
type Property struct {
	ID          int64          `json:"id"`
	AgencyID    int64          `json:"agency_id"`
	Title       string         `json:"title"`
	Address     string         `json:"address"`
	Type        PropertyType   `json:"type"`
	AreaM2      *float64       `json:"area_m2,omitempty"`
	Bedrooms    *int           `json:"bedrooms,omitempty"`
	Bathrooms   *int           `json:"bathrooms,omitempty"`
	MonthlyRent float64        `json:"monthly_rent"`
	Status      PropertyStatus `json:"status"`
	Description *string        `json:"description,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

type PropertyFilter struct {
	AgencyID int64
	Type     PropertyType
	Status   PropertyStatus
}
