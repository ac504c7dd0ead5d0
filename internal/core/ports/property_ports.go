package ports

import (
	"context"

	"github.com/vncsmyrnk/rentas/internal/core/domain"
)

type PropertyRepository interface {
	PropertyChecker
	Create(ctx context.Context, property *domain.Property) error
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
	List(ctx context.Context, filter domain.PropertyFilter, page domain.PageRequest) ([]domain.Property, int64, error)
	Update(ctx context.Context, property *domain.Property) error
	Delete(ctx context.Context, id int64) error
}

// AgencyChecker answers whether an agency exists.
type AgencyChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type CreatePropertyInput struct {
	AgencyID    int64
	Title       string
	Address     string
	Type        domain.PropertyType
	AreaM2      *float64
	Bedrooms    *int
	Bathrooms   *int
	MonthlyRent float64
	Status      *domain.PropertyStatus
	Description *string
}

type UpdatePropertyInput struct {
	AgencyID    *int64
	Title       *string
	Address     *string
	Type        *domain.PropertyType
	AreaM2      *float64
	Bedrooms    *int
	Bathrooms   *int
	MonthlyRent *float64
	Status      *domain.PropertyStatus
	Description *string
}

type PropertyService interface {
	Create(ctx context.Context, input CreatePropertyInput) (*domain.Property, error)
	Get(ctx context.Context, id int64) (*domain.Property, error)
	List(ctx context.Context, filter domain.PropertyFilter, page domain.PageRequest) (domain.Page[domain.Property], error)
	Update(ctx context.Context, id int64, input UpdatePropertyInput) (*domain.Property, error)
	Delete(ctx context.Context, id int64) error
}
