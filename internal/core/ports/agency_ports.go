package ports

import (
	"context"

	"github.com/vncsmyrnk/rentas/internal/core/domain"
)

type AgencyRepository interface {
	Create(ctx context.Context, agency *domain.Agency) error
	GetByID(ctx context.Context, id int64) (*domain.Agency, error)
	List(ctx context.Context, filter domain.AgencyFilter, page domain.PageRequest) ([]domain.Agency, int64, error)
	Update(ctx context.Context, agency *domain.Agency) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
	ExistsByTaxID(ctx context.Context, taxID string, excludeID int64) (bool, error)
}

type CreateAgencyInput struct {
	Name        string
	TaxID       string
	ContactName *string
	Email       *string
	Phone       *string
	Address     *string
}

type UpdateAgencyInput struct {
	Name        *string
	TaxID       *string
	ContactName *string
	Email       *string
	Phone       *string
	Address     *string
	Status      *domain.AgencyStatus
}

type AgencyService interface {
	Create(ctx context.Context, input CreateAgencyInput) (*domain.Agency, error)
	Get(ctx context.Context, id int64) (*domain.Agency, error)
	List(ctx context.Context, filter domain.AgencyFilter, page domain.PageRequest) (domain.Page[domain.Agency], error)
	Update(ctx context.Context, id int64, input UpdateAgencyInput) (*domain.Agency, error)
	ChangeStatus(ctx context.Context, id int64, status domain.AgencyStatus) (*domain.Agency, error)
	Delete(ctx context.Context, id int64) error
}
