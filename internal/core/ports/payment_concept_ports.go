package ports

import (
	"context"

	"github.com/vncsmyrnk/rentas/internal/core/domain"
)

type PaymentConceptRepository interface {
	Create(ctx context.Context, concept *domain.PaymentConcept) error
	GetByID(ctx context.Context, id int64) (*domain.PaymentConcept, error)
	List(ctx context.Context, filter domain.PaymentConceptFilter, page domain.PageRequest) ([]domain.PaymentConcept, int64, error)
	Update(ctx context.Context, concept *domain.PaymentConcept) error
	Delete(ctx context.Context, id int64) error
	ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error)
}

type CreatePaymentConceptInput struct {
	Name        string
	Description *string
	Type        domain.ConceptType
	Periodicity domain.Periodicity
	Active      *bool
}

type UpdatePaymentConceptInput struct {
	Name        *string
	Description *string
	Type        *domain.ConceptType
	Periodicity *domain.Periodicity
	Active      *bool
}

type PaymentConceptService interface {
	Create(ctx context.Context, input CreatePaymentConceptInput) (*domain.PaymentConcept, error)
	Get(ctx context.Context, id int64) (*domain.PaymentConcept, error)
	List(ctx context.Context, filter domain.PaymentConceptFilter, page domain.PageRequest) (domain.Page[domain.PaymentConcept], error)
	Update(ctx context.Context, id int64, input UpdatePaymentConceptInput) (*domain.PaymentConcept, error)
	Delete(ctx context.Context, id int64) error
}
