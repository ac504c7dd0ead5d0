package ports

import (
	"context"

	"github.com/vncsmyrnk/rentas/internal/core/domain"
)

type SurchargeConfigRepository interface {
	Create(ctx context.Context, config *domain.SurchargeConfig) error
	GetByID(ctx context.Context, id int64) (*domain.SurchargeConfig, error)
	List(ctx context.Context, filter domain.SurchargeConfigFilter, page domain.PageRequest) ([]domain.SurchargeConfig, int64, error)
	Update(ctx context.Context, config *domain.SurchargeConfig) error
	Delete(ctx context.Context, id int64) error
}

type CreateSurchargeConfigInput struct {
	Name        string
	Type        domain.SurchargeType
	Value       float64
	GraceDays   int
	MaxAmount   *float64
	Active      *bool
	Description *string
}

type UpdateSurchargeConfigInput struct {
	Name        *string
	Type        *domain.SurchargeType
	Value       *float64
	GraceDays   *int
	MaxAmount   *float64
	Active      *bool
	Description *string
}

type SurchargeConfigService interface {
	Create(ctx context.Context, input CreateSurchargeConfigInput) (*domain.SurchargeConfig, error)
	Get(ctx context.Context, id int64) (*domain.SurchargeConfig, error)
	List(ctx context.Context, filter domain.SurchargeConfigFilter, page domain.PageRequest) (domain.Page[domain.SurchargeConfig], error)
	ListActive(ctx context.Context) ([]domain.SurchargeConfig, error)
	Update(ctx context.Context, id int64, input UpdateSurchargeConfigInput) (*domain.SurchargeConfig, error)
	Delete(ctx context.Context, id int64) error
}
