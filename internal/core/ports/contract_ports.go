package ports

import (
	"context"
	"time"

	"github.com/vncsmyrnk/rentas/internal/core/domain"
)

type RentalContractRepository interface {
	// CreateActive inserts an ACTIVO contract, serializing against concurrent
	// creations for the same property.
	CreateActive(ctx context.Context, contract *domain.RentalContract) error
	GetByID(ctx context.Context, id int64) (*domain.RentalContract, error)
	List(ctx context.Context, page domain.PageRequest) ([]domain.RentalContract, int64, error)
	Update(ctx context.Context, contract *domain.RentalContract) error
	Delete(ctx context.Context, id int64) error
	ExistsActiveByProperty(ctx context.Context, propertyID, excludeID int64) (bool, error)
	ListByProperty(ctx context.Context, propertyID int64) ([]domain.RentalContract, error)
	ListByStatus(ctx context.Context, status domain.ContractStatus) ([]domain.RentalContract, error)
	ListEndingBetween(ctx context.Context, start, end time.Time) ([]domain.RentalContract, error)
	ListActiveEndingBefore(ctx context.Context, before time.Time) ([]domain.RentalContract, error)
	// ListActiveInNoticeWindow returns active contracts whose end date minus
	// their lead days (defaultDays when unset) is not after now.
	ListActiveInNoticeWindow(ctx context.Context, now time.Time, defaultDays int) ([]domain.RentalContract, error)
	MarkExpired(ctx context.Context, now time.Time) (int64, error)
}

// PropertyChecker answers whether a property exists.
type PropertyChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type CreateContractInput struct {
	PropertyID          int64
	StartDate           time.Time
	DurationMonths      int
	SecurityDeposit     *float64
	SpecialConditions   *string
	NotificationContact *string
	NotificationDays    *int
}

type UpdateContractInput struct {
	PropertyID          *int64
	StartDate           *time.Time
	DurationMonths      *int
	Status              *domain.ContractStatus
	SecurityDeposit     *float64
	SpecialConditions   *string
	NotificationContact *string
	NotificationDays    *int
}

type RentalContractService interface {
	Create(ctx context.Context, input CreateContractInput) (*domain.RentalContract, error)
	Get(ctx context.Context, id int64) (*domain.RentalContract, error)
	List(ctx context.Context, page domain.PageRequest) (domain.Page[domain.RentalContract], error)
	Update(ctx context.Context, id int64, input UpdateContractInput) (*domain.RentalContract, error)
	Delete(ctx context.Context, id int64) error
	Terminate(ctx context.Context, id int64) (*domain.RentalContract, error)
	Renew(ctx context.Context, id int64, months int) (*domain.RentalContract, error)
	ListByProperty(ctx context.Context, propertyID int64) ([]domain.RentalContract, error)
	ListByStatus(ctx context.Context, status domain.ContractStatus) ([]domain.RentalContract, error)
	ListExpiringBetween(ctx context.Context, start, end time.Time) ([]domain.RentalContract, error)
	ListActiveExpiringBefore(ctx context.Context, before time.Time) ([]domain.RentalContract, error)
	ListNeedingNotification(ctx context.Context) ([]domain.RentalContract, error)
}

type ContractExpirationService interface {
	ExpireOverdue(ctx context.Context) (int64, error)
	PendingNotifications(ctx context.Context) ([]domain.RentalContract, error)
}
