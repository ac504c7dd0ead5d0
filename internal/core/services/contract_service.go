package services

import (
	"context"
	"fmt"
	"time"

	"github.com/vncsmyrnk/rentas/internal/core/domain"
	"github.com/vncsmyrnk/rentas/internal/core/ports"
)

type rentalContractService struct {
	repo                    ports.RentalContractRepository
	properties              ports.PropertyChecker
	defaultNotificationDays int
	now                     func() time.Time
}

func NewRentalContractService(repo ports.RentalContractRepository, properties ports.PropertyChecker, defaultNotificationDays int) ports.RentalContractService {
	return newRentalContractService(repo, properties, defaultNotificationDays)
}

func NewContractExpirationService(repo ports.RentalContractRepository, defaultNotificationDays int) ports.ContractExpirationService {
	return newRentalContractService(repo, nil, defaultNotificationDays)
}

func newRentalContractService(repo ports.RentalContractRepository, properties ports.PropertyChecker, defaultNotificationDays int) *rentalContractService {
	return &rentalContractService{
		repo:                    repo,
		properties:              properties,
		defaultNotificationDays: defaultNotificationDays,
		now:                     func() time.Time { return time.Now().UTC() },
	}
}

func (s *rentalContractService) Create(ctx context.Context, input ports.CreateContractInput) (*domain.RentalContract, error) {
	if input.DurationMonths < 1 {
		return nil, domain.NewValidationError("duration_months", "must be at least 1")
	}
	if input.StartDate.IsZero() {
		return nil, domain.NewValidationError("start_date", "is required")
	}

	if err := s.ensurePropertyExists(ctx, input.PropertyID); err != nil {
		return nil, err
	}

	active, err := s.repo.ExistsActiveByProperty(ctx, input.PropertyID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to check active contracts: %w", err)
	}
	if active {
		return nil, domain.ErrActiveContractExists
	}

	contract := domain.NewRentalContract(input.PropertyID, input.StartDate, input.DurationMonths, s.now())
	contract.SecurityDeposit = input.SecurityDeposit
	contract.SpecialConditions = input.SpecialConditions
	contract.NotificationContact = input.NotificationContact
	contract.NotificationDays = input.NotificationDays

	if err := s.repo.CreateActive(ctx, contract); err != nil {
		return nil, err
	}

	return contract, nil
}

func (s *rentalContractService) Get(ctx context.Context, id int64) (*domain.RentalContract, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *rentalContractService) List(ctx context.Context, page domain.PageRequest) (domain.Page[domain.RentalContract], error) {
	page = page.Normalize()
	contracts, total, err := s.repo.List(ctx, page)
	if err != nil {
		return domain.Page[domain.RentalContract]{}, fmt.Errorf("failed to list contracts: %w", err)
	}
	return domain.NewPage(contracts, page, total), nil
}

func (s *rentalContractService) Update(ctx context.Context, id int64, input ports.UpdateContractInput) (*domain.RentalContract, error) {
	contract, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	recompute := false
	recheck := false

	if input.PropertyID != nil && *input.PropertyID != contract.PropertyID {
		if err := s.ensurePropertyExists(ctx, *input.PropertyID); err != nil {
			return nil, err
		}
		contract.PropertyID = *input.PropertyID
		recheck = true
	}
	if input.StartDate != nil {
		contract.StartDate = *input.StartDate
		recompute = true
	}
	if input.DurationMonths != nil {
		if *input.DurationMonths < 1 {
			return nil, domain.NewValidationError("duration_months", "must be at least 1")
		}
		contract.DurationMonths = *input.DurationMonths
		recompute = true
	}
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, domain.NewValidationError("status", "must be one of ACTIVO, VENCIDO, TERMINADO, SUSPENDIDO")
		}
		if *input.Status == domain.ContractActive && contract.Status != domain.ContractActive {
			recheck = true
		}
		contract.Status = *input.Status
	}
	if input.SecurityDeposit != nil {
		contract.SecurityDeposit = input.SecurityDeposit
	}
	if input.SpecialConditions != nil {
		contract.SpecialConditions = input.SpecialConditions
	}
	if input.NotificationContact != nil {
		contract.NotificationContact = input.NotificationContact
	}
	if input.NotificationDays != nil {
		contract.NotificationDays = input.NotificationDays
	}

	if recheck && contract.IsActive() {
		active, err := s.repo.ExistsActiveByProperty(ctx, contract.PropertyID, contract.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check active contracts: %w", err)
		}
		if active {
			return nil, domain.ErrActiveContractExists
		}
	}

	if recompute {
		contract.RecomputeEndDate()
	}
	contract.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, contract); err != nil {
		return nil, err
	}
	return contract, nil
}

func (s *rentalContractService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *rentalContractService) Terminate(ctx context.Context, id int64) (*domain.RentalContract, error) {
	contract, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	changed, err := contract.Terminate(s.now())
	if err != nil {
		return nil, err
	}
	if !changed {
		return contract, nil
	}

	if err := s.repo.Update(ctx, contract); err != nil {
		return nil, err
	}
	return contract, nil
}

func (s *rentalContractService) Renew(ctx context.Context, id int64, months int) (*domain.RentalContract, error) {
	contract, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := contract.Renew(months, s.now()); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, contract); err != nil {
		return nil, err
	}
	return contract, nil
}

func (s *rentalContractService) ListByProperty(ctx context.Context, propertyID int64) ([]domain.RentalContract, error) {
	return s.repo.ListByProperty(ctx, propertyID)
}

func (s *rentalContractService) ListByStatus(ctx context.Context, status domain.ContractStatus) ([]domain.RentalContract, error) {
	if !status.Valid() {
		return nil, domain.NewValidationError("estatus", "must be one of ACTIVO, VENCIDO, TERMINADO, SUSPENDIDO")
	}
	return s.repo.ListByStatus(ctx, status)
}

func (s *rentalContractService) ListExpiringBetween(ctx context.Context, start, end time.Time) ([]domain.RentalContract, error) {
	if end.Before(start) {
		return nil, domain.NewValidationError("endDate", "must not be before startDate")
	}
	return s.repo.ListEndingBetween(ctx, start, end)
}

func (s *rentalContractService) ListActiveExpiringBefore(ctx context.Context, before time.Time) ([]domain.RentalContract, error) {
	return s.repo.ListActiveEndingBefore(ctx, before)
}

// ListNeedingNotification keeps active contracts whose per-contract notice
// window is open. The database narrows the candidates and the domain
// predicate has the final word.
func (s *rentalContractService) ListNeedingNotification(ctx context.Context) ([]domain.RentalContract, error) {
	now := s.now()
	active, err := s.repo.ListActiveInNoticeWindow(ctx, now, s.defaultNotificationDays)
	if err != nil {
		return nil, fmt.Errorf("failed to list active contracts: %w", err)
	}

	pending := make([]domain.RentalContract, 0)
	for _, c := range active {
		if domain.NeedsNotification(now, c.Status, c.EndDate, c.NotificationLeadDays(s.defaultNotificationDays)) {
			pending = append(pending, c)
		}
	}
	return pending, nil
}

// ExpireOverdue moves active contracts whose end date has passed to VENCIDO.
func (s *rentalContractService) ExpireOverdue(ctx context.Context) (int64, error) {
	n, err := s.repo.MarkExpired(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("failed to expire contracts: %w", err)
	}
	return n, nil
}

func (s *rentalContractService) PendingNotifications(ctx context.Context) ([]domain.RentalContract, error) {
	return s.ListNeedingNotification(ctx)
}

func (s *rentalContractService) ensurePropertyExists(ctx context.Context, propertyID int64) error {
	exists, err := s.properties.Exists(ctx, propertyID)
	if err != nil {
		return fmt.Errorf("failed to check property: %w", err)
	}
	if !exists {
		return domain.ErrPropertyNotFound
	}
	return nil
}
