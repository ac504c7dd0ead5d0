package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/vncsmyrnk/rentas/internal/core/domain"
	"github.com/vncsmyrnk/rentas/internal/core/ports"
)

type agencyService struct {
	repo ports.AgencyRepository
}

func NewAgencyService(repo ports.AgencyRepository) ports.AgencyService {
	return &agencyService{repo: repo}
}

func (s *agencyService) Create(ctx context.Context, input ports.CreateAgencyInput) (*domain.Agency, error) {
	taxID := strings.ToUpper(strings.TrimSpace(input.TaxID))
	if err := s.ensureUniqueTaxID(ctx, taxID, 0); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	agency := &domain.Agency{
		Name:         strings.TrimSpace(input.Name),
		TaxID:        taxID,
		ContactName:  input.ContactName,
		Email:        input.Email,
		Phone:        input.Phone,
		Address:      input.Address,
		Status:       domain.AgencyActive,
		RegisteredAt: now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, agency); err != nil {
		return nil, err
	}
	return agency, nil
}

func (s *agencyService) Get(ctx context.Context, id int64) (*domain.Agency, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *agencyService) List(ctx context.Context, filter domain.AgencyFilter, page domain.PageRequest) (domain.Page[domain.Agency], error) {
	page = page.Normalize()
	agencies, total, err := s.repo.List(ctx, filter, page)
	if err != nil {
		return domain.Page[domain.Agency]{}, fmt.Errorf("failed to list agencies: %w", err)
	}
	return domain.NewPage(agencies, page, total), nil
}

func (s *agencyService) Update(ctx context.Context, id int64, input ports.UpdateAgencyInput) (*domain.Agency, error) {
	agency, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.TaxID != nil {
		taxID := strings.ToUpper(strings.TrimSpace(*input.TaxID))
		if taxID != agency.TaxID {
			if err := s.ensureUniqueTaxID(ctx, taxID, agency.ID); err != nil {
				return nil, err
			}
		}
		agency.TaxID = taxID
	}
	if input.Name != nil {
		agency.Name = strings.TrimSpace(*input.Name)
	}
	if input.ContactName != nil {
		agency.ContactName = input.ContactName
	}
	if input.Email != nil {
		agency.Email = input.Email
	}
	if input.Phone != nil {
		agency.Phone = input.Phone
	}
	if input.Address != nil {
		agency.Address = input.Address
	}
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, domain.NewValidationError("status", "must be one of ACTIVA, INACTIVA, SUSPENDIDA")
		}
		agency.Status = *input.Status
	}
	agency.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, agency); err != nil {
		return nil, err
	}
	return agency, nil
}

func (s *agencyService) ChangeStatus(ctx context.Context, id int64, status domain.AgencyStatus) (*domain.Agency, error) {
	return s.Update(ctx, id, ports.UpdateAgencyInput{Status: &status})
}

func (s *agencyService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *agencyService) ensureUniqueTaxID(ctx context.Context, taxID string, excludeID int64) error {
	exists, err := s.repo.ExistsByTaxID(ctx, taxID, excludeID)
	if err != nil {
		return fmt.Errorf("failed to check tax id: %w", err)
	}
	if exists {
		return domain.ErrDuplicateTaxID
	}
	return nil
}
