package services

import (
	"context"
	"fmt"
	"time"

	"github.com/vncsmyrnk/rentas/internal/core/domain"
	"github.com/vncsmyrnk/rentas/internal/core/ports"
)

type propertyService struct {
	repo     ports.PropertyRepository
	agencies ports.AgencyChecker
}

func NewPropertyService(repo ports.PropertyRepository, agencies ports.AgencyChecker) ports.PropertyService {
	return &propertyService{
		repo:     repo,
		agencies: agencies,
	}
}

func (s *propertyService) Create(ctx context.Context, input ports.CreatePropertyInput) (*domain.Property, error) {
	if !input.Type.Valid() {
		return nil, domain.NewValidationError("type", "unknown property type")
	}
	if err := s.ensureAgencyExists(ctx, input.AgencyID); err != nil {
		return nil, err
	}

	status := domain.PropertyAvailable
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, domain.NewValidationError("status", "unknown property status")
		}
		status = *input.Status
	}

	now := time.Now().UTC()
	property := &domain.Property{
		AgencyID:    input.AgencyID,
		Title:       input.Title,
		Address:     input.Address,
		Type:        input.Type,
		AreaM2:      input.AreaM2,
		Bedrooms:    input.Bedrooms,
		Bathrooms:   input.Bathrooms,
		MonthlyRent: input.MonthlyRent,
		Status:      status,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

func (s *propertyService) Get(ctx context.Context, id int64) (*domain.Property, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *propertyService) List(ctx context.Context, filter domain.PropertyFilter, page domain.PageRequest) (domain.Page[domain.Property], error) {
	page = page.Normalize()
	properties, total, err := s.repo.List(ctx, filter, page)
	if err != nil {
		return domain.Page[domain.Property]{}, fmt.Errorf("failed to list properties: %w", err)
	}
	return domain.NewPage(properties, page, total), nil
}

func (s *propertyService) Update(ctx context.Context, id int64, input ports.UpdatePropertyInput) (*domain.Property, error) {
	property, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.AgencyID != nil && *input.AgencyID != property.AgencyID {
		if err := s.ensureAgencyExists(ctx, *input.AgencyID); err != nil {
			return nil, err
		}
		property.AgencyID = *input.AgencyID
	}
	if input.Title != nil {
		property.Title = *input.Title
	}
	if input.Address != nil {
		property.Address = *input.Address
	}
	if input.Type != nil {
		if !input.Type.Valid() {
			return nil, domain.NewValidationError("type", "unknown property type")
		}
		property.Type = *input.Type
	}
	if input.AreaM2 != nil {
		property.AreaM2 = input.AreaM2
	}
	if input.Bedrooms != nil {
		property.Bedrooms = input.Bedrooms
	}
	if input.Bathrooms != nil {
		property.Bathrooms = input.Bathrooms
	}
	if input.MonthlyRent != nil {
		property.MonthlyRent = *input.MonthlyRent
	}
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, domain.NewValidationError("status", "unknown property status")
		}
		property.Status = *input.Status
	}
	if input.Description != nil {
		property.Description = input.Description
	}
	property.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

func (s *propertyService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *propertyService) ensureAgencyExists(ctx context.Context, agencyID int64) error {
	exists, err := s.agencies.Exists(ctx, agencyID)
	if err != nil {
		return fmt.Errorf("failed to check agency: %w", err)
	}
	if !exists {
		return domain.ErrAgencyNotFound
	}
	return nil
}
