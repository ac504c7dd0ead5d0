package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/vncsmyrnk/rentas/internal/core/domain"
	"github.com/vncsmyrnk/rentas/internal/core/ports"
)

type paymentConceptService struct {
	repo ports.PaymentConceptRepository
}

func NewPaymentConceptService(repo ports.PaymentConceptRepository) ports.PaymentConceptService {
	return &paymentConceptService{repo: repo}
}

func (s *paymentConceptService) Create(ctx context.Context, input ports.CreatePaymentConceptInput) (*domain.PaymentConcept, error) {
	if !input.Type.Valid() {
		return nil, domain.NewValidationError("type", "unknown concept type")
	}
	periodicity := input.Periodicity
	if periodicity == "" {
		periodicity = domain.PeriodicityMonthly
	}
	if !periodicity.Valid() {
		return nil, domain.NewValidationError("periodicity", "unknown periodicity")
	}

	name := strings.TrimSpace(input.Name)
	if err := s.ensureUniqueName(ctx, name, 0); err != nil {
		return nil, err
	}

	active := true
	if input.Active != nil {
		active = *input.Active
	}

	now := time.Now().UTC()
	concept := &domain.PaymentConcept{
		Name:        name,
		Description: input.Description,
		Type:        input.Type,
		Periodicity: periodicity,
		Active:      active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, concept); err != nil {
		return nil, err
	}
	return concept, nil
}

func (s *paymentConceptService) Get(ctx context.Context, id int64) (*domain.PaymentConcept, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *paymentConceptService) List(ctx context.Context, filter domain.PaymentConceptFilter, page domain.PageRequest) (domain.Page[domain.PaymentConcept], error) {
	page = page.Normalize()
	concepts, total, err := s.repo.List(ctx, filter, page)
	if err != nil {
		return domain.Page[domain.PaymentConcept]{}, fmt.Errorf("failed to list payment concepts: %w", err)
	}
	return domain.NewPage(concepts, page, total), nil
}

func (s *paymentConceptService) Update(ctx context.Context, id int64, input ports.UpdatePaymentConceptInput) (*domain.PaymentConcept, error) {
	concept, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if !strings.EqualFold(name, concept.Name) {
			if err := s.ensureUniqueName(ctx, name, concept.ID); err != nil {
				return nil, err
			}
		}
		concept.Name = name
	}
	if input.Description != nil {
		concept.Description = input.Description
	}
	if input.Type != nil {
		if !input.Type.Valid() {
			return nil, domain.NewValidationError("type", "unknown concept type")
		}
		concept.Type = *input.Type
	}
	if input.Periodicity != nil {
		if !input.Periodicity.Valid() {
			return nil, domain.NewValidationError("periodicity", "unknown periodicity")
		}
		concept.Periodicity = *input.Periodicity
	}
	if input.Active != nil {
		concept.Active = *input.Active
	}
	concept.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, concept); err != nil {
		return nil, err
	}
	return concept, nil
}

func (s *paymentConceptService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *paymentConceptService) ensureUniqueName(ctx context.Context, name string, excludeID int64) error {
	exists, err := s.repo.ExistsByName(ctx, name, excludeID)
	if err != nil {
		return fmt.Errorf("failed to check concept name: %w", err)
	}
	if exists {
		return domain.ErrDuplicateConceptName
	}
	return nil
}
