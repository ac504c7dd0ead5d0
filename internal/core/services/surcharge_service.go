package services

import (
	"context"
	"fmt"
	"time"

	"github.com/vncsmyrnk/rentas/internal/core/domain"
	"github.com/vncsmyrnk/rentas/internal/core/ports"
)

type surchargeConfigService struct {
	repo ports.SurchargeConfigRepository
}

func NewSurchargeConfigService(repo ports.SurchargeConfigRepository) ports.SurchargeConfigService {
	return &surchargeConfigService{repo: repo}
}

func (s *surchargeConfigService) Create(ctx context.Context, input ports.CreateSurchargeConfigInput) (*domain.SurchargeConfig, error) {
	active := true
	if input.Active != nil {
		active = *input.Active
	}

	now := time.Now().UTC()
	config := &domain.SurchargeConfig{
		Name:        input.Name,
		Type:        input.Type,
		Value:       input.Value,
		GraceDays:   input.GraceDays,
		MaxAmount:   input.MaxAmount,
		Active:      active,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, config); err != nil {
		return nil, err
	}
	return config, nil
}

func (s *surchargeConfigService) Get(ctx context.Context, id int64) (*domain.SurchargeConfig, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *surchargeConfigService) List(ctx context.Context, filter domain.SurchargeConfigFilter, page domain.PageRequest) (domain.Page[domain.SurchargeConfig], error) {
	page = page.Normalize()
	configs, total, err := s.repo.List(ctx, filter, page)
	if err != nil {
		return domain.Page[domain.SurchargeConfig]{}, fmt.Errorf("failed to list surcharge configs: %w", err)
	}
	return domain.NewPage(configs, page, total), nil
}

func (s *surchargeConfigService) ListActive(ctx context.Context) ([]domain.SurchargeConfig, error) {
	active := true
	page := domain.PageRequest{Size: domain.MaxPageSize}.Normalize()
	configs, _, err := s.repo.List(ctx, domain.SurchargeConfigFilter{Active: &active}, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list active surcharge configs: %w", err)
	}
	if configs == nil {
		configs = []domain.SurchargeConfig{}
	}
	return configs, nil
}

func (s *surchargeConfigService) Update(ctx context.Context, id int64, input ports.UpdateSurchargeConfigInput) (*domain.SurchargeConfig, error) {
	config, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		config.Name = *input.Name
	}
	if input.Type != nil {
		config.Type = *input.Type
	}
	if input.Value != nil {
		config.Value = *input.Value
	}
	if input.GraceDays != nil {
		config.GraceDays = *input.GraceDays
	}
	if input.MaxAmount != nil {
		config.MaxAmount = input.MaxAmount
	}
	if input.Active != nil {
		config.Active = *input.Active
	}
	if input.Description != nil {
		config.Description = input.Description
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	config.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, config); err != nil {
		return nil, err
	}
	return config, nil
}

func (s *surchargeConfigService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
