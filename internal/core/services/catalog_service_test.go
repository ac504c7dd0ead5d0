package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vncsmyrnk/rentas/internal/core/domain"
	"github.com/vncsmyrnk/rentas/internal/core/ports"
)

func TestAgencyService(t *testing.T) {
	ctx := context.Background()

	t.Run("create normalizes tax id and defaults status", func(t *testing.T) {
		repo := new(mockAgencyRepo)
		svc := NewAgencyService(repo)

		repo.On("ExistsByTaxID", ctx, "ABC123", int64(0)).Return(false, nil)
		repo.On("Create", ctx, mock.AnythingOfType("*domain.Agency")).Return(nil)

		agency, err := svc.Create(ctx, ports.CreateAgencyInput{Name: "Centro", TaxID: " abc123 "})
		require.NoError(t, err)
		assert.Equal(t, "ABC123", agency.TaxID)
		assert.Equal(t, domain.AgencyActive, agency.Status)
	})

	t.Run("duplicate tax id", func(t *testing.T) {
		repo := new(mockAgencyRepo)
		svc := NewAgencyService(repo)

		repo.On("ExistsByTaxID", ctx, "ABC123", int64(0)).Return(true, nil)

		_, err := svc.Create(ctx, ports.CreateAgencyInput{Name: "Centro", TaxID: "ABC123"})
		assert.ErrorIs(t, err, domain.ErrDuplicateTaxID)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("change status validates the value", func(t *testing.T) {
		repo := new(mockAgencyRepo)
		svc := NewAgencyService(repo)

		repo.On("GetByID", ctx, int64(1)).Return(&domain.Agency{ID: 1, TaxID: "ABC123", Status: domain.AgencyActive}, nil)

		_, err := svc.ChangeStatus(ctx, 1, "CERRADA")
		assert.ErrorIs(t, err, domain.ErrValidation)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("change status", func(t *testing.T) {
		repo := new(mockAgencyRepo)
		svc := NewAgencyService(repo)

		repo.On("GetByID", ctx, int64(1)).Return(&domain.Agency{ID: 1, TaxID: "ABC123", Status: domain.AgencyActive}, nil)
		repo.On("Update", ctx, mock.Anything).Return(nil)

		agency, err := svc.ChangeStatus(ctx, 1, domain.AgencySuspended)
		require.NoError(t, err)
		assert.Equal(t, domain.AgencySuspended, agency.Status)
	})
}

func TestPropertyService(t *testing.T) {
	ctx := context.Background()

	t.Run("create requires an existing agency", func(t *testing.T) {
		repo := new(mockPropertyRepo)
		agencies := new(mockChecker)
		svc := NewPropertyService(repo, agencies)

		agencies.On("Exists", ctx, int64(3)).Return(false, nil)

		_, err := svc.Create(ctx, ports.CreatePropertyInput{AgencyID: 3, Title: "Casa", Address: "Calle 1", Type: domain.PropertyHouse, MonthlyRent: 9000})
		assert.ErrorIs(t, err, domain.ErrAgencyNotFound)
	})

	t.Run("create defaults to available", func(t *testing.T) {
		repo := new(mockPropertyRepo)
		agencies := new(mockChecker)
		svc := NewPropertyService(repo, agencies)

		agencies.On("Exists", ctx, int64(3)).Return(true, nil)
		repo.On("Create", ctx, mock.AnythingOfType("*domain.Property")).Return(nil)

		property, err := svc.Create(ctx, ports.CreatePropertyInput{AgencyID: 3, Title: "Casa", Address: "Calle 1", Type: domain.PropertyHouse, MonthlyRent: 9000})
		require.NoError(t, err)
		assert.Equal(t, domain.PropertyAvailable, property.Status)
	})

	t.Run("unknown type", func(t *testing.T) {
		svc := NewPropertyService(new(mockPropertyRepo), new(mockChecker))

		_, err := svc.Create(ctx, ports.CreatePropertyInput{AgencyID: 3, Type: "CASTILLO"})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestPaymentConceptService(t *testing.T) {
	ctx := context.Background()

	t.Run("create applies defaults", func(t *testing.T) {
		repo := new(mockConceptRepo)
		svc := NewPaymentConceptService(repo)

		repo.On("ExistsByName", ctx, "Renta mensual", int64(0)).Return(false, nil)
		repo.On("Create", ctx, mock.Anything).Return(nil)

		concept, err := svc.Create(ctx, ports.CreatePaymentConceptInput{Name: " Renta mensual ", Type: domain.ConceptRent})
		require.NoError(t, err)
		assert.Equal(t, domain.PeriodicityMonthly, concept.Periodicity)
		assert.True(t, concept.Active)
	})

	t.Run("duplicate name", func(t *testing.T) {
		repo := new(mockConceptRepo)
		svc := NewPaymentConceptService(repo)

		repo.On("ExistsByName", ctx, "Agua", int64(0)).Return(true, nil)

		_, err := svc.Create(ctx, ports.CreatePaymentConceptInput{Name: "Agua", Type: domain.ConceptService})
		assert.ErrorIs(t, err, domain.ErrDuplicateConceptName)
	})

	t.Run("renaming with different case skips the uniqueness check", func(t *testing.T) {
		repo := new(mockConceptRepo)
		svc := NewPaymentConceptService(repo)

		repo.On("GetByID", ctx, int64(2)).Return(&domain.PaymentConcept{ID: 2, Name: "agua", Type: domain.ConceptService}, nil)
		repo.On("Update", ctx, mock.Anything).Return(nil)

		name := "Agua"
		concept, err := svc.Update(ctx, 2, ports.UpdatePaymentConceptInput{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "Agua", concept.Name)
		repo.AssertNotCalled(t, "ExistsByName", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestSurchargeConfigService(t *testing.T) {
	ctx := context.Background()

	t.Run("create validates before storing", func(t *testing.T) {
		repo := new(mockSurchargeRepo)
		svc := NewSurchargeConfigService(repo)

		_, err := svc.Create(ctx, ports.CreateSurchargeConfigInput{Name: "Mora", Type: domain.SurchargePercentage, Value: 150})
		assert.ErrorIs(t, err, domain.ErrValidation)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("list active asks for active configs only", func(t *testing.T) {
		repo := new(mockSurchargeRepo)
		svc := NewSurchargeConfigService(repo)

		repo.On("List", ctx, mock.MatchedBy(func(f domain.SurchargeConfigFilter) bool {
			return f.Active != nil && *f.Active
		}), mock.Anything).Return([]domain.SurchargeConfig(nil), int64(0), nil)

		configs, err := svc.ListActive(ctx)
		require.NoError(t, err)
		assert.NotNil(t, configs)
		assert.Empty(t, configs)
	})

	t.Run("update re-validates the merged config", func(t *testing.T) {
		repo := new(mockSurchargeRepo)
		svc := NewSurchargeConfigService(repo)

		repo.On("GetByID", ctx, int64(4)).Return(&domain.SurchargeConfig{ID: 4, Name: "Mora", Type: domain.SurchargeFixed, Value: 500, Active: true}, nil)

		percentage := domain.SurchargePercentage
		_, err := svc.Update(ctx, 4, ports.UpdateSurchargeConfigInput{Type: &percentage})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}
