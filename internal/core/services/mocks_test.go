package services

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/vncsmyrnk/rentas/internal/core/domain"
)

type mockContractRepo struct {
	mock.Mock
}

func (m *mockContractRepo) CreateActive(ctx context.Context, contract *domain.RentalContract) error {
	args := m.Called(ctx, contract)
	return args.Error(0)
}

func (m *mockContractRepo) GetByID(ctx context.Context, id int64) (*domain.RentalContract, error) {
	args := m.Called(ctx, id)
	if c := args.Get(0); c != nil {
		return c.(*domain.RentalContract), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockContractRepo) List(ctx context.Context, page domain.PageRequest) ([]domain.RentalContract, int64, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]domain.RentalContract), args.Get(1).(int64), args.Error(2)
}

func (m *mockContractRepo) Update(ctx context.Context, contract *domain.RentalContract) error {
	args := m.Called(ctx, contract)
	return args.Error(0)
}

func (m *mockContractRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockContractRepo) ExistsActiveByProperty(ctx context.Context, propertyID, excludeID int64) (bool, error) {
	args := m.Called(ctx, propertyID, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockContractRepo) ListByProperty(ctx context.Context, propertyID int64) ([]domain.RentalContract, error) {
	args := m.Called(ctx, propertyID)
	return args.Get(0).([]domain.RentalContract), args.Error(1)
}

func (m *mockContractRepo) ListByStatus(ctx context.Context, status domain.ContractStatus) ([]domain.RentalContract, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.RentalContract), args.Error(1)
}

func (m *mockContractRepo) ListEndingBetween(ctx context.Context, start, end time.Time) ([]domain.RentalContract, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).([]domain.RentalContract), args.Error(1)
}

func (m *mockContractRepo) ListActiveEndingBefore(ctx context.Context, before time.Time) ([]domain.RentalContract, error) {
	args := m.Called(ctx, before)
	return args.Get(0).([]domain.RentalContract), args.Error(1)
}

func (m *mockContractRepo) ListActiveInNoticeWindow(ctx context.Context, now time.Time, defaultDays int) ([]domain.RentalContract, error) {
	args := m.Called(ctx, now, defaultDays)
	return args.Get(0).([]domain.RentalContract), args.Error(1)
}

func (m *mockContractRepo) MarkExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

// mockChecker stands in for both the property and the agency existence checks.
type mockChecker struct {
	mock.Mock
}

func (m *mockChecker) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) Issue(identity domain.Identity) (string, error) {
	args := m.Called(identity)
	return args.String(0), args.Error(1)
}

func (m *mockTokenService) Validate(token string) (domain.Identity, error) {
	args := m.Called(token)
	return args.Get(0).(domain.Identity), args.Error(1)
}

func (m *mockTokenService) Expiration() time.Duration {
	return time.Hour
}

type mockAgencyRepo struct {
	mock.Mock
}

func (m *mockAgencyRepo) Create(ctx context.Context, agency *domain.Agency) error {
	args := m.Called(ctx, agency)
	return args.Error(0)
}

func (m *mockAgencyRepo) GetByID(ctx context.Context, id int64) (*domain.Agency, error) {
	args := m.Called(ctx, id)
	if a := args.Get(0); a != nil {
		return a.(*domain.Agency), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAgencyRepo) List(ctx context.Context, filter domain.AgencyFilter, page domain.PageRequest) ([]domain.Agency, int64, error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).([]domain.Agency), args.Get(1).(int64), args.Error(2)
}

func (m *mockAgencyRepo) Update(ctx context.Context, agency *domain.Agency) error {
	args := m.Called(ctx, agency)
	return args.Error(0)
}

func (m *mockAgencyRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockAgencyRepo) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockAgencyRepo) ExistsByTaxID(ctx context.Context, taxID string, excludeID int64) (bool, error) {
	args := m.Called(ctx, taxID, excludeID)
	return args.Bool(0), args.Error(1)
}

type mockPropertyRepo struct {
	mockChecker
}

func (m *mockPropertyRepo) Create(ctx context.Context, property *domain.Property) error {
	args := m.Called(ctx, property)
	return args.Error(0)
}

func (m *mockPropertyRepo) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*domain.Property), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPropertyRepo) List(ctx context.Context, filter domain.PropertyFilter, page domain.PageRequest) ([]domain.Property, int64, error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).([]domain.Property), args.Get(1).(int64), args.Error(2)
}

func (m *mockPropertyRepo) Update(ctx context.Context, property *domain.Property) error {
	args := m.Called(ctx, property)
	return args.Error(0)
}

func (m *mockPropertyRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockConceptRepo struct {
	mock.Mock
}

func (m *mockConceptRepo) Create(ctx context.Context, concept *domain.PaymentConcept) error {
	args := m.Called(ctx, concept)
	return args.Error(0)
}

func (m *mockConceptRepo) GetByID(ctx context.Context, id int64) (*domain.PaymentConcept, error) {
	args := m.Called(ctx, id)
	if c := args.Get(0); c != nil {
		return c.(*domain.PaymentConcept), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockConceptRepo) List(ctx context.Context, filter domain.PaymentConceptFilter, page domain.PageRequest) ([]domain.PaymentConcept, int64, error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).([]domain.PaymentConcept), args.Get(1).(int64), args.Error(2)
}

func (m *mockConceptRepo) Update(ctx context.Context, concept *domain.PaymentConcept) error {
	args := m.Called(ctx, concept)
	return args.Error(0)
}

func (m *mockConceptRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockConceptRepo) ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error) {
	args := m.Called(ctx, name, excludeID)
	return args.Bool(0), args.Error(1)
}

type mockSurchargeRepo struct {
	mock.Mock
}

func (m *mockSurchargeRepo) Create(ctx context.Context, config *domain.SurchargeConfig) error {
	args := m.Called(ctx, config)
	return args.Error(0)
}

func (m *mockSurchargeRepo) GetByID(ctx context.Context, id int64) (*domain.SurchargeConfig, error) {
	args := m.Called(ctx, id)
	if c := args.Get(0); c != nil {
		return c.(*domain.SurchargeConfig), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSurchargeRepo) List(ctx context.Context, filter domain.SurchargeConfigFilter, page domain.PageRequest) ([]domain.SurchargeConfig, int64, error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).([]domain.SurchargeConfig), args.Get(1).(int64), args.Error(2)
}

func (m *mockSurchargeRepo) Update(ctx context.Context, config *domain.SurchargeConfig) error {
	args := m.Called(ctx, config)
	return args.Error(0)
}

func (m *mockSurchargeRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
