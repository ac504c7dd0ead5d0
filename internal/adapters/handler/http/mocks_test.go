package http

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/vncsmyrnk/rentas/internal/core/domain"
	"github.com/vncsmyrnk/rentas/internal/core/ports"
)

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

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	args := m.Called(ctx, username, password)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAuthService) SignIn(ctx context.Context, username, password string) (*ports.SignInResult, error) {
	args := m.Called(ctx, username, password)
	if res := args.Get(0); res != nil {
		return res.(*ports.SignInResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAuthService) Register(ctx context.Context, input ports.SignUpInput) (*domain.User, error) {
	args := m.Called(ctx, input)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAuthService) CurrentUser(ctx context.Context, identity domain.Identity) (*domain.User, error) {
	args := m.Called(ctx, identity)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockContractService struct {
	mock.Mock
}

func (m *mockContractService) contract(args mock.Arguments) (*domain.RentalContract, error) {
	if c := args.Get(0); c != nil {
		return c.(*domain.RentalContract), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockContractService) contracts(args mock.Arguments) ([]domain.RentalContract, error) {
	if c := args.Get(0); c != nil {
		return c.([]domain.RentalContract), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockContractService) Create(ctx context.Context, input ports.CreateContractInput) (*domain.RentalContract, error) {
	return m.contract(m.Called(ctx, input))
}

func (m *mockContractService) Get(ctx context.Context, id int64) (*domain.RentalContract, error) {
	return m.contract(m.Called(ctx, id))
}

func (m *mockContractService) List(ctx context.Context, page domain.PageRequest) (domain.Page[domain.RentalContract], error) {
	args := m.Called(ctx, page)
	return args.Get(0).(domain.Page[domain.RentalContract]), args.Error(1)
}

func (m *mockContractService) Update(ctx context.Context, id int64, input ports.UpdateContractInput) (*domain.RentalContract, error) {
	return m.contract(m.Called(ctx, id, input))
}

func (m *mockContractService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockContractService) Terminate(ctx context.Context, id int64) (*domain.RentalContract, error) {
	return m.contract(m.Called(ctx, id))
}

func (m *mockContractService) Renew(ctx context.Context, id int64, months int) (*domain.RentalContract, error) {
	return m.contract(m.Called(ctx, id, months))
}

func (m *mockContractService) ListByProperty(ctx context.Context, propertyID int64) ([]domain.RentalContract, error) {
	return m.contracts(m.Called(ctx, propertyID))
}

func (m *mockContractService) ListByStatus(ctx context.Context, status domain.ContractStatus) ([]domain.RentalContract, error) {
	return m.contracts(m.Called(ctx, status))
}

func (m *mockContractService) ListExpiringBetween(ctx context.Context, start, end time.Time) ([]domain.RentalContract, error) {
	return m.contracts(m.Called(ctx, start, end))
}

func (m *mockContractService) ListActiveExpiringBefore(ctx context.Context, before time.Time) ([]domain.RentalContract, error) {
	return m.contracts(m.Called(ctx, before))
}

func (m *mockContractService) ListNeedingNotification(ctx context.Context) ([]domain.RentalContract, error) {
	return m.contracts(m.Called(ctx))
}

type mockAgencyService struct {
	mock.Mock
}

func (m *mockAgencyService) Create(ctx context.Context, input ports.CreateAgencyInput) (*domain.Agency, error) {
	args := m.Called(ctx, input)
	if a := args.Get(0); a != nil {
		return a.(*domain.Agency), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAgencyService) Get(ctx context.Context, id int64) (*domain.Agency, error) {
	args := m.Called(ctx, id)
	if a := args.Get(0); a != nil {
		return a.(*domain.Agency), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAgencyService) List(ctx context.Context, filter domain.AgencyFilter, page domain.PageRequest) (domain.Page[domain.Agency], error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).(domain.Page[domain.Agency]), args.Error(1)
}

func (m *mockAgencyService) Update(ctx context.Context, id int64, input ports.UpdateAgencyInput) (*domain.Agency, error) {
	args := m.Called(ctx, id, input)
	if a := args.Get(0); a != nil {
		return a.(*domain.Agency), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAgencyService) ChangeStatus(ctx context.Context, id int64, status domain.AgencyStatus) (*domain.Agency, error) {
	args := m.Called(ctx, id, status)
	if a := args.Get(0); a != nil {
		return a.(*domain.Agency), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAgencyService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockPropertyService struct {
	mock.Mock
}

func (m *mockPropertyService) Create(ctx context.Context, input ports.CreatePropertyInput) (*domain.Property, error) {
	args := m.Called(ctx, input)
	if p := args.Get(0); p != nil {
		return p.(*domain.Property), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPropertyService) Get(ctx context.Context, id int64) (*domain.Property, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*domain.Property), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPropertyService) List(ctx context.Context, filter domain.PropertyFilter, page domain.PageRequest) (domain.Page[domain.Property], error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).(domain.Page[domain.Property]), args.Error(1)
}

func (m *mockPropertyService) Update(ctx context.Context, id int64, input ports.UpdatePropertyInput) (*domain.Property, error) {
	args := m.Called(ctx, id, input)
	if p := args.Get(0); p != nil {
		return p.(*domain.Property), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPropertyService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockPaymentConceptService struct {
	mock.Mock
}

func (m *mockPaymentConceptService) Create(ctx context.Context, input ports.CreatePaymentConceptInput) (*domain.PaymentConcept, error) {
	args := m.Called(ctx, input)
	if c := args.Get(0); c != nil {
		return c.(*domain.PaymentConcept), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPaymentConceptService) Get(ctx context.Context, id int64) (*domain.PaymentConcept, error) {
	args := m.Called(ctx, id)
	if c := args.Get(0); c != nil {
		return c.(*domain.PaymentConcept), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPaymentConceptService) List(ctx context.Context, filter domain.PaymentConceptFilter, page domain.PageRequest) (domain.Page[domain.PaymentConcept], error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).(domain.Page[domain.PaymentConcept]), args.Error(1)
}

func (m *mockPaymentConceptService) Update(ctx context.Context, id int64, input ports.UpdatePaymentConceptInput) (*domain.PaymentConcept, error) {
	args := m.Called(ctx, id, input)
	if c := args.Get(0); c != nil {
		return c.(*domain.PaymentConcept), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPaymentConceptService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockSurchargeService struct {
	mock.Mock
}

func (m *mockSurchargeService) Create(ctx context.Context, input ports.CreateSurchargeConfigInput) (*domain.SurchargeConfig, error) {
	args := m.Called(ctx, input)
	if c := args.Get(0); c != nil {
		return c.(*domain.SurchargeConfig), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSurchargeService) Get(ctx context.Context, id int64) (*domain.SurchargeConfig, error) {
	args := m.Called(ctx, id)
	if c := args.Get(0); c != nil {
		return c.(*domain.SurchargeConfig), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSurchargeService) List(ctx context.Context, filter domain.SurchargeConfigFilter, page domain.PageRequest) (domain.Page[domain.SurchargeConfig], error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).(domain.Page[domain.SurchargeConfig]), args.Error(1)
}

func (m *mockSurchargeService) ListActive(ctx context.Context) ([]domain.SurchargeConfig, error) {
	args := m.Called(ctx)
	if c := args.Get(0); c != nil {
		return c.([]domain.SurchargeConfig), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSurchargeService) Update(ctx context.Context, id int64, input ports.UpdateSurchargeConfigInput) (*domain.SurchargeConfig, error) {
	args := m.Called(ctx, id, input)
	if c := args.Get(0); c != nil {
		return c.(*domain.SurchargeConfig), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSurchargeService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
