package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vncsmyrnk/rentas/internal/core/domain"
	"github.com/vncsmyrnk/rentas/internal/core/ports"
)

var defaultPage = domain.PageRequest{}.Normalize()

func TestAgencyHandler_ChangeStatus(t *testing.T) {
	tr := newTestRouter()
	tr.agencies.On("ChangeStatus", mock.Anything, int64(4), domain.AgencyInactive).
		Return(&domain.Agency{ID: 4, Status: domain.AgencyInactive}, nil)
	tr.agencies.On("ChangeStatus", mock.Anything, int64(5), domain.AgencyStatus("CERRADA")).
		Return(nil, domain.NewValidationError("status", "is not a valid agency status"))

	rec := tr.do(http.MethodPatch, "/api/v1/inmobiliarias/4/estatus?estatus=inactiva", adminToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"INACTIVA"`)

	rec = tr.do(http.MethodPatch, "/api/v1/inmobiliarias/4/estatus?estatus=inactiva", userToken, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = tr.do(http.MethodPatch, "/api/v1/inmobiliarias/4/estatus", adminToken, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]string{"estatus": "is required"}, decodeMessage(t, rec).Errors)

	rec = tr.do(http.MethodPatch, "/api/v1/inmobiliarias/5/estatus?estatus=cerrada", adminToken, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	tr.agencies.AssertNumberOfCalls(t, "ChangeStatus", 2)
}

func TestAgencyHandler_ListFilters(t *testing.T) {
	tr := newTestRouter()
	filter := domain.AgencyFilter{Name: "casa", Status: domain.AgencyActive}
	page := domain.PageRequest{Page: 1, Size: 5, SortBy: "nombre", SortDir: domain.SortDesc}
	tr.agencies.On("List", mock.Anything, filter, page).
		Return(domain.NewPage([]domain.Agency{{ID: 7}}, page, 6), nil)

	rec := tr.do(http.MethodGet, "/api/v1/inmobiliarias?nombre=%20casa%20&estatus=activa&page=1&size=5&sortBy=nombre&sortDir=DESC", userToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_elements":6`)
	tr.agencies.AssertExpectations(t)
}

func TestAgencyHandler_Conflicts(t *testing.T) {
	tr := newTestRouter()
	tr.agencies.On("Create", mock.Anything, ports.CreateAgencyInput{Name: "Casa Norte", TaxID: "CNO010101AAA"}).
		Return(nil, domain.ErrDuplicateTaxID)
	tr.agencies.On("Delete", mock.Anything, int64(3)).Return(domain.ErrInUse)

	rec := tr.do(http.MethodPost, "/api/v1/inmobiliarias", adminToken, `{"name":"Casa Norte","tax_id":"CNO010101AAA"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "an agency with this tax id already exists", decodeMessage(t, rec).Message)

	rec = tr.do(http.MethodDelete, "/api/v1/inmobiliarias/3", adminToken, "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "entity is referenced by other records", decodeMessage(t, rec).Message)

	tr.agencies.AssertExpectations(t)
}

func TestAgencyHandler_CreateValidation(t *testing.T) {
	tr := newTestRouter()

	rec := tr.do(http.MethodPost, "/api/v1/inmobiliarias", adminToken, `{"name":"Casa Norte"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	tr.agencies.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPropertyHandler_ListByAgency(t *testing.T) {
	tr := newTestRouter()
	tr.properties.On("List", mock.Anything, domain.PropertyFilter{AgencyID: 2}, defaultPage).
		Return(domain.NewPage([]domain.Property{{ID: 1, AgencyID: 2}}, defaultPage, 1), nil)

	rec := tr.do(http.MethodGet, "/api/v1/propiedades/inmobiliaria/2", userToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"agency_id":2`)

	rec = tr.do(http.MethodGet, "/api/v1/propiedades/inmobiliaria/abc", userToken, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	tr.properties.AssertNumberOfCalls(t, "List", 1)
}

func TestPropertyHandler_ListFilters(t *testing.T) {
	tr := newTestRouter()
	filter := domain.PropertyFilter{AgencyID: 2, Type: domain.PropertyHouse, Status: domain.PropertyAvailable}
	tr.properties.On("List", mock.Anything, filter, defaultPage).
		Return(domain.Page[domain.Property]{Content: []domain.Property{}}, nil)

	rec := tr.do(http.MethodGet, "/api/v1/propiedades?inmobiliariaId=2&tipo=casa&estatus=disponible", userToken, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = tr.do(http.MethodGet, "/api/v1/propiedades?inmobiliariaId=dos", userToken, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeMessage(t, rec).Errors, "inmobiliariaId")

	tr.properties.AssertNumberOfCalls(t, "List", 1)
}

func TestPropertyHandler_DeleteReferenced(t *testing.T) {
	tr := newTestRouter()
	tr.properties.On("Delete", mock.Anything, int64(9)).Return(domain.ErrInUse)
	tr.properties.On("Delete", mock.Anything, int64(10)).Return(nil)

	rec := tr.do(http.MethodDelete, "/api/v1/propiedades/9", userToken, "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = tr.do(http.MethodDelete, "/api/v1/propiedades/10", userToken, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestPaymentConceptHandler_ListFilters(t *testing.T) {
	tr := newTestRouter()
	active := true
	filter := domain.PaymentConceptFilter{Type: domain.ConceptService, Active: &active}
	tr.concepts.On("List", mock.Anything, filter, defaultPage).
		Return(domain.NewPage([]domain.PaymentConcept{{ID: 2, Type: domain.ConceptService, Active: true}}, defaultPage, 1), nil)

	rec := tr.do(http.MethodGet, "/api/v1/conceptos-pago?tipo=servicio&activo=true", userToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"type":"SERVICIO"`)

	rec = tr.do(http.MethodGet, "/api/v1/conceptos-pago?activo=maybe", userToken, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]string{"activo": "must be true or false"}, decodeMessage(t, rec).Errors)

	tr.concepts.AssertNumberOfCalls(t, "List", 1)
}

func TestPaymentConceptHandler_CreateDuplicateName(t *testing.T) {
	tr := newTestRouter()
	tr.concepts.On("Create", mock.Anything, ports.CreatePaymentConceptInput{Name: "Agua", Type: domain.ConceptService}).
		Return(nil, domain.ErrDuplicateConceptName)

	rec := tr.do(http.MethodPost, "/api/v1/conceptos-pago", userToken, `{"name":"Agua","type":"SERVICIO"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "a payment concept with this name already exists", decodeMessage(t, rec).Message)
	tr.concepts.AssertExpectations(t)
}

func TestSurchargeConfigHandler_ListActive(t *testing.T) {
	tr := newTestRouter()
	tr.surcharges.On("ListActive", mock.Anything).
		Return([]domain.SurchargeConfig{{ID: 1, Active: true}, {ID: 3, Active: true}}, nil).Once()
	tr.surcharges.On("ListActive", mock.Anything).Return(nil, nil).Once()

	rec := tr.do(http.MethodGet, "/api/v1/configuracion-recargos/activas", userToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[1,3]`, idsOf(t, rec))

	rec = tr.do(http.MethodGet, "/api/v1/configuracion-recargos/activas", userToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	tr.surcharges.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestSurchargeConfigHandler_ListFilter(t *testing.T) {
	tr := newTestRouter()
	inactive := false
	tr.surcharges.On("List", mock.Anything, domain.SurchargeConfigFilter{Active: &inactive}, defaultPage).
		Return(domain.Page[domain.SurchargeConfig]{Content: []domain.SurchargeConfig{}}, nil)

	rec := tr.do(http.MethodGet, "/api/v1/configuracion-recargos?activo=false", userToken, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	tr.surcharges.AssertExpectations(t)
}
