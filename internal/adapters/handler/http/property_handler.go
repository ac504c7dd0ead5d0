package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/vncsmyrnk/rentas/internal/core/domain"
	"github.com/vncsmyrnk/rentas/internal/core/ports"
)

type PropertyHandler struct {
	service ports.PropertyService
}

func NewPropertyHandler(service ports.PropertyService) *PropertyHandler {
	return &PropertyHandler{
		service: service,
	}
}

type createPropertyRequest struct {
	AgencyID    int64                  `json:"agency_id" validate:"required,gt=0"`
	Title       string                 `json:"title" validate:"required,max=150"`
	Address     string                 `json:"address" validate:"required,max=255"`
	Type        domain.PropertyType    `json:"type" validate:"required"`
	AreaM2      *float64               `json:"area_m2" validate:"omitempty,gt=0"`
	Bedrooms    *int                   `json:"bedrooms" validate:"omitempty,gte=0"`
	Bathrooms   *int                   `json:"bathrooms" validate:"omitempty,gte=0"`
	MonthlyRent float64                `json:"monthly_rent" validate:"required,gt=0"`
	Status      *domain.PropertyStatus `json:"status"`
	Description *string                `json:"description" validate:"omitempty,max=2000"`
}

type updatePropertyRequest struct {
	AgencyID    *int64                 `json:"agency_id" validate:"omitempty,gt=0"`
	Title       *string                `json:"title" validate:"omitempty,min=1,max=150"`
	Address     *string                `json:"address" validate:"omitempty,min=1,max=255"`
	Type        *domain.PropertyType   `json:"type"`
	AreaM2      *float64               `json:"area_m2" validate:"omitempty,gt=0"`
	Bedrooms    *int                   `json:"bedrooms" validate:"omitempty,gte=0"`
	Bathrooms   *int                   `json:"bathrooms" validate:"omitempty,gte=0"`
	MonthlyRent *float64               `json:"monthly_rent" validate:"omitempty,gt=0"`
	Status      *domain.PropertyStatus `json:"status"`
	Description *string                `json:"description" validate:"omitempty,max=2000"`
}

func (h *PropertyHandler) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/inmobiliaria/{agencyId}", h.ListByAgency)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

func (h *PropertyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPropertyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	property, err := h.service.Create(r.Context(), ports.CreatePropertyInput{
		AgencyID:    req.AgencyID,
		Title:       req.Title,
		Address:     req.Address,
		Type:        req.Type,
		AreaM2:      req.AreaM2,
		Bedrooms:    req.Bedrooms,
		Bathrooms:   req.Bathrooms,
		MonthlyRent: req.MonthlyRent,
		Status:      req.Status,
		Description: req.Description,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, property)
}

func (h *PropertyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	property, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, property)
}

func (h *PropertyHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	agencyID, err := optionalInt64(q.Get("inmobiliariaId"), "inmobiliariaId")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	filter := domain.PropertyFilter{
		Type:   domain.PropertyType(strings.ToUpper(q.Get("tipo"))),
		Status: domain.PropertyStatus(strings.ToUpper(q.Get("estatus"))),
	}
	if agencyID != nil {
		filter.AgencyID = *agencyID
	}
	h.list(w, r, filter)
}

func (h *PropertyHandler) ListByAgency(w http.ResponseWriter, r *http.Request) {
	agencyID, err := pathID(r, "agencyId")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	h.list(w, r, domain.PropertyFilter{AgencyID: agencyID})
}

func (h *PropertyHandler) list(w http.ResponseWriter, r *http.Request, filter domain.PropertyFilter) {
	page, err := pageRequest(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	result, err := h.service.List(r.Context(), filter, page)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *PropertyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var req updatePropertyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	property, err := h.service.Update(r.Context(), id, ports.UpdatePropertyInput{
		AgencyID:    req.AgencyID,
		Title:       req.Title,
		Address:     req.Address,
		Type:        req.Type,
		AreaM2:      req.AreaM2,
		Bedrooms:    req.Bedrooms,
		Bathrooms:   req.Bathrooms,
		MonthlyRent: req.MonthlyRent,
		Status:      req.Status,
		Description: req.Description,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, property)
}

func (h *PropertyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
