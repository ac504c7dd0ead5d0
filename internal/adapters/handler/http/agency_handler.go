package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/vncsmyrnk/rentas/internal/core/domain"
	"github.com/vncsmyrnk/rentas/internal/core/ports"
)

type AgencyHandler struct {
	service ports.AgencyService
}

func NewAgencyHandler(service ports.AgencyService) *AgencyHandler {
	return &AgencyHandler{
		service: service,
	}
}

type createAgencyRequest struct {
	Name        string  `json:"name" validate:"required,max=150"`
	TaxID       string  `json:"tax_id" validate:"required,max=20"`
	ContactName *string `json:"contact_name" validate:"omitempty,max=150"`
	Email       *string `json:"email" validate:"omitempty,email,max=100"`
	Phone       *string `json:"phone" validate:"omitempty,max=20"`
	Address     *string `json:"address" validate:"omitempty,max=255"`
}

type updateAgencyRequest struct {
	Name        *string              `json:"name" validate:"omitempty,min=1,max=150"`
	TaxID       *string              `json:"tax_id" validate:"omitempty,min=1,max=20"`
	ContactName *string              `json:"contact_name" validate:"omitempty,max=150"`
	Email       *string              `json:"email" validate:"omitempty,email,max=100"`
	Phone       *string              `json:"phone" validate:"omitempty,max=20"`
	Address     *string              `json:"address" validate:"omitempty,max=255"`
	Status      *domain.AgencyStatus `json:"status"`
}

func (h *AgencyHandler) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Patch("/{id}/estatus", h.ChangeStatus)
	r.Delete("/{id}", h.Delete)
}

func (h *AgencyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createAgencyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	agency, err := h.service.Create(r.Context(), ports.CreateAgencyInput{
		Name:        req.Name,
		TaxID:       req.TaxID,
		ContactName: req.ContactName,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, agency)
}

func (h *AgencyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	agency, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, agency)
}

func (h *AgencyHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := pageRequest(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	q := r.URL.Query()
	filter := domain.AgencyFilter{
		Name:   strings.TrimSpace(q.Get("nombre")),
		Status: domain.AgencyStatus(strings.ToUpper(q.Get("estatus"))),
	}

	result, err := h.service.List(r.Context(), filter, page)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *AgencyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var req updateAgencyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	agency, err := h.service.Update(r.Context(), id, ports.UpdateAgencyInput{
		Name:        req.Name,
		TaxID:       req.TaxID,
		ContactName: req.ContactName,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		Status:      req.Status,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, agency)
}

func (h *AgencyHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	raw := r.URL.Query().Get("estatus")
	if raw == "" {
		writeServiceError(w, r, domain.NewValidationError("estatus", "is required"))
		return
	}

	agency, err := h.service.ChangeStatus(r.Context(), id, domain.AgencyStatus(strings.ToUpper(raw)))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, agency)
}

func (h *AgencyHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
