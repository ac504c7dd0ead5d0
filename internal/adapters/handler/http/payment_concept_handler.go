package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/vncsmyrnk/rentas/internal/core/domain"
	"github.com/vncsmyrnk/rentas/internal/core/ports"
)

type PaymentConceptHandler struct {
	service ports.PaymentConceptService
}

func NewPaymentConceptHandler(service ports.PaymentConceptService) *PaymentConceptHandler {
	return &PaymentConceptHandler{
		service: service,
	}
}

type createPaymentConceptRequest struct {
	Name        string             `json:"name" validate:"required,max=100"`
	Description *string            `json:"description" validate:"omitempty,max=500"`
	Type        domain.ConceptType `json:"type" validate:"required"`
	Periodicity domain.Periodicity `json:"periodicity"`
	Active      *bool              `json:"active"`
}

type updatePaymentConceptRequest struct {
	Name        *string             `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string             `json:"description" validate:"omitempty,max=500"`
	Type        *domain.ConceptType `json:"type"`
	Periodicity *domain.Periodicity `json:"periodicity"`
	Active      *bool               `json:"active"`
}

func (h *PaymentConceptHandler) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

func (h *PaymentConceptHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPaymentConceptRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	concept, err := h.service.Create(r.Context(), ports.CreatePaymentConceptInput{
		Name:        req.Name,
		Description: req.Description,
		Type:        req.Type,
		Periodicity: req.Periodicity,
		Active:      req.Active,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, concept)
}

func (h *PaymentConceptHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	concept, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, concept)
}

func (h *PaymentConceptHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := pageRequest(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	q := r.URL.Query()
	active, err := optionalBool(q.Get("activo"), "activo")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	filter := domain.PaymentConceptFilter{
		Type:   domain.ConceptType(strings.ToUpper(q.Get("tipo"))),
		Active: active,
	}

	result, err := h.service.List(r.Context(), filter, page)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *PaymentConceptHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var req updatePaymentConceptRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	concept, err := h.service.Update(r.Context(), id, ports.UpdatePaymentConceptInput{
		Name:        req.Name,
		Description: req.Description,
		Type:        req.Type,
		Periodicity: req.Periodicity,
		Active:      req.Active,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, concept)
}

func (h *PaymentConceptHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
