package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vncsmyrnk/rentas/internal/core/domain"
	"github.com/vncsmyrnk/rentas/internal/core/ports"
)

type SurchargeConfigHandler struct {
	service ports.SurchargeConfigService
}

func NewSurchargeConfigHandler(service ports.SurchargeConfigService) *SurchargeConfigHandler {
	return &SurchargeConfigHandler{
		service: service,
	}
}

type createSurchargeConfigRequest struct {
	Name        string               `json:"name" validate:"required,max=100"`
	Type        domain.SurchargeType `json:"type" validate:"required"`
	Value       float64              `json:"value"`
	GraceDays   int                  `json:"grace_days"`
	MaxAmount   *float64             `json:"max_amount"`
	Active      *bool                `json:"active"`
	Description *string              `json:"description" validate:"omitempty,max=500"`
}

type updateSurchargeConfigRequest struct {
	Name        *string               `json:"name" validate:"omitempty,min=1,max=100"`
	Type        *domain.SurchargeType `json:"type"`
	Value       *float64              `json:"value"`
	GraceDays   *int                  `json:"grace_days"`
	MaxAmount   *float64              `json:"max_amount"`
	Active      *bool                 `json:"active"`
	Description *string               `json:"description" validate:"omitempty,max=500"`
}

func (h *SurchargeConfigHandler) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/activas", h.ListActive)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

// Create leaves range checks on value, grace days and cap to the service.
func (h *SurchargeConfigHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSurchargeConfigRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	config, err := h.service.Create(r.Context(), ports.CreateSurchargeConfigInput{
		Name:        req.Name,
		Type:        req.Type,
		Value:       req.Value,
		GraceDays:   req.GraceDays,
		MaxAmount:   req.MaxAmount,
		Active:      req.Active,
		Description: req.Description,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, config)
}

func (h *SurchargeConfigHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	config, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, config)
}

func (h *SurchargeConfigHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := pageRequest(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	active, err := optionalBool(r.URL.Query().Get("activo"), "activo")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	result, err := h.service.List(r.Context(), domain.SurchargeConfigFilter{Active: active}, page)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *SurchargeConfigHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	configs, err := h.service.ListActive(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, nonNil(configs))
}

func (h *SurchargeConfigHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var req updateSurchargeConfigRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	config, err := h.service.Update(r.Context(), id, ports.UpdateSurchargeConfigInput{
		Name:        req.Name,
		Type:        req.Type,
		Value:       req.Value,
		GraceDays:   req.GraceDays,
		MaxAmount:   req.MaxAmount,
		Active:      req.Active,
		Description: req.Description,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, config)
}

func (h *SurchargeConfigHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
