package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/vncsmyrnk/rentas/internal/adapters/metrics"
	"github.com/vncsmyrnk/rentas/internal/core/domain"
	"github.com/vncsmyrnk/rentas/internal/core/ports"
)

type ContractHandler struct {
	service ports.RentalContractService
}

func NewContractHandler(service ports.RentalContractService) *ContractHandler {
	return &ContractHandler{
		service: service,
	}
}

type createContractRequest struct {
	PropertyID          int64     `json:"property_id" validate:"required,gt=0"`
	StartDate           *dateTime `json:"start_date" validate:"required"`
	DurationMonths      int       `json:"duration_months" validate:"required,min=1"`
	SecurityDeposit     *float64  `json:"security_deposit" validate:"omitempty,gt=0"`
	SpecialConditions   *string   `json:"special_conditions" validate:"omitempty,max=2000"`
	NotificationContact *string   `json:"notification_contact" validate:"omitempty,max=150"`
	NotificationDays    *int      `json:"notification_days" validate:"omitempty,min=1"`
}

type updateContractRequest struct {
	PropertyID          *int64                 `json:"property_id" validate:"omitempty,gt=0"`
	StartDate           *dateTime              `json:"start_date"`
	DurationMonths      *int                   `json:"duration_months" validate:"omitempty,min=1"`
	Status              *domain.ContractStatus `json:"status"`
	SecurityDeposit     *float64               `json:"security_deposit" validate:"omitempty,gt=0"`
	SpecialConditions   *string                `json:"special_conditions" validate:"omitempty,max=2000"`
	NotificationContact *string                `json:"notification_contact" validate:"omitempty,max=150"`
	NotificationDays    *int                   `json:"notification_days" validate:"omitempty,min=1"`
}

func (h *ContractHandler) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/notificaciones", h.ListNeedingNotification)
	r.Get("/expirando", h.ListExpiringBetween)
	r.Get("/activos/expirando", h.ListActiveExpiringBefore)
	r.Get("/propiedad/{propertyId}", h.ListByProperty)
	r.Get("/estatus/{estatus}", h.ListByStatus)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	r.Patch("/{id}/terminar", h.Terminate)
	r.Patch("/{id}/renovar", h.Renew)
}

func (h *ContractHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createContractRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	contract, err := h.service.Create(r.Context(), ports.CreateContractInput{
		PropertyID:          req.PropertyID,
		StartDate:           req.StartDate.Time,
		DurationMonths:      req.DurationMonths,
		SecurityDeposit:     req.SecurityDeposit,
		SpecialConditions:   req.SpecialConditions,
		NotificationContact: req.NotificationContact,
		NotificationDays:    req.NotificationDays,
	})
	recordContractOperation("create", err)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, contract)
}

func (h *ContractHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	contract, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, contract)
}

func (h *ContractHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := pageRequest(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	result, err := h.service.List(r.Context(), page)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *ContractHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var req updateContractRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	contract, err := h.service.Update(r.Context(), id, ports.UpdateContractInput{
		PropertyID:          req.PropertyID,
		StartDate:           req.StartDate.value(),
		DurationMonths:      req.DurationMonths,
		Status:              req.Status,
		SecurityDeposit:     req.SecurityDeposit,
		SpecialConditions:   req.SpecialConditions,
		NotificationContact: req.NotificationContact,
		NotificationDays:    req.NotificationDays,
	})
	recordContractOperation("update", err)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, contract)
}

func (h *ContractHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	err = h.service.Delete(r.Context(), id)
	recordContractOperation("delete", err)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *ContractHandler) Terminate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	contract, err := h.service.Terminate(r.Context(), id)
	recordContractOperation("terminate", err)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, contract)
}

func (h *ContractHandler) Renew(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	raw := r.URL.Query().Get("meses")
	if raw == "" {
		writeServiceError(w, r, domain.NewValidationError("meses", "is required"))
		return
	}
	months, err := strconv.Atoi(raw)
	if err != nil {
		writeServiceError(w, r, domain.NewValidationError("meses", "must be an integer"))
		return
	}

	contract, err := h.service.Renew(r.Context(), id, months)
	recordContractOperation("renew", err)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, contract)
}

func (h *ContractHandler) ListByProperty(w http.ResponseWriter, r *http.Request) {
	propertyID, err := pathID(r, "propertyId")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	contracts, err := h.service.ListByProperty(r.Context(), propertyID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, nonNil(contracts))
}

func (h *ContractHandler) ListByStatus(w http.ResponseWriter, r *http.Request) {
	status := domain.ContractStatus(chi.URLParam(r, "estatus"))

	contracts, err := h.service.ListByStatus(r.Context(), status)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, nonNil(contracts))
}

func (h *ContractHandler) ListExpiringBetween(w http.ResponseWriter, r *http.Request) {
	start, err := requiredDateTime(r, "startDate")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	end, err := requiredDateTime(r, "endDate")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	contracts, err := h.service.ListExpiringBetween(r.Context(), start, end)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, nonNil(contracts))
}

func (h *ContractHandler) ListActiveExpiringBefore(w http.ResponseWriter, r *http.Request) {
	date, err := requiredDateTime(r, "date")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	contracts, err := h.service.ListActiveExpiringBefore(r.Context(), date)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, nonNil(contracts))
}

func (h *ContractHandler) ListNeedingNotification(w http.ResponseWriter, r *http.Request) {
	contracts, err := h.service.ListNeedingNotification(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, nonNil(contracts))
}

func recordContractOperation(operation string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	metrics.ContractOperationsTotal.WithLabelValues(operation, status).Inc()
}
