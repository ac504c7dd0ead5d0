package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/vncsmyrnk/rentas/internal/core/ports"
)

type Handlers struct {
	Auth            *AuthHandler
	Agencies        *AgencyHandler
	Properties      *PropertyHandler
	PaymentConcepts *PaymentConceptHandler
	Surcharges      *SurchargeConfigHandler
	Contracts       *ContractHandler
}

// NewHandler builds the API router. The authentication gate runs on every
// request and the authorization policy decides before any route handler.
func NewHandler(h Handlers, tokens ports.TokenService, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger)...)
	r.Use(middleware.Recoverer)
	r.Use(instrument)
	r.Use(Authenticate(tokens, DefaultAllowList))
	r.Use(Authorize(DefaultPolicy))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signin", h.Auth.SignIn)
			r.Get("/signin", h.Auth.SignIn)
			r.Post("/signup", h.Auth.SignUp)
			r.Get("/roles", h.Auth.Roles)
			r.Get("/me", h.Auth.Me)
		})

		r.Route("/inmobiliarias", h.Agencies.Routes)
		r.Route("/propiedades", h.Properties.Routes)
		r.Route("/conceptos-pago", h.PaymentConcepts.Routes)
		r.Route("/configuracion-recargos", h.Surcharges.Routes)
		r.Route("/contratos-renta", h.Contracts.Routes)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, http.StatusNotFound, "resource not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return r
}
