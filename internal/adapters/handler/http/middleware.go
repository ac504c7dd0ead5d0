package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/vncsmyrnk/rentas/internal/adapters/metrics"
	"github.com/vncsmyrnk/rentas/internal/core/ports"
)

// AllowList holds path prefixes the authentication gate never inspects.
// A prefix matches the path itself or anything below it.
type AllowList []string

var DefaultAllowList = AllowList{
	"/api/v1/auth/signin",
	"/api/v1/auth/signup",
	"/api/v1/auth/roles",
	"/health",
	"/metrics",
	"/docs",
	"/static",
	"/error",
	"/favicon.ico",
}

func (a AllowList) Exempt(path string) bool {
	for _, prefix := range a {
		if path == prefix || strings.HasPrefix(path, strings.TrimSuffix(prefix, "/")+"/") {
			return true
		}
	}
	return false
}

// Authenticate binds the caller identity to the request context when a valid
// bearer token is present. It never rejects a request: missing or bad tokens
// leave the request unauthenticated and the policy decides.
func Authenticate(tokens ports.TokenService, allow AllowList) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if allow.Exempt(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			token, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			identity, err := tokens.Validate(token)
			if err != nil {
				hlog.FromRequest(r).Warn().Err(err).Str("path", r.URL.Path).Msg("cannot set user authentication")
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func requestLogger(logger zerolog.Logger) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		hlog.NewHandler(logger),
		hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
			hlog.FromRequest(r).Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", status).
				Int("size", size).
				Dur("duration", duration).
				Str("request_id", middleware.GetReqID(r.Context())).
				Msg("request")
		}),
	}
}

// instrument records request counts and latency labeled by route pattern so
// path parameters do not explode cardinality.
func instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		metrics.HTTPRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
