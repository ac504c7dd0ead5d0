package http

import (
	"net/http"
	"slices"
	"strings"

	"github.com/rs/zerolog/hlog"

	"github.com/vncsmyrnk/rentas/internal/adapters/metrics"
	"github.com/vncsmyrnk/rentas/internal/core/domain"
)

const (
	unauthorizedMessage = "Unauthorized: full authentication is required"
	forbiddenMessage    = "Forbidden: insufficient role"
)

// Rule grants access to requests whose path starts with Prefix and whose
// method is one of Methods (any method when empty). Public rules need no
// identity. Otherwise an identity is required, holding one of Roles when set.
type Rule struct {
	Prefix  string
	Methods []string
	Roles   []domain.Role
	Public  bool
}

func (rule Rule) matches(method, path string) bool {
	if path != rule.Prefix && !strings.HasPrefix(path, strings.TrimSuffix(rule.Prefix, "/")+"/") {
		return false
	}
	return len(rule.Methods) == 0 || slices.Contains(rule.Methods, method)
}

// Policy is evaluated top to bottom and the first matching rule decides.
// Requests no rule matches are permitted.
type Policy []Rule

var DefaultPolicy = Policy{
	{Prefix: "/api/v1/auth/me"},
	{Prefix: "/api/v1/auth", Public: true},
	{
		Prefix:  "/api/v1/inmobiliarias",
		Methods: []string{http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		Roles:   []domain.Role{domain.RoleAdmin},
	},
	{Prefix: "/api/v1"},
}

func (p Policy) Match(method, path string) (Rule, bool) {
	for _, rule := range p {
		if rule.matches(method, path) {
			return rule, true
		}
	}
	return Rule{}, false
}

// Decide returns the status a request gets rejected with, or 0 if allowed.
func (p Policy) Decide(method, path string, identity *domain.Identity) int {
	rule, ok := p.Match(method, path)
	if !ok || rule.Public {
		return 0
	}
	if identity == nil {
		return http.StatusUnauthorized
	}
	if len(rule.Roles) > 0 && !identity.HasAnyRole(rule.Roles...) {
		return http.StatusForbidden
	}
	return 0
}

func Authorize(policy Policy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var identity *domain.Identity
			if id, ok := IdentityFromContext(r.Context()); ok {
				identity = &id
			}

			switch policy.Decide(r.Method, r.URL.Path, identity) {
			case http.StatusUnauthorized:
				metrics.AccessDeniedTotal.WithLabelValues("401").Inc()
				hlog.FromRequest(r).Debug().Str("path", r.URL.Path).Msg("unauthenticated request rejected")
				writeMessage(w, http.StatusUnauthorized, unauthorizedMessage)
			case http.StatusForbidden:
				metrics.AccessDeniedTotal.WithLabelValues("403").Inc()
				hlog.FromRequest(r).Info().Int64("user_id", identity.UserID).Str("path", r.URL.Path).Msg("access denied")
				writeMessage(w, http.StatusForbidden, forbiddenMessage)
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}
