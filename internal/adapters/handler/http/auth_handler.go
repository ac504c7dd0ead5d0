package http

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/hlog"

	"github.com/vncsmyrnk/rentas/internal/adapters/metrics"
	"github.com/vncsmyrnk/rentas/internal/core/domain"
	"github.com/vncsmyrnk/rentas/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

type signInRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type signInResponse struct {
	Token    string   `json:"token"`
	Type     string   `json:"type"`
	ID       int64    `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles"`
}

type signUpRequest struct {
	Username string   `json:"username" validate:"required,min=3,max=20"`
	Email    string   `json:"email" validate:"required,max=50,email"`
	Password string   `json:"password" validate:"required,min=6,max=40"`
	Role     []string `json:"role"`
}

type roleResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type userResponse struct {
	ID       int64    `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles"`
}

// SignIn exchanges credentials for a bearer token. The body is read for GET
// requests too.
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := decodeJSON(r, &req); err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("signin", "invalid").Inc()
		writeServiceError(w, r, err)
		return
	}

	result, err := h.authService.SignIn(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			metrics.AuthAttemptsTotal.WithLabelValues("signin", "rejected").Inc()
			hlog.FromRequest(r).Info().Str("username", req.Username).Msg("sign in rejected")
			writeMessage(w, http.StatusUnauthorized, "Error: Bad credentials")
			return
		}
		metrics.AuthAttemptsTotal.WithLabelValues("signin", "error").Inc()
		writeServiceError(w, r, err)
		return
	}

	metrics.AuthAttemptsTotal.WithLabelValues("signin", "success").Inc()
	writeJSON(w, http.StatusOK, signInResponse{
		Token:    result.Token,
		Type:     "Bearer",
		ID:       result.User.ID,
		Username: result.User.Username,
		Email:    result.User.Email,
		Roles:    domain.RoleNames(result.User.Roles),
	})
}

func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := decodeJSON(r, &req); err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("signup", "invalid").Inc()
		writeServiceError(w, r, err)
		return
	}

	_, err := h.authService.Register(r.Context(), ports.SignUpInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Roles:    req.Role,
	})
	switch {
	case errors.Is(err, domain.ErrUsernameTaken):
		metrics.AuthAttemptsTotal.WithLabelValues("signup", "rejected").Inc()
		writeMessage(w, http.StatusBadRequest, "Error: Username is already taken!")
		return
	case errors.Is(err, domain.ErrEmailTaken):
		metrics.AuthAttemptsTotal.WithLabelValues("signup", "rejected").Inc()
		writeMessage(w, http.StatusBadRequest, "Error: Email is already in use!")
		return
	case err != nil:
		metrics.AuthAttemptsTotal.WithLabelValues("signup", "error").Inc()
		writeServiceError(w, r, err)
		return
	}

	metrics.AuthAttemptsTotal.WithLabelValues("signup", "success").Inc()
	writeMessage(w, http.StatusOK, "User registered successfully!")
}

func (h *AuthHandler) Roles(w http.ResponseWriter, r *http.Request) {
	roles := make([]roleResponse, 0, len(domain.AllRoles))
	for _, role := range domain.AllRoles {
		roles = append(roles, roleResponse{ID: role.ID(), Name: role.String()})
	}
	writeJSON(w, http.StatusOK, roles)
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, unauthorizedMessage)
		return
	}

	user, err := h.authService.CurrentUser(r.Context(), identity)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, userResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Roles:    domain.RoleNames(user.Roles),
	})
}
