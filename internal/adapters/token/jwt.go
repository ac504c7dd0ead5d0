package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/vncsmyrnk/rentas/internal/adapters/metrics"
	"github.com/vncsmyrnk/rentas/internal/core/domain"
)

type claims struct {
	UserID int64    `json:"uid"`
	Roles  []string `json:"roles"`
	jwt.RegisteredClaims
}

// JWTService issues and validates HS256 access tokens. Tokens are
// self-contained: validation never touches the database.
type JWTService struct {
	secret     []byte
	expiration time.Duration
	now        func() time.Time
}

func NewJWTService(secret string, expiration time.Duration) *JWTService {
	return &JWTService{
		secret:     []byte(secret),
		expiration: expiration,
		now:        time.Now,
	}
}

// WithClock replaces the time source used for both issuing and validating.
func (s *JWTService) WithClock(now func() time.Time) *JWTService {
	s.now = now
	return s
}

func (s *JWTService) Expiration() time.Duration {
	return s.expiration
}

func (s *JWTService) Issue(identity domain.Identity) (string, error) {
	if len(s.secret) == 0 {
		return "", fmt.Errorf("JWT secret key is empty")
	}

	now := s.now()
	c := claims{
		UserID: identity.UserID,
		Roles:  domain.RoleNames(identity.Roles),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiration)),
			ID:        uuid.NewString(),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.secret)
}

func (s *JWTService) Validate(tokenString string) (domain.Identity, error) {
	identity, err := s.validate(tokenString)
	if err != nil {
		metrics.TokenValidationsTotal.WithLabelValues(failureLabel(err)).Inc()
		return domain.Identity{}, err
	}
	metrics.TokenValidationsTotal.WithLabelValues("success").Inc()
	return identity, nil
}

func (s *JWTService) validate(tokenString string) (domain.Identity, error) {
	var c claims
	token, err := jwt.ParseWithClaims(tokenString, &c, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithTimeFunc(s.now),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return domain.Identity{}, domain.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return domain.Identity{}, domain.ErrTokenInvalidSignature
		default:
			return domain.Identity{}, domain.ErrTokenMalformed
		}
	}
	if !token.Valid || c.Subject == "" {
		return domain.Identity{}, domain.ErrTokenMalformed
	}

	roles := make([]domain.Role, 0, len(c.Roles))
	for _, name := range c.Roles {
		r, ok := domain.RoleFromName(name)
		if !ok {
			return domain.Identity{}, domain.ErrTokenMalformed
		}
		roles = append(roles, r)
	}

	return domain.Identity{
		UserID:   c.UserID,
		Username: c.Subject,
		Roles:    roles,
	}, nil
}

func failureLabel(err error) string {
	switch {
	case errors.Is(err, domain.ErrTokenExpired):
		return "expired"
	case errors.Is(err, domain.ErrTokenInvalidSignature):
		return "invalid_signature"
	default:
		return "malformed"
	}
}
