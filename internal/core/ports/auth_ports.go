package ports

import (
	"context"
	"time"

	"github.com/vncsmyrnk/rentas/internal/core/domain"
)

type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *domain.User) error
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

type TokenService interface {
	Issue(identity domain.Identity) (string, error)
	Validate(token string) (domain.Identity, error)
	Expiration() time.Duration
}

type SignUpInput struct {
	Username string
	Email    string
	Password string
	Roles    []string
}

type SignInResult struct {
	Token string
	User  *domain.User
}

type AuthService interface {
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
	SignIn(ctx context.Context, username, password string) (*SignInResult, error)
	Register(ctx context.Context, input SignUpInput) (*domain.User, error)
	CurrentUser(ctx context.Context, identity domain.Identity) (*domain.User, error)
}
