package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/vncsmyrnk/rentas/internal/core/domain"
	"github.com/vncsmyrnk/rentas/internal/core/ports"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) ports.UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `
	SELECT u.id, u.username, u.email, u.password_hash, u.enabled, u.created_at,
	       COALESCE(ARRAY_AGG(ur.role_id ORDER BY ur.role_id) FILTER (WHERE ur.role_id IS NOT NULL), '{}')
	FROM users u
	LEFT JOIN user_roles ur ON ur.user_id = u.id
`

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := userColumns + ` WHERE u.username = $1 GROUP BY u.id`
	return r.getOne(ctx, query, username)
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := userColumns + ` WHERE u.id = $1 GROUP BY u.id`
	return r.getOne(ctx, query, id)
}

func (r *UserRepository) getOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	user := &domain.User{}
	var roleIDs pq.Int64Array
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Enabled,
		&user.CreatedAt,
		&roleIDs,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	for _, id := range roleIDs {
		if role, ok := domain.RoleFromID(int(id)); ok {
			user.Roles = append(user.Roles, role)
		}
	}
	return user, nil
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`, username)
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE LOWER(email) = LOWER($1))`, email)
}

func (r *UserRepository) exists(ctx context.Context, query string, arg any) (bool, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx, query, arg).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO users (username, email, password_hash, enabled, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err = tx.QueryRowContext(ctx, query, user.Username, user.Email, user.PasswordHash, user.Enabled, user.CreatedAt).Scan(&user.ID)
	if err != nil {
		return translateError(err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO user_roles (user_id, role_id) VALUES ($1, $2)`)
	if err != nil {
		return fmt.Errorf("failed to prepare role statement: %w", err)
	}
	defer stmt.Close()

	for _, role := range user.Roles {
		if _, err := stmt.ExecContext(ctx, user.ID, role.ID()); err != nil {
			return fmt.Errorf("failed to assign role %s: %w", role, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
