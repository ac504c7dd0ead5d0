package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vncsmyrnk/rentas/internal/core/domain"
)

func TestUserRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	user := domain.NewUser("ana", "ana@example.com", "hash", []domain.Role{domain.RoleUser, domain.RoleAdmin})

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users`)).
		WithArgs("ana", "ana@example.com", "hash", true, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	prep := mock.ExpectPrepare(regexp.QuoteMeta(`INSERT INTO user_roles (user_id, role_id) VALUES ($1, $2)`))
	prep.ExpectExec().WithArgs(int64(7), int64(1)).WillReturnResult(sqlmock.NewResult(0, 1))
	prep.ExpectExec().WithArgs(int64(7), int64(3)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))
	assert.Equal(t, int64(7), user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CreateDuplicateUsername(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users`)).
		WillReturnError(&pq.Error{Code: uniqueViolation, Constraint: "users_username_key"})
	mock.ExpectRollback()

	err = NewUserRepository(db).Create(context.Background(), domain.NewUser("ana", "ana@example.com", "hash", nil))
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByUsername(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewUserRepository(db)
	columns := []string{"id", "username", "email", "password_hash", "enabled", "created_at", "roles"}
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE u.username = $1 GROUP BY u.id`)).WithArgs("ana").
		WillReturnRows(sqlmock.NewRows(columns).AddRow(7, "ana", "ana@example.com", "hash", true, created, []byte("{1,3}")))
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE u.username = $1 GROUP BY u.id`)).WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows(columns))

	user, err := repo.GetByUsername(context.Background(), "ana")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, []domain.Role{domain.RoleUser, domain.RoleAdmin}, user.Roles)

	user, err = repo.GetByUsername(context.Background(), "nobody")
	assert.NoError(t, err)
	assert.Nil(t, user)

	assert.NoError(t, mock.ExpectationsWereMet())
}
