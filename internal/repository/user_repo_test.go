package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"courses_api/internal/models"
	"courses_api/internal/repository/db"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockUserRepo(t *testing.T, dialect db.Dialect) (*UserRepository, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err, "failed to create sqlmock")

	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet(), "unmet sqlmock expectations")
		_ = conn.Close()
	})
	return NewUserRepository(conn, dialect), mock
}

const selectUserSQL = `SELECT id, first_name, last_name, email_address, password FROM users WHERE `

func TestUserRepository_FindByEmail(t *testing.T) {
	tests := []struct {
		name       string
		mockExpect func(sqlmock.Sqlmock)
		wantUser   *models.User
		wantErr    error
		errContain string
	}{
		{
			name: "found",
			mockExpect: func(m sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(userColumns).
					AddRow(7, "Joe", "Smith", "joe@smith.com", "$2a$10$hash")
				m.ExpectQuery(regexp.QuoteMeta(selectUserSQL + "email_address = ?")).
					WithArgs("joe@smith.com").
					WillReturnRows(rows)
			},
			wantUser: &models.User{ID: 7, FirstName: "Joe", LastName: "Smith", EmailAddress: "joe@smith.com", Password: "$2a$10$hash"},
		},
		{
			name: "not found",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(selectUserSQL)).
					WithArgs("joe@smith.com").
					WillReturnRows(sqlmock.NewRows(userColumns))
			},
			wantErr: ErrNotFound,
		},
		{
			name: "query error",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(selectUserSQL)).
					WithArgs("joe@smith.com").
					WillReturnError(errors.New("db query failed"))
			},
			errContain: "select user by email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockUserRepo(t, db.DialectSQLite)
			tt.mockExpect(mock)

			u, err := repo.FindByEmail(context.Background(), "joe@smith.com")

			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, u)
			case tt.errContain != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContain)
				assert.Nil(t, u)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.wantUser, u)
			}
		})
	}
}

func TestUserRepository_FindByID_PostgresPlaceholders(t *testing.T) {
	repo, mock := newMockUserRepo(t, db.DialectPostgres)

	mock.ExpectQuery(regexp.QuoteMeta(selectUserSQL + "id = $1")).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(3, "Sally", "Jones", "sally@jones.com", "h"))

	u, err := repo.FindByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), u.ID)
	assert.Equal(t, "sally@jones.com", u.EmailAddress)
}

func TestUserRepository_Create(t *testing.T) {
	const insertSQL = `INSERT INTO users (first_name,last_name,email_address,password,created_at,updated_at) VALUES (?,?,?,?,?,?) RETURNING id`

	tests := []struct {
		name       string
		mockExpect func(sqlmock.Sqlmock)
		wantID     int64
		errContain string
	}{
		{
			name: "success",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(insertSQL)).
					WithArgs("Joe", "Smith", "joe@smith.com", "hash", sqlmock.AnyArg(), sqlmock.AnyArg()).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
			},
			wantID: 42,
		},
		{
			name: "exec error",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(insertSQL)).
					WithArgs("Joe", "Smith", "joe@smith.com", "hash", sqlmock.AnyArg(), sqlmock.AnyArg()).
					WillReturnError(errors.New("db exec failed"))
			},
			errContain: "insert user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockUserRepo(t, db.DialectSQLite)
			tt.mockExpect(mock)

			id, err := repo.Create(context.Background(), models.User{
				FirstName: "Joe", LastName: "Smith", EmailAddress: "joe@smith.com", Password: "hash",
			})

			if tt.errContain != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContain)
				assert.Zero(t, id)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
		})
	}
}
