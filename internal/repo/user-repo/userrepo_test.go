package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/bookcycle/bookcycle/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()
	return repo, mockDB
}

func TestRepository_FindByLogin(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name         string
		mockSetup    func()
		expectedUser *domain.User
		expectErr    bool
	}{
		{
			name: "User found",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, login, password_hash FROM users WHERE login = $1")).
					WithArgs("testuser").
					WillReturnRows(pgxmock.NewRows([]string{"id", "login", "password_hash"}).AddRow(1, "testuser", "hashedpassword"))
			},
			expectedUser: &domain.User{ID: 1, Login: "testuser", PasswordHash: "hashedpassword"},
		},
		{
			name: "User not found",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, login, password_hash FROM users WHERE login = $1")).
					WithArgs("testuser").
					WillReturnError(pgx.ErrNoRows)
			},
			expectedUser: nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, login, password_hash FROM users WHERE login = $1")).
					WithArgs("testuser").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			user, err := repo.FindByLogin(context.Background(), "testuser")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUser, user)
			}
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Successfully creates user",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (login, password_hash)")).
					WithArgs("testuser", "hashedpassword").
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(1))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (login, password_hash)")).
					WithArgs("testuser", "hashedpassword").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			user, err := repo.Create(context.Background(), &domain.User{Login: "testuser", PasswordHash: "hashedpassword"})
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, user.ID)
			}
		})
	}
}

func TestRepository_ListTopByBalance(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		expectLen int
	}{
		{
			name: "Returns users ordered by balance",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "login", "credit_balance", "total_credits_earned"}).
					AddRow(2, "reader_two", int64(500), int64(1200)).
					AddRow(1, "reader_one", int64(120), int64(340))
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, login, credit_balance, total_credits_earned")).
					WithArgs(10).
					WillReturnRows(rows)
			},
			expectLen: 2,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, login, credit_balance, total_credits_earned")).
					WithArgs(10).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			users, err := repo.ListTopByBalance(context.Background(), 10)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, users, tt.expectLen)
				assert.Equal(t, "reader_two", users[0].Login)
			}
		})
	}
}
