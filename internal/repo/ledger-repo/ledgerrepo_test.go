package ledgerrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/bookcycle/bookcycle/internal/domain"
	"github.com/bookcycle/bookcycle/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const (
	updateEarningQuery = `
				UPDATE users
				SET credit_balance = credit_balance + $2, total_credits_earned = total_credits_earned + $2
				WHERE id = $1
				RETURNING credit_balance
			`
	updateSpendQuery = `
				UPDATE users
				SET credit_balance = credit_balance - $2
				WHERE id = $1 AND credit_balance >= $2
				RETURNING credit_balance
			`
	updateRefundQuery = `
				UPDATE users
				SET credit_balance = credit_balance + $2
				WHERE id = $1
				RETURNING credit_balance
			`
	insertEntryQuery = `
				INSERT INTO credit_ledger (user_id, delta, reason, related_entity_id, created_at)
				VALUES ($1, $2, $3, $4, $5)
				RETURNING id
			`
	findByReasonQuery = `
				SELECT id, user_id, delta, reason, related_entity_id, created_at
				FROM credit_ledger
				WHERE reason = $1 AND related_entity_id = $2
				ORDER BY id
				LIMIT 1
			`
)

var now = time.Now()

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func passthrough(tx *pg.MockTXManager, prepare func()) {
	tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		prepare()
		return fn(ctx)
	})
}

func TestRepository_AppendEarning(t *testing.T) {
	repo, mock, tx := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Successfully appends earning",
			mockSetup: func() {
				passthrough(tx, func() {
					mock.ExpectQuery(regexp.QuoteMeta(updateEarningQuery)).
						WithArgs(1, int64(25)).
						WillReturnRows(pgxmock.NewRows([]string{"credit_balance"}).AddRow(int64(25)))
					mock.ExpectQuery(regexp.QuoteMeta(insertEntryQuery)).
						WithArgs(1, int64(25), domain.ReasonUpload, "12", pgxmock.AnyArg()).
						WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(7)))
				})
			},
			expectErr: false,
		},
		{
			name: "Balance update fails",
			mockSetup: func() {
				passthrough(tx, func() {
					mock.ExpectQuery(regexp.QuoteMeta(updateEarningQuery)).
						WithArgs(1, int64(25)).
						WillReturnError(errors.New("database error"))
				})
			},
			expectErr: true,
		},
		{
			name: "Entry insert fails",
			mockSetup: func() {
				passthrough(tx, func() {
					mock.ExpectQuery(regexp.QuoteMeta(updateEarningQuery)).
						WithArgs(1, int64(25)).
						WillReturnRows(pgxmock.NewRows([]string{"credit_balance"}).AddRow(int64(25)))
					mock.ExpectQuery(regexp.QuoteMeta(insertEntryQuery)).
						WithArgs(1, int64(25), domain.ReasonUpload, "12", pgxmock.AnyArg()).
						WillReturnError(errors.New("database error"))
				})
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			entry, err := repo.AppendEarning(context.Background(), 1, 25, domain.ReasonUpload, "12")
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, entry)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, entry)
				assert.Equal(t, int64(7), entry.ID)
				assert.Equal(t, int64(25), entry.Delta)
			}
		})
	}
}

func TestRepository_AppendSpend(t *testing.T) {
	repo, mock, tx := NewMock(t)

	tests := []struct {
		name          string
		mockSetup     func()
		expectErr     bool
		expectEntry   bool
		expectedDelta int64
	}{
		{
			name: "Successfully appends spend",
			mockSetup: func() {
				passthrough(tx, func() {
					mock.ExpectQuery(regexp.QuoteMeta(updateSpendQuery)).
						WithArgs(1, int64(40)).
						WillReturnRows(pgxmock.NewRows([]string{"credit_balance"}).AddRow(int64(5)))
					mock.ExpectQuery(regexp.QuoteMeta(insertEntryQuery)).
						WithArgs(1, int64(-40), domain.ReasonRedeemDiscount, "ref", pgxmock.AnyArg()).
						WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(8)))
				})
			},
			expectEntry:   true,
			expectedDelta: -40,
		},
		{
			name: "Insufficient balance yields nil entry and nil error",
			mockSetup: func() {
				passthrough(tx, func() {
					// The conditional UPDATE matches no row when the balance
					// cannot cover the spend.
					mock.ExpectQuery(regexp.QuoteMeta(updateSpendQuery)).
						WithArgs(1, int64(40)).
						WillReturnError(pgx.ErrNoRows)
				})
			},
			expectEntry: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				passthrough(tx, func() {
					mock.ExpectQuery(regexp.QuoteMeta(updateSpendQuery)).
						WithArgs(1, int64(40)).
						WillReturnError(errors.New("database error"))
				})
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			entry, err := repo.AppendSpend(context.Background(), 1, 40, domain.ReasonRedeemDiscount, "ref")
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, entry)
				return
			}
			assert.NoError(t, err)
			if tt.expectEntry {
				assert.NotNil(t, entry)
				assert.Equal(t, tt.expectedDelta, entry.Delta)
			} else {
				assert.Nil(t, entry)
			}
		})
	}
}

func TestRepository_AppendRefund(t *testing.T) {
	repo, mock, tx := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Refund restores balance without touching lifetime total",
			mockSetup: func() {
				passthrough(tx, func() {
					mock.ExpectQuery(regexp.QuoteMeta(updateRefundQuery)).
						WithArgs(1, int64(40)).
						WillReturnRows(pgxmock.NewRows([]string{"credit_balance"}).AddRow(int64(40)))
					mock.ExpectQuery(regexp.QuoteMeta(insertEntryQuery)).
						WithArgs(1, int64(40), domain.ReasonAdminAdjustment, "ref", pgxmock.AnyArg()).
						WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(9)))
				})
			},
			expectErr: false,
		},
		{
			name: "Balance update fails",
			mockSetup: func() {
				passthrough(tx, func() {
					mock.ExpectQuery(regexp.QuoteMeta(updateRefundQuery)).
						WithArgs(1, int64(40)).
						WillReturnError(errors.New("database error"))
				})
			},
			expectErr: true,
		},
		{
			name: "Entry insert fails",
			mockSetup: func() {
				passthrough(tx, func() {
					mock.ExpectQuery(regexp.QuoteMeta(updateRefundQuery)).
						WithArgs(1, int64(40)).
						WillReturnRows(pgxmock.NewRows([]string{"credit_balance"}).AddRow(int64(40)))
					mock.ExpectQuery(regexp.QuoteMeta(insertEntryQuery)).
						WithArgs(1, int64(40), domain.ReasonAdminAdjustment, "ref", pgxmock.AnyArg()).
						WillReturnError(errors.New("database error"))
				})
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			entry, err := repo.AppendRefund(context.Background(), 1, 40, domain.ReasonAdminAdjustment, "ref")
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, entry)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, entry)
				assert.Equal(t, int64(9), entry.ID)
				assert.Equal(t, int64(40), entry.Delta)
			}
		})
	}
}

func TestRepository_FindByReasonAndEntityID(t *testing.T) {
	repo, mock, _ := NewMock(t)

	tests := []struct {
		name        string
		mockSetup   func()
		expectErr   bool
		expectEntry bool
	}{
		{
			name: "Finds an existing referral claim",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "user_id", "delta", "reason", "related_entity_id", "created_at"}).
					AddRow(int64(3), 1, int64(50), domain.ReasonReferral, "79927398713", now)
				mock.ExpectQuery(regexp.QuoteMeta(findByReasonQuery)).
					WithArgs(domain.ReasonReferral, "79927398713").
					WillReturnRows(rows)
			},
			expectEntry: true,
		},
		{
			name: "No claim yields nil entry and nil error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(findByReasonQuery)).
					WithArgs(domain.ReasonReferral, "79927398713").
					WillReturnError(pgx.ErrNoRows)
			},
			expectEntry: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(findByReasonQuery)).
					WithArgs(domain.ReasonReferral, "79927398713").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			entry, err := repo.FindByReasonAndEntityID(context.Background(), domain.ReasonReferral, "79927398713")
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, entry)
				return
			}
			assert.NoError(t, err)
			if tt.expectEntry {
				assert.NotNil(t, entry)
				assert.Equal(t, int64(50), entry.Delta)
				assert.Equal(t, "79927398713", entry.RelatedEntityID)
			} else {
				assert.Nil(t, entry)
			}
		})
	}
}

func TestRepository_GetBalance(t *testing.T) {
	repo, mock, _ := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT credit_balance, total_credits_earned`)).
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows([]string{"credit_balance", "total_credits_earned"}).AddRow(int64(120), int64(340)))

	balance, totalEarned, err := repo.GetBalance(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(120), balance)
	assert.Equal(t, int64(340), totalEarned)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT credit_balance, total_credits_earned`)).
		WithArgs(1).
		WillReturnError(errors.New("database error"))

	_, _, err = repo.GetBalance(context.Background(), 1)
	assert.Error(t, err)
}

func TestRepository_SumByUserID(t *testing.T) {
	repo, mock, _ := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(SUM(delta), 0)`)).
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(int64(120)))

	sum, err := repo.SumByUserID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(120), sum)
}

func TestRepository_ListByUserID(t *testing.T) {
	repo, mock, _ := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		expectLen int
	}{
		{
			name: "Returns entries newest first",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "user_id", "delta", "reason", "related_entity_id", "created_at"}).
					AddRow(int64(2), 1, int64(-40), domain.ReasonRedeemDiscount, "ref", now).
					AddRow(int64(1), 1, int64(25), domain.ReasonUpload, "12", now)
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id, delta, reason, related_entity_id, created_at`)).
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectLen: 2,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id, delta, reason, related_entity_id, created_at`)).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			entries, err := repo.ListByUserID(context.Background(), 1)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, entries, tt.expectLen)
			}
		})
	}
}

func TestRepository_ListActiveUserIDs(t *testing.T) {
	repo, mock, _ := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT DISTINCT user_id`)).
		WillReturnRows(pgxmock.NewRows([]string{"user_id"}).AddRow(1).AddRow(2))

	ids, err := repo.ListActiveUserIDs(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 2}, ids)
}
