package ledgerservice

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/bookcycle/bookcycle/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
	"golang.org/x/sync/errgroup"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo)
	defer ctrl.Finish()
	return service, repo
}

func TestRecordEarning(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		userID        int
		amount        int64
		reason        domain.CreditReason
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Successful earning",
			userID: 1,
			amount: 25,
			reason: domain.ReasonUpload,
			prepareMock: func() {
				repo.EXPECT().AppendEarning(gomock.Any(), 1, int64(25), domain.ReasonUpload, "12").Return(&domain.CreditLedgerEntry{
					UserID: 1,
					Delta:  25,
					Reason: domain.ReasonUpload,
				}, nil)
			},
		},
		{
			name:          "Zero amount rejected",
			userID:        1,
			amount:        0,
			reason:        domain.ReasonUpload,
			prepareMock:   func() {},
			expectedError: ErrInvalidAmount,
		},
		{
			name:          "Negative amount rejected",
			userID:        1,
			amount:        -5,
			reason:        domain.ReasonUpload,
			prepareMock:   func() {},
			expectedError: ErrInvalidAmount,
		},
		{
			name:   "Repository failure",
			userID: 1,
			amount: 25,
			reason: domain.ReasonUpload,
			prepareMock: func() {
				repo.EXPECT().AppendEarning(gomock.Any(), 1, int64(25), domain.ReasonUpload, "12").Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			entry, err := service.RecordEarning(context.Background(), tt.userID, tt.amount, tt.reason, "12")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, entry)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.amount, entry.Delta)
			}
		})
	}
}

func TestRecordSpend(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		amount        int64
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Successful spend",
			amount: 40,
			prepareMock: func() {
				repo.EXPECT().AppendSpend(gomock.Any(), 1, int64(40), domain.ReasonRedeemDiscount, "ref").Return(&domain.CreditLedgerEntry{
					UserID: 1,
					Delta:  -40,
					Reason: domain.ReasonRedeemDiscount,
				}, nil)
			},
		},
		{
			name:   "Insufficient balance",
			amount: 40,
			prepareMock: func() {
				// The repository signals a failed balance check with a nil
				// entry and no error.
				repo.EXPECT().AppendSpend(gomock.Any(), 1, int64(40), domain.ReasonRedeemDiscount, "ref").Return(nil, nil)
			},
			expectedError: ErrInsufficientCredits,
		},
		{
			name:          "Invalid amount",
			amount:        0,
			prepareMock:   func() {},
			expectedError: ErrInvalidAmount,
		},
		{
			name:   "Repository failure",
			amount: 40,
			prepareMock: func() {
				repo.EXPECT().AppendSpend(gomock.Any(), 1, int64(40), domain.ReasonRedeemDiscount, "ref").Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			entry, err := service.RecordSpend(context.Background(), 1, tt.amount, domain.ReasonRedeemDiscount, "ref")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, entry)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, -tt.amount, entry.Delta)
			}
		})
	}
}

func TestRecordRefund(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		amount        int64
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Successful refund",
			amount: 40,
			prepareMock: func() {
				repo.EXPECT().AppendRefund(gomock.Any(), 1, int64(40), domain.ReasonAdminAdjustment, "ref").Return(&domain.CreditLedgerEntry{
					UserID: 1,
					Delta:  40,
					Reason: domain.ReasonAdminAdjustment,
				}, nil)
			},
		},
		{
			name:          "Invalid amount",
			amount:        0,
			prepareMock:   func() {},
			expectedError: ErrInvalidAmount,
		},
		{
			name:   "Repository failure",
			amount: 40,
			prepareMock: func() {
				repo.EXPECT().AppendRefund(gomock.Any(), 1, int64(40), domain.ReasonAdminAdjustment, "ref").Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			entry, err := service.RecordRefund(context.Background(), 1, tt.amount, domain.ReasonAdminAdjustment, "ref")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, entry)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.amount, entry.Delta)
			}
		})
	}
}

func TestFindReferralClaim(t *testing.T) {
	service, repo := NewMock(t)

	claim := &domain.CreditLedgerEntry{UserID: 1, Delta: 50, Reason: domain.ReasonReferral, RelatedEntityID: "79927398713"}
	repo.EXPECT().FindByReasonAndEntityID(gomock.Any(), domain.ReasonReferral, "79927398713").Return(claim, nil)

	got, err := service.FindReferralClaim(context.Background(), "79927398713")
	assert.NoError(t, err)
	assert.Equal(t, claim, got)

	repo.EXPECT().FindByReasonAndEntityID(gomock.Any(), domain.ReasonReferral, "79927398713").Return(nil, nil)
	got, err = service.FindReferralClaim(context.Background(), "79927398713")
	assert.NoError(t, err)
	assert.Nil(t, got)

	repo.EXPECT().FindByReasonAndEntityID(gomock.Any(), domain.ReasonReferral, "79927398713").Return(nil, errors.New("db error"))
	_, err = service.FindReferralClaim(context.Background(), "79927398713")
	assert.Error(t, err)
}

func TestGetTotals(t *testing.T) {
	service, repo := NewMock(t)

	repo.EXPECT().GetBalance(gomock.Any(), 1).Return(int64(120), int64(340), nil)
	balance, totalEarned, err := service.GetTotals(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(120), balance)
	assert.Equal(t, int64(340), totalEarned)

	repo.EXPECT().GetBalance(gomock.Any(), 1).Return(int64(0), int64(0), errors.New("db error"))
	_, _, err = service.GetTotals(context.Background(), 1)
	assert.Error(t, err)
}

func TestGetHistory(t *testing.T) {
	service, repo := NewMock(t)

	entries := []domain.CreditLedgerEntry{
		{UserID: 1, Delta: -40, Reason: domain.ReasonRedeemDiscount},
		{UserID: 1, Delta: 25, Reason: domain.ReasonUpload},
	}
	repo.EXPECT().ListByUserID(gomock.Any(), 1).Return(entries, nil)

	got, err := service.GetHistory(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestReconcile(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name               string
		prepareMock        func()
		expectedMismatches int
		expectedError      error
	}{
		{
			name: "Clean ledger",
			prepareMock: func() {
				repo.EXPECT().ListActiveUserIDs(gomock.Any()).Return([]int{1, 2}, nil)
				repo.EXPECT().SumByUserID(gomock.Any(), 1).Return(int64(100), nil)
				repo.EXPECT().GetBalance(gomock.Any(), 1).Return(int64(100), int64(150), nil)
				repo.EXPECT().SumByUserID(gomock.Any(), 2).Return(int64(0), nil)
				repo.EXPECT().GetBalance(gomock.Any(), 2).Return(int64(0), int64(0), nil)
			},
			expectedMismatches: 0,
		},
		{
			name: "Divergent balance detected",
			prepareMock: func() {
				repo.EXPECT().ListActiveUserIDs(gomock.Any()).Return([]int{1}, nil)
				repo.EXPECT().SumByUserID(gomock.Any(), 1).Return(int64(90), nil)
				repo.EXPECT().GetBalance(gomock.Any(), 1).Return(int64(100), int64(150), nil)
			},
			expectedMismatches: 1,
		},
		{
			name: "Listing failure",
			prepareMock: func() {
				repo.EXPECT().ListActiveUserIDs(gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			mismatches, err := service.Reconcile(context.Background())
			if tt.expectedError != nil {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedMismatches, mismatches)
			}
		})
	}
}

// fakeLedgerRepo mimics the conditional-update semantics of the real
// repository: a spend lands only if the balance covers it at the
// instant of commit.
type fakeLedgerRepo struct {
	mu          sync.Mutex
	balance     int64
	totalEarned int64
	entries     []domain.CreditLedgerEntry
}

func (f *fakeLedgerRepo) AppendEarning(_ context.Context, userID int, amount int64, reason domain.CreditReason, relatedEntityID string) (*domain.CreditLedgerEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.balance += amount
	f.totalEarned += amount
	entry := domain.CreditLedgerEntry{UserID: userID, Delta: amount, Reason: reason, RelatedEntityID: relatedEntityID}
	f.entries = append(f.entries, entry)
	return &entry, nil
}

func (f *fakeLedgerRepo) AppendSpend(_ context.Context, userID int, amount int64, reason domain.CreditReason, relatedEntityID string) (*domain.CreditLedgerEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.balance < amount {
		return nil, nil
	}
	f.balance -= amount
	entry := domain.CreditLedgerEntry{UserID: userID, Delta: -amount, Reason: reason, RelatedEntityID: relatedEntityID}
	f.entries = append(f.entries, entry)
	return &entry, nil
}

func (f *fakeLedgerRepo) AppendRefund(_ context.Context, userID int, amount int64, reason domain.CreditReason, relatedEntityID string) (*domain.CreditLedgerEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.balance += amount
	entry := domain.CreditLedgerEntry{UserID: userID, Delta: amount, Reason: reason, RelatedEntityID: relatedEntityID}
	f.entries = append(f.entries, entry)
	return &entry, nil
}

func (f *fakeLedgerRepo) FindByReasonAndEntityID(_ context.Context, reason domain.CreditReason, relatedEntityID string) (*domain.CreditLedgerEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.entries {
		if e.Reason == reason && e.RelatedEntityID == relatedEntityID {
			e := e
			return &e, nil
		}
	}
	return nil, nil
}

func (f *fakeLedgerRepo) GetBalance(context.Context, int) (int64, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.balance, f.totalEarned, nil
}

func (f *fakeLedgerRepo) SumByUserID(context.Context, int) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var sum int64
	for _, e := range f.entries {
		sum += e.Delta
	}
	return sum, nil
}

func (f *fakeLedgerRepo) ListByUserID(context.Context, int) ([]domain.CreditLedgerEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.CreditLedgerEntry(nil), f.entries...), nil
}

func (f *fakeLedgerRepo) ListActiveUserIDs(context.Context) ([]int, error) {
	return []int{1}, nil
}

func TestRefundDoesNotInflateLifetimeTotal(t *testing.T) {
	// Earn 40, spend 40, then refund the spend. The balance is restored
	// but the lifetime total must stay at 40: the refunded credits were
	// already counted once, and the total drives rank tiers and the
	// leaderboard tie-break.
	repo := &fakeLedgerRepo{}
	service := New(repo)
	ctx := context.Background()

	_, err := service.RecordEarning(ctx, 1, 40, domain.ReasonUpload, "12")
	assert.NoError(t, err)

	_, err = service.RecordSpend(ctx, 1, 40, domain.ReasonRedeemDiscount, "ref")
	assert.NoError(t, err)

	_, err = service.RecordRefund(ctx, 1, 40, domain.ReasonAdminAdjustment, "ref")
	assert.NoError(t, err)

	balance, totalEarned, err := repo.GetBalance(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(40), balance)
	assert.Equal(t, int64(40), totalEarned)

	sum, err := repo.SumByUserID(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, balance, sum)
}

func TestConcurrentSpendsNeverOverdraw(t *testing.T) {
	// Two spends of 30 race against a balance of 40: exactly one may
	// land, and the survivor leaves the balance at 10 with a ledger that
	// replays to the same value.
	repo := &fakeLedgerRepo{}
	service := New(repo)
	ctx := context.Background()

	_, err := service.RecordEarning(ctx, 1, 40, domain.ReasonUpload, "seed")
	assert.NoError(t, err)

	var g errgroup.Group
	results := make([]error, 2)
	for i := 0; i < 2; i++ {
		i := i
		g.Go(func() error {
			_, err := service.RecordSpend(ctx, 1, 30, domain.ReasonRedeemDiscount, "race")
			results[i] = err
			return nil
		})
	}
	assert.NoError(t, g.Wait())

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, ErrInsufficientCredits)
		}
	}
	assert.Equal(t, 1, succeeded)

	balance, totalEarned, err := repo.GetBalance(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(10), balance)
	assert.Equal(t, int64(40), totalEarned)

	sum, err := repo.SumByUserID(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, balance, sum)
}
