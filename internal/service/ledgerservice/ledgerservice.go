package ledgerservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/bookcycle/bookcycle/internal/domain"
)

type Repo interface {
	AppendEarning(ctx context.Context, userID int, amount int64, reason domain.CreditReason, relatedEntityID string) (*domain.CreditLedgerEntry, error)
	AppendSpend(ctx context.Context, userID int, amount int64, reason domain.CreditReason, relatedEntityID string) (*domain.CreditLedgerEntry, error)
	AppendRefund(ctx context.Context, userID int, amount int64, reason domain.CreditReason, relatedEntityID string) (*domain.CreditLedgerEntry, error)
	FindByReasonAndEntityID(ctx context.Context, reason domain.CreditReason, relatedEntityID string) (*domain.CreditLedgerEntry, error)
	GetBalance(ctx context.Context, userID int) (balance int64, totalEarned int64, err error)
	SumByUserID(ctx context.Context, userID int) (int64, error)
	ListByUserID(ctx context.Context, userID int) ([]domain.CreditLedgerEntry, error)
	ListActiveUserIDs(ctx context.Context) ([]int, error)
}

var (
	ErrInsufficientCredits = errors.New("insufficient credits")
	ErrInvalidAmount       = errors.New("credit amount must be positive")
)

// Service is the single source of truth for credit balances. Balances
// are derived from the append-only ledger; the materialized column is
// a cache the repository keeps in step atomically with every append.
type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) RecordEarning(ctx context.Context, userID int, amount int64, reason domain.CreditReason, relatedEntityID string) (*domain.CreditLedgerEntry, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	entry, err := s.repo.AppendEarning(ctx, userID, amount, reason, relatedEntityID)
	if err != nil {
		zap.L().Error("failed to record earning", zap.Error(err))
		return nil, err
	}
	zap.L().Info("credits earned",
		zap.Int("userID", userID),
		zap.Int64("amount", amount),
		zap.String("reason", string(reason)),
	)
	return entry, nil
}

// RecordSpend appends a negative entry only if the balance covers it
// at the instant of commit. It never partially applies: either the
// entry lands and the balance drops, or nothing changes.
func (s *Service) RecordSpend(ctx context.Context, userID int, amount int64, reason domain.CreditReason, relatedEntityID string) (*domain.CreditLedgerEntry, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	entry, err := s.repo.AppendSpend(ctx, userID, amount, reason, relatedEntityID)
	if err != nil {
		zap.L().Error("failed to record spend", zap.Error(err))
		return nil, err
	}
	if entry == nil {
		return nil, ErrInsufficientCredits
	}
	zap.L().Info("credits spent",
		zap.Int("userID", userID),
		zap.Int64("amount", amount),
		zap.String("reason", string(reason)),
	)
	return entry, nil
}

// RecordRefund puts previously spent credits back on the balance. It
// is not an earning: the lifetime total, which feeds rank tiers and
// the leaderboard tie-break, already counted these credits once.
func (s *Service) RecordRefund(ctx context.Context, userID int, amount int64, reason domain.CreditReason, relatedEntityID string) (*domain.CreditLedgerEntry, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	entry, err := s.repo.AppendRefund(ctx, userID, amount, reason, relatedEntityID)
	if err != nil {
		zap.L().Error("failed to record refund", zap.Error(err))
		return nil, err
	}
	zap.L().Info("credits refunded",
		zap.Int("userID", userID),
		zap.Int64("amount", amount),
		zap.String("reason", string(reason)),
	)
	return entry, nil
}

// FindReferralClaim reports whether a referral code was already
// redeemed, by any user.
func (s *Service) FindReferralClaim(ctx context.Context, code string) (*domain.CreditLedgerEntry, error) {
	entry, err := s.repo.FindByReasonAndEntityID(ctx, domain.ReasonReferral, code)
	if err != nil {
		zap.L().Error("failed to look up referral claim", zap.Error(err))
		return nil, err
	}
	return entry, nil
}

func (s *Service) GetBalance(ctx context.Context, userID int) (int64, error) {
	balance, _, err := s.repo.GetBalance(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return 0, err
	}
	return balance, nil
}

func (s *Service) GetTotals(ctx context.Context, userID int) (balance int64, totalEarned int64, err error) {
	balance, totalEarned, err = s.repo.GetBalance(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get balance totals", zap.Error(err))
		return 0, 0, err
	}
	return balance, totalEarned, nil
}

func (s *Service) GetHistory(ctx context.Context, userID int) ([]domain.CreditLedgerEntry, error) {
	entries, err := s.repo.ListByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch ledger history", zap.Error(err))
		return nil, err
	}
	return entries, nil
}

// Reconcile replays every active user's ledger and compares the sum
// against the materialized balance. A mismatch is a reconciliation
// incident: it is logged loudly and counted, never swallowed.
func (s *Service) Reconcile(ctx context.Context) (int, error) {
	userIDs, err := s.repo.ListActiveUserIDs(ctx)
	if err != nil {
		return 0, err
	}

	mismatches := 0
	for _, userID := range userIDs {
		sum, err := s.repo.SumByUserID(ctx, userID)
		if err != nil {
			return mismatches, err
		}
		balance, _, err := s.repo.GetBalance(ctx, userID)
		if err != nil {
			return mismatches, err
		}
		if sum != balance {
			mismatches++
			zap.L().Error("ledger reconciliation incident: materialized balance diverges from ledger replay",
				zap.Int("userID", userID),
				zap.Int64("ledgerSum", sum),
				zap.Int64("materialized", balance),
			)
		}
	}

	if mismatches == 0 {
		zap.L().Info("ledger reconciliation clean", zap.Int("users", len(userIDs)))
	}
	return mismatches, nil
}
