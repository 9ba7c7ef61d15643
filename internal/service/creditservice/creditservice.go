package creditservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/bookcycle/bookcycle/internal/domain"
	"github.com/bookcycle/bookcycle/internal/service/conversionservice"
	"github.com/bookcycle/bookcycle/pkg/validate"
)

type Ledger interface {
	GetTotals(ctx context.Context, userID int) (balance int64, totalEarned int64, err error)
	GetHistory(ctx context.Context, userID int) ([]domain.CreditLedgerEntry, error)
	RecordEarning(ctx context.Context, userID int, amount int64, reason domain.CreditReason, relatedEntityID string) (*domain.CreditLedgerEntry, error)
	FindReferralClaim(ctx context.Context, code string) (*domain.CreditLedgerEntry, error)
}

type Converter interface {
	PreviewRupeesDiscount(ctx context.Context, userID int, requestedCredits int64, amountOwed domain.Money, settings domain.PlatformSettings) (*conversionservice.RupeesQuote, error)
	PreviewCommissionFreeDays(ctx context.Context, userID int, requestedCredits int64, maxDays int, settings domain.PlatformSettings) (*conversionservice.CommissionFreeQuote, error)
}

type SettingsProvider interface {
	Snapshot() domain.PlatformSettings
}

var (
	ErrInvalidReferralCode    = errors.New("invalid referral code")
	ErrReferralAlreadyClaimed = errors.New("referral code already claimed")
)

// Service is the credits-facing API surface: balances, history,
// referral rewards and read-only redemption previews.
type Service struct {
	ledger    Ledger
	converter Converter
	settings  SettingsProvider
}

func New(ledger Ledger, converter Converter, settings SettingsProvider) *Service {
	return &Service{
		ledger:    ledger,
		converter: converter,
		settings:  settings,
	}
}

func (s *Service) GetTotals(ctx context.Context, userID int) (balance int64, totalEarned int64, err error) {
	return s.ledger.GetTotals(ctx, userID)
}

func (s *Service) GetHistory(ctx context.Context, userID int) ([]domain.CreditLedgerEntry, error) {
	return s.ledger.GetHistory(ctx, userID)
}

// ClaimReferral credits the referral reward for a Luhn-valid code. A
// code is redeemable exactly once: the ledger keeps the code on the
// referral entry, so a repeat claim is rejected before any earning is
// recorded.
func (s *Service) ClaimReferral(ctx context.Context, userID int, code string) (*domain.CreditLedgerEntry, error) {
	if !validate.IsLuhn(code) {
		return nil, ErrInvalidReferralCode
	}

	claimed, err := s.ledger.FindReferralClaim(ctx, code)
	if err != nil {
		zap.L().Error("failed to check referral claim", zap.Error(err))
		return nil, err
	}
	if claimed != nil {
		return nil, ErrReferralAlreadyClaimed
	}

	settings := s.settings.Snapshot()
	entry, err := s.ledger.RecordEarning(ctx, userID, settings.ReferralRewardCredits, domain.ReasonReferral, code)
	if err != nil {
		zap.L().Error("failed to grant referral reward", zap.Error(err))
		return nil, err
	}
	return entry, nil
}

type RedemptionPreview struct {
	OfferType       domain.OfferType
	DiscountAmount  domain.Money
	DaysGranted     int
	CreditsConsumed int64
}

// PreviewRedemption quotes what a redemption would deliver without
// touching the ledger. The quote is advisory: nothing is reserved
// until a rental commit performs the spend.
func (s *Service) PreviewRedemption(ctx context.Context, userID int, offerType domain.OfferType, requestedCredits int64, amountOwed domain.Money) (*RedemptionPreview, error) {
	settings := s.settings.Snapshot()

	switch offerType {
	case domain.OfferRupees:
		q, err := s.converter.PreviewRupeesDiscount(ctx, userID, requestedCredits, amountOwed, settings)
		if err != nil {
			return nil, err
		}
		return &RedemptionPreview{
			OfferType:       offerType,
			DiscountAmount:  q.DiscountAmount,
			CreditsConsumed: q.CreditsConsumed,
		}, nil
	case domain.OfferCommissionFree:
		q, err := s.converter.PreviewCommissionFreeDays(ctx, userID, requestedCredits, 0, settings)
		if err != nil {
			return nil, err
		}
		return &RedemptionPreview{
			OfferType:       offerType,
			DaysGranted:     q.DaysGranted,
			CreditsConsumed: q.CreditsConsumed,
		}, nil
	default:
		return nil, conversionservice.ErrInvalidRequest
	}
}
