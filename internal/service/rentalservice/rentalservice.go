package rentalservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bookcycle/bookcycle/internal/domain"
	"github.com/bookcycle/bookcycle/internal/pg"
	"github.com/bookcycle/bookcycle/internal/service/conversionservice"
	"github.com/bookcycle/bookcycle/internal/service/ledgerservice"
)

type BookRepo interface {
	FindByID(ctx context.Context, bookID int) (*domain.Book, error)
}

type RentalRepo interface {
	Create(ctx context.Context, rental *domain.Rental) (*domain.Rental, error)
	FindByBorrowerID(ctx context.Context, borrowerID int) ([]domain.Rental, error)
}

type Ledger interface {
	RecordEarning(ctx context.Context, userID int, amount int64, reason domain.CreditReason, relatedEntityID string) (*domain.CreditLedgerEntry, error)
	RecordSpend(ctx context.Context, userID int, amount int64, reason domain.CreditReason, relatedEntityID string) (*domain.CreditLedgerEntry, error)
	RecordRefund(ctx context.Context, userID int, amount int64, reason domain.CreditReason, relatedEntityID string) (*domain.CreditLedgerEntry, error)
}

type Converter interface {
	PreviewRupeesDiscount(ctx context.Context, userID int, requestedCredits int64, amountOwed domain.Money, settings domain.PlatformSettings) (*conversionservice.RupeesQuote, error)
	PreviewCommissionFreeDays(ctx context.Context, userID int, requestedCredits int64, maxDays int, settings domain.PlatformSettings) (*conversionservice.CommissionFreeQuote, error)
}

type Pricer interface {
	Quote(dailyFee domain.Money, durationDays int, settings domain.PlatformSettings) (*domain.RentalCostBreakdown, error)
	PlatformFeeForDays(dailyFee domain.Money, days int, settings domain.PlatformSettings) domain.Money
}

type SettingsProvider interface {
	Snapshot() domain.PlatformSettings
}

var (
	ErrBookNotFound       = errors.New("book not found")
	ErrBookNotAvailable   = errors.New("book is not available for rental")
	ErrOwnRental          = errors.New("cannot rent your own book")
	ErrPaymentRequired    = errors.New("payment confirmation required")
	ErrRedemptionConflict = errors.New("redemption conflicted with a concurrent balance change")
	ErrCommitFailure      = errors.New("rental commit failed")
)

// Commit-time states. A quote is advisory until the credit spend
// commits; nothing needs cleanup if the caller abandons it before that.
type commitState string

const (
	stateQuoted          commitState = "QUOTED"
	stateCreditsReserved commitState = "CREDITS_RESERVED"
	stateCommitted       commitState = "COMMITTED"
	stateCompensated     commitState = "COMPENSATED"
	stateRejected        commitState = "REJECTED"
)

// Retries on a conflicting spend are bounded to avoid livelock under
// contention; after that the caller gets ErrRedemptionConflict and a
// fresh quote.
const maxRedemptionRetries = 3

// Service is the only component allowed to combine pricing, credit
// conversion and ledger mutation into a rental-creation side effect.
type Service struct {
	bookRepo   BookRepo
	rentalRepo RentalRepo
	ledger     Ledger
	converter  Converter
	pricer     Pricer
	settings   SettingsProvider
	txManager  pg.TXManager
}

func New(bookRepo BookRepo, rentalRepo RentalRepo, ledger Ledger, converter Converter, pricer Pricer, settings SettingsProvider, txManager pg.TXManager) *Service {
	return &Service{
		bookRepo:   bookRepo,
		rentalRepo: rentalRepo,
		ledger:     ledger,
		converter:  converter,
		pricer:     pricer,
		settings:   settings,
		txManager:  txManager,
	}
}

// Quote computes a speculative cost breakdown. No side effects.
func (s *Service) Quote(ctx context.Context, bookID int, durationDays int) (*domain.RentalCostBreakdown, error) {
	settings := s.settings.Snapshot()

	book, err := s.bookRepo.FindByID(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, ErrBookNotFound
	}

	return s.pricer.Quote(book.DailyFee, durationDays, settings)
}

// Commit creates a rental with an optional credit redemption as one
// logical operation: quote, reserve credits via an atomic ledger
// spend, then persist the rental and both activity rewards in a single
// transaction. A spend that succeeds but whose rental transaction
// fails is compensated with a reversing entry.
func (s *Service) Commit(ctx context.Context, bookID, borrowerID, durationDays int, redemption *domain.RedemptionRequest, paymentRef string) (*domain.Rental, error) {
	settings := s.settings.Snapshot()

	if paymentRef == "" {
		return nil, ErrPaymentRequired
	}

	book, err := s.bookRepo.FindByID(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, ErrBookNotFound
	}
	if book.Status != domain.BookApproved {
		return nil, ErrBookNotAvailable
	}
	if book.OwnerID == borrowerID {
		return nil, ErrOwnRental
	}

	breakdown, err := s.pricer.Quote(book.DailyFee, durationDays, settings)
	if err != nil {
		return nil, err
	}

	rental := &domain.Rental{
		Reference:       uuid.NewString(),
		BookID:          book.ID,
		BorrowerID:      borrowerID,
		LenderID:        book.OwnerID,
		DurationDays:    durationDays,
		RentalFee:       breakdown.RentalFee,
		PlatformFee:     breakdown.PlatformFee,
		SecurityDeposit: breakdown.SecurityDeposit,
		PaymentRef:      paymentRef,
		Status:          domain.RentalCommitted,
		CreatedAt:       time.Now(),
	}

	state := stateQuoted
	var spendEntry *domain.CreditLedgerEntry
	var creditsConsumed int64

	if redemption != nil {
		spendEntry, creditsConsumed, err = s.reserveCredits(ctx, book, rental, breakdown, redemption, settings)
		if err != nil {
			logCommitState(rental.Reference, stateRejected)
			return nil, err
		}
		state = stateCreditsReserved
	}

	rental.TotalPayable = rental.RentalFee + rental.PlatformFee + rental.SecurityDeposit - rental.DiscountApplied

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.rentalRepo.Create(ctx, rental); err != nil {
			return err
		}
		if settings.BorrowRewardCredits > 0 {
			if _, err := s.ledger.RecordEarning(ctx, borrowerID, settings.BorrowRewardCredits, domain.ReasonBorrow, rental.Reference); err != nil {
				return err
			}
		}
		if settings.LendRewardCredits > 0 {
			if _, err := s.ledger.RecordEarning(ctx, book.OwnerID, settings.LendRewardCredits, domain.ReasonLend, rental.Reference); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		zap.L().Error("rental commit failed", zap.String("reference", rental.Reference), zap.Error(err))
		if state == stateCreditsReserved {
			s.compensateSpend(ctx, spendEntry, creditsConsumed, rental.Reference)
			logCommitState(rental.Reference, stateCompensated)
		}
		return nil, ErrCommitFailure
	}

	logCommitState(rental.Reference, stateCommitted)
	return rental, nil
}

// reserveCredits converts the redemption request and performs the
// atomic ledger spend, re-quoting with a bounded number of retries
// when a concurrent balance change invalidates the quote.
func (s *Service) reserveCredits(ctx context.Context, book *domain.Book, rental *domain.Rental, breakdown *domain.RentalCostBreakdown, redemption *domain.RedemptionRequest, settings domain.PlatformSettings) (*domain.CreditLedgerEntry, int64, error) {
	// The deposit is never discountable.
	amountOwed := breakdown.RentalFee + breakdown.PlatformFee

	for attempt := 1; attempt <= maxRedemptionRetries; attempt++ {
		var (
			discount domain.Money
			days     int
			credits  int64
			reason   domain.CreditReason
		)

		switch redemption.OfferType {
		case domain.OfferRupees:
			q, err := s.converter.PreviewRupeesDiscount(ctx, rental.BorrowerID, redemption.RequestedCredits, amountOwed, settings)
			if err != nil {
				return nil, 0, err
			}
			discount, credits, reason = q.DiscountAmount, q.CreditsConsumed, domain.ReasonRedeemDiscount
		case domain.OfferCommissionFree:
			q, err := s.converter.PreviewCommissionFreeDays(ctx, rental.BorrowerID, redemption.RequestedCredits, rental.DurationDays, settings)
			if err != nil {
				return nil, 0, err
			}
			days, credits, reason = q.DaysGranted, q.CreditsConsumed, domain.ReasonRedeemCommissionFree
			chargedFee := s.pricer.PlatformFeeForDays(book.DailyFee, rental.DurationDays-days, settings)
			discount = breakdown.PlatformFee - chargedFee
		default:
			return nil, 0, conversionservice.ErrInvalidRequest
		}

		entry, err := s.ledger.RecordSpend(ctx, rental.BorrowerID, credits, reason, rental.Reference)
		if errors.Is(err, ledgerservice.ErrInsufficientCredits) {
			// The balance moved between quote and spend; re-quote.
			zap.L().Warn("redemption quote invalidated by concurrent spend",
				zap.String("reference", rental.Reference),
				zap.Int("attempt", attempt),
			)
			continue
		}
		if err != nil {
			return nil, 0, err
		}

		rental.DiscountApplied = discount
		rental.CommissionFreeDays = days
		return entry, credits, nil
	}

	return nil, 0, ErrRedemptionConflict
}

// compensateSpend reverses a reserved spend after a failed commit. The
// reversal is a refund, not an earning: the credits were already
// counted toward the lifetime total when first earned. If the
// compensation itself fails the discrepancy is logged as a
// reconciliation incident for the scheduled replay audit to surface.
func (s *Service) compensateSpend(ctx context.Context, spendEntry *domain.CreditLedgerEntry, creditsConsumed int64, reference string) {
	_, err := s.ledger.RecordRefund(ctx, spendEntry.UserID, creditsConsumed, domain.ReasonAdminAdjustment, reference)
	if err != nil {
		zap.L().Error("ledger reconciliation incident: failed to compensate reserved credits",
			zap.String("reference", reference),
			zap.Int("userID", spendEntry.UserID),
			zap.Int64("credits", creditsConsumed),
			zap.Error(err),
		)
	}
}

func (s *Service) GetRentals(ctx context.Context, borrowerID int) ([]domain.Rental, error) {
	rentals, err := s.rentalRepo.FindByBorrowerID(ctx, borrowerID)
	if err != nil {
		zap.L().Error("failed to fetch rentals", zap.Error(err))
		return nil, err
	}
	return rentals, nil
}

func logCommitState(reference string, state commitState) {
	zap.L().Info("rental commit state",
		zap.String("reference", reference),
		zap.String("state", string(state)),
	)
}
