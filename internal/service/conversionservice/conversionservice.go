package conversionservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/bookcycle/bookcycle/internal/domain"
)

type Ledger interface {
	GetBalance(ctx context.Context, userID int) (int64, error)
}

var (
	ErrInvalidRequest    = errors.New("requested credits must be positive")
	ErrNoValueRedeemable = errors.New("redemption yields no value")
)

type RupeesQuote struct {
	DiscountAmount  domain.Money
	CreditsConsumed int64
}

type CommissionFreeQuote struct {
	DaysGranted     int
	CreditsConsumed int64
}

// Service translates credits into a rupee discount or a
// commission-free-day grant. Quotes are advisory: nothing is reserved
// until the caller performs the ledger spend.
type Service struct {
	ledger Ledger
}

func New(ledger Ledger) *Service {
	return &Service{
		ledger: ledger,
	}
}

// PreviewRupeesDiscount bounds the discount by available balance, by
// the conversion rate, and by the amount owed. CreditsConsumed is
// recomputed from the bounded discount so leftover sub-rate credits
// are never spent: a user is only ever charged the credits that
// correspond to value actually delivered.
func (s *Service) PreviewRupeesDiscount(ctx context.Context, userID int, requestedCredits int64, amountOwed domain.Money, settings domain.PlatformSettings) (*RupeesQuote, error) {
	if requestedCredits <= 0 {
		return nil, ErrInvalidRequest
	}

	balance, err := s.ledger.GetBalance(ctx, userID)
	if err != nil {
		zap.L().Error("failed to read balance for conversion", zap.Error(err))
		return nil, err
	}

	usableCredits := min64(requestedCredits, balance)
	rawDiscountRupees := usableCredits / settings.CreditsPerRupeeDiscount
	discountRupees := min64(rawDiscountRupees, amountOwed.WholeRupees())
	if discountRupees == 0 {
		return nil, ErrNoValueRedeemable
	}

	return &RupeesQuote{
		DiscountAmount:  domain.FromRupees(discountRupees),
		CreditsConsumed: discountRupees * settings.CreditsPerRupeeDiscount,
	}, nil
}

// PreviewCommissionFreeDays converts credits into waived-commission
// days. maxDays > 0 caps the grant (a rental cannot use more free days
// than it lasts); maxDays == 0 leaves it unbounded for standalone
// previews. Consumed credits are recomputed from the capped grant.
func (s *Service) PreviewCommissionFreeDays(ctx context.Context, userID int, requestedCredits int64, maxDays int, settings domain.PlatformSettings) (*CommissionFreeQuote, error) {
	if requestedCredits <= 0 {
		return nil, ErrInvalidRequest
	}

	balance, err := s.ledger.GetBalance(ctx, userID)
	if err != nil {
		zap.L().Error("failed to read balance for conversion", zap.Error(err))
		return nil, err
	}

	usableCredits := min64(requestedCredits, balance)
	daysGranted := usableCredits / settings.CreditsPerCommissionFreeDay
	if maxDays > 0 && daysGranted > int64(maxDays) {
		daysGranted = int64(maxDays)
	}
	if daysGranted == 0 {
		return nil, ErrNoValueRedeemable
	}

	return &CommissionFreeQuote{
		DaysGranted:     int(daysGranted),
		CreditsConsumed: daysGranted * settings.CreditsPerCommissionFreeDay,
	}, nil
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
