package pricingservice

import (
	"errors"

	"github.com/bookcycle/bookcycle/internal/domain"
)

var ErrInvalidInput = errors.New("invalid pricing input")

// Service derives a rental's cost breakdown. It is a pure function of
// its inputs, so callers may invoke it speculatively to preview cost.
type Service struct{}

func New() *Service {
	return &Service{}
}

// Quote computes the pre-discount breakdown:
// rentalFee = dailyFee × days, platformFee = floor(rentalFee × rate / 100),
// deposit flat. The discount is layered in later by the orchestrator.
func (s *Service) Quote(dailyFee domain.Money, durationDays int, settings domain.PlatformSettings) (*domain.RentalCostBreakdown, error) {
	if dailyFee <= 0 {
		return nil, ErrInvalidInput
	}
	if durationDays < 1 || durationDays > settings.MaxRentalDays {
		return nil, ErrInvalidInput
	}

	rentalFee := dailyFee.MulInt(durationDays)
	platformFee := rentalFee.PercentFloor(settings.CommissionRatePercent)

	return &domain.RentalCostBreakdown{
		RentalFee:       rentalFee,
		PlatformFee:     platformFee,
		SecurityDeposit: settings.SecurityDeposit,
		DiscountApplied: 0,
		TotalPayable:    rentalFee + platformFee + settings.SecurityDeposit,
	}, nil
}

// PlatformFeeForDays computes the commission charged when only `days`
// of a rental attract commission. Uses the same floor arithmetic as
// Quote so the two paths never drift.
func (s *Service) PlatformFeeForDays(dailyFee domain.Money, days int, settings domain.PlatformSettings) domain.Money {
	if days <= 0 {
		return 0
	}
	return dailyFee.MulInt(days).PercentFloor(settings.CommissionRatePercent)
}
