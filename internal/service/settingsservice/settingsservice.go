package settingsservice

import (
	"errors"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/bookcycle/bookcycle/internal/config"
	"github.com/bookcycle/bookcycle/internal/domain"
)

var ErrInvalidSettings = errors.New("invalid platform settings")

// Service hands out immutable PlatformSettings snapshots. Admin updates
// swap the whole snapshot atomically, so a transaction that took a
// snapshot at quote time keeps it through commit even if an update
// lands in between.
type Service struct {
	current atomic.Pointer[domain.PlatformSettings]
}

func New(initial domain.PlatformSettings) (*Service, error) {
	if err := validate(initial); err != nil {
		return nil, err
	}
	s := &Service{}
	s.current.Store(&initial)
	return s, nil
}

func FromConfig(cfg *config.Config) domain.PlatformSettings {
	return domain.PlatformSettings{
		CommissionRatePercent:       cfg.CommissionRatePercent,
		SecurityDeposit:             domain.Money(cfg.SecurityDepositMinor),
		CreditsPerRupeeDiscount:     cfg.CreditsPerRupeeDiscount,
		CreditsPerCommissionFreeDay: cfg.CreditsPerCommissionFreeDay,
		UploadRewardCredits:         cfg.UploadRewardCredits,
		ReferralRewardCredits:       cfg.ReferralRewardCredits,
		BorrowRewardCredits:         cfg.BorrowRewardCredits,
		LendRewardCredits:           cfg.LendRewardCredits,
		MaxRentalDays:               cfg.MaxRentalDays,
	}
}

func (s *Service) Snapshot() domain.PlatformSettings {
	return *s.current.Load()
}

func (s *Service) Update(settings domain.PlatformSettings) error {
	if err := validate(settings); err != nil {
		zap.L().Error("rejected settings update", zap.Error(err))
		return err
	}
	s.current.Store(&settings)
	zap.L().Info("platform settings updated",
		zap.Int("commission_rate_percent", settings.CommissionRatePercent),
		zap.Int64("credits_per_rupee", settings.CreditsPerRupeeDiscount),
	)
	return nil
}

func validate(settings domain.PlatformSettings) error {
	if settings.CommissionRatePercent < 0 || settings.CommissionRatePercent > 100 {
		return ErrInvalidSettings
	}
	if settings.SecurityDeposit < 0 {
		return ErrInvalidSettings
	}
	if settings.CreditsPerRupeeDiscount <= 0 || settings.CreditsPerCommissionFreeDay <= 0 {
		return ErrInvalidSettings
	}
	if settings.UploadRewardCredits < 0 || settings.ReferralRewardCredits < 0 ||
		settings.BorrowRewardCredits < 0 || settings.LendRewardCredits < 0 {
		return ErrInvalidSettings
	}
	if settings.MaxRentalDays < 1 {
		return ErrInvalidSettings
	}
	return nil
}
