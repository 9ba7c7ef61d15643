package reconcile

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type Ledger interface {
	Reconcile(ctx context.Context) (int, error)
}

// Service periodically replays the credit ledger against the
// materialized balances. The schedule comes from config (cron spec or
// @every syntax).
type Service struct {
	ledger   Ledger
	schedule string
	cron     *cron.Cron
}

func New(ledger Ledger, schedule string) *Service {
	return &Service{
		ledger:   ledger,
		schedule: schedule,
		cron:     cron.New(),
	}
}

func (s *Service) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.schedule, func() {
		s.runOnce(ctx)
	})
	if err != nil {
		return fmt.Errorf("can't schedule ledger reconciliation: %w", err)
	}

	s.cron.Start()
	zap.L().Info("Ledger reconciliation scheduled", zap.String("schedule", s.schedule))

	go func() {
		<-ctx.Done()
		s.cron.Stop()
	}()

	return nil
}

func (s *Service) runOnce(ctx context.Context) {
	mismatches, err := s.ledger.Reconcile(ctx)
	if err != nil {
		zap.L().Error("Ledger reconciliation run failed", zap.Error(err))
		return
	}
	if mismatches > 0 {
		zap.L().Error("Ledger reconciliation found discrepancies", zap.Int("mismatches", mismatches))
	}
}
