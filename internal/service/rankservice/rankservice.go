package rankservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/bookcycle/bookcycle/internal/domain"
)

type UserRepo interface {
	ListTopByBalance(ctx context.Context, limit int) ([]domain.User, error)
}

const (
	defaultLeaderboardLimit = 50
	maxLeaderboardLimit     = 200
)

type Tier struct {
	Name       string
	MinCredits int64
}

// Tiers are ordered ascending by threshold. A total sitting exactly on
// a boundary resolves to the higher tier.
var tiers = []Tier{
	{Name: "Page Turner", MinCredits: 0},
	{Name: "Bookworm", MinCredits: 100},
	{Name: "Bibliophile", MinCredits: 500},
	{Name: "Curator", MinCredits: 1500},
	{Name: "Head Librarian", MinCredits: 5000},
}

// DeriveRankTier is a monotonic step function over the tier table,
// recomputed from lifetime earnings on every read.
func DeriveRankTier(totalCreditsEarned int64) string {
	name := tiers[0].Name
	for _, t := range tiers {
		if totalCreditsEarned >= t.MinCredits {
			name = t.Name
		}
	}
	return name
}

type LeaderboardRow struct {
	Rank        int
	UserID      int
	Login       string
	Balance     int64
	TotalEarned int64
	Tier        string
}

type Service struct {
	userRepo UserRepo
}

func New(userRepo UserRepo) *Service {
	return &Service{
		userRepo: userRepo,
	}
}

// Leaderboard returns users ordered by balance descending, ties broken
// by lifetime earnings descending then user id ascending. Ordering is
// done in the repository query, so identical data yields identical
// output on every call.
func (s *Service) Leaderboard(ctx context.Context, limit int) ([]LeaderboardRow, error) {
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}
	if limit > maxLeaderboardLimit {
		limit = maxLeaderboardLimit
	}

	users, err := s.userRepo.ListTopByBalance(ctx, limit)
	if err != nil {
		zap.L().Error("failed to build leaderboard", zap.Error(err))
		return nil, err
	}

	rows := make([]LeaderboardRow, len(users))
	for i, u := range users {
		rows[i] = LeaderboardRow{
			Rank:        i + 1,
			UserID:      u.ID,
			Login:       u.Login,
			Balance:     u.CreditBalance,
			TotalEarned: u.TotalCreditsEarned,
			Tier:        DeriveRankTier(u.TotalCreditsEarned),
		}
	}
	return rows, nil
}
