package rankservice

import (
	"context"
	"errors"
	"testing"

	"github.com/bookcycle/bookcycle/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockUserRepo) {
	ctrl := gomock.NewController(t)
	userRepo := NewMockUserRepo(ctrl)
	service := New(userRepo)
	defer ctrl.Finish()
	return service, userRepo
}

func TestDeriveRankTier(t *testing.T) {
	tests := []struct {
		name        string
		totalEarned int64
		expected    string
	}{
		{name: "Fresh account", totalEarned: 0, expected: "Page Turner"},
		{name: "Just below first boundary", totalEarned: 99, expected: "Page Turner"},
		{name: "Exactly on boundary resolves upward", totalEarned: 100, expected: "Bookworm"},
		{name: "Mid tier", totalEarned: 499, expected: "Bookworm"},
		{name: "Bibliophile boundary", totalEarned: 500, expected: "Bibliophile"},
		{name: "Curator boundary", totalEarned: 1500, expected: "Curator"},
		{name: "Head Librarian boundary", totalEarned: 5000, expected: "Head Librarian"},
		{name: "Far beyond top tier", totalEarned: 1_000_000, expected: "Head Librarian"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DeriveRankTier(tt.totalEarned))
		})
	}
}

func TestDeriveRankTierNeverDowngrades(t *testing.T) {
	// Tier is a function of lifetime earnings, which only grow, so the
	// derived tier must be monotonic in its input.
	prev := DeriveRankTier(0)
	prevIdx := 0
	for earned := int64(0); earned <= 6000; earned += 50 {
		tier := DeriveRankTier(earned)
		idx := 0
		for i, t := range tiers {
			if t.Name == tier {
				idx = i
			}
		}
		assert.GreaterOrEqual(t, idx, prevIdx, "tier downgraded at %d (%s -> %s)", earned, prev, tier)
		prev = tier
		prevIdx = idx
	}
}

func TestLeaderboard(t *testing.T) {
	service, userRepo := NewMock(t)

	users := []domain.User{
		{ID: 3, Login: "curator", CreditBalance: 900, TotalCreditsEarned: 2000},
		{ID: 1, Login: "bookworm", CreditBalance: 120, TotalCreditsEarned: 340},
		{ID: 2, Login: "fresh", CreditBalance: 0, TotalCreditsEarned: 0},
	}

	tests := []struct {
		name          string
		limit         int
		prepareMock   func()
		expectedRows  []LeaderboardRow
		expectedError error
	}{
		{
			name:  "Rows ranked in repository order",
			limit: 10,
			prepareMock: func() {
				userRepo.EXPECT().ListTopByBalance(gomock.Any(), 10).Return(users, nil)
			},
			expectedRows: []LeaderboardRow{
				{Rank: 1, UserID: 3, Login: "curator", Balance: 900, TotalEarned: 2000, Tier: "Curator"},
				{Rank: 2, UserID: 1, Login: "bookworm", Balance: 120, TotalEarned: 340, Tier: "Bookworm"},
				{Rank: 3, UserID: 2, Login: "fresh", Balance: 0, TotalEarned: 0, Tier: "Page Turner"},
			},
		},
		{
			name:  "Zero limit falls back to default",
			limit: 0,
			prepareMock: func() {
				userRepo.EXPECT().ListTopByBalance(gomock.Any(), defaultLeaderboardLimit).Return(nil, nil)
			},
			expectedRows: []LeaderboardRow{},
		},
		{
			name:  "Oversized limit is clamped",
			limit: 100000,
			prepareMock: func() {
				userRepo.EXPECT().ListTopByBalance(gomock.Any(), maxLeaderboardLimit).Return(nil, nil)
			},
			expectedRows: []LeaderboardRow{},
		},
		{
			name:  "Repository failure",
			limit: 10,
			prepareMock: func() {
				userRepo.EXPECT().ListTopByBalance(gomock.Any(), 10).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rows, err := service.Leaderboard(context.Background(), tt.limit)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedRows, rows)
			}
		})
	}
}

func TestLeaderboardDeterministic(t *testing.T) {
	service, userRepo := NewMock(t)

	users := []domain.User{
		{ID: 1, Login: "a", CreditBalance: 100, TotalCreditsEarned: 100},
		{ID: 2, Login: "b", CreditBalance: 100, TotalCreditsEarned: 100},
	}
	userRepo.EXPECT().ListTopByBalance(gomock.Any(), 10).Return(users, nil).Times(2)

	first, err := service.Leaderboard(context.Background(), 10)
	assert.NoError(t, err)
	second, err := service.Leaderboard(context.Background(), 10)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}
