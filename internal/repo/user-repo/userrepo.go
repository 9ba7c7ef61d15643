package userrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/bookcycle/bookcycle/internal/domain"
	"github.com/bookcycle/bookcycle/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	var user domain.User
	err := repo.db.QueryRow(ctx, "SELECT id, login, password_hash FROM users WHERE login = $1", login).Scan(&user.ID, &user.Login, &user.PasswordHash)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (login, password_hash)
		VALUES ($1, $2)
		RETURNING id
	`
	err := repo.db.QueryRow(ctx, query, user.Login, user.PasswordHash).Scan(&user.ID)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// ListTopByBalance returns up to limit users ordered for the
// leaderboard: balance descending, lifetime earnings descending, then
// id ascending so repeated calls over identical data produce identical
// output.
func (repo *Repository) ListTopByBalance(ctx context.Context, limit int) ([]domain.User, error) {
	query := `
        SELECT id, login, credit_balance, total_credits_earned
        FROM users
        ORDER BY credit_balance DESC, total_credits_earned DESC, id ASC
        LIMIT $1
    `
	rows, err := repo.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("failed to fetch leaderboard users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		err := rows.Scan(&u.ID, &u.Login, &u.CreditBalance, &u.TotalCreditsEarned)
		if err != nil {
			zap.L().Error("failed to scan user row", zap.Error(err))
			return nil, err
		}
		users = append(users, u)
	}

	return users, nil
}
