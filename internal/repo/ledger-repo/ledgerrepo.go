package ledgerrepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/bookcycle/bookcycle/internal/domain"
	"github.com/bookcycle/bookcycle/internal/pg"
)

// Repository is the single writer of credit_ledger rows and of the
// materialized balance columns on users. The ledger is append-only;
// users.credit_balance is recoverable by replaying it.
type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// AppendEarning inserts a positive ledger entry and bumps both the
// balance and the lifetime total in the same transaction.
func (r *Repository) AppendEarning(ctx context.Context, userID int, amount int64, reason domain.CreditReason, relatedEntityID string) (*domain.CreditLedgerEntry, error) {
	entry := &domain.CreditLedgerEntry{
		UserID:          userID,
		Delta:           amount,
		Reason:          reason,
		RelatedEntityID: relatedEntityID,
		CreatedAt:       time.Now(),
	}

	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		updateQuery := `
			UPDATE users
			SET credit_balance = credit_balance + $2, total_credits_earned = total_credits_earned + $2
			WHERE id = $1
			RETURNING credit_balance
		`
		var balance int64
		if err := r.db.QueryRow(ctx, updateQuery, userID, amount).Scan(&balance); err != nil {
			zap.L().Error("failed to apply earning to balance", zap.Error(err))
			return err
		}

		insertQuery := `
			INSERT INTO credit_ledger (user_id, delta, reason, related_entity_id, created_at)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`
		if err := r.db.QueryRow(ctx, insertQuery, entry.UserID, entry.Delta, entry.Reason, entry.RelatedEntityID, entry.CreatedAt).Scan(&entry.ID); err != nil {
			zap.L().Error("failed to append ledger entry", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// AppendSpend inserts a negative ledger entry only if the balance
// covers it at the instant of commit. The conditional UPDATE and the
// entry insert run in one transaction, so a concurrent spend can never
// drive the balance negative. Returns (nil, nil) when the balance
// check fails.
func (r *Repository) AppendSpend(ctx context.Context, userID int, amount int64, reason domain.CreditReason, relatedEntityID string) (*domain.CreditLedgerEntry, error) {
	entry := &domain.CreditLedgerEntry{
		UserID:          userID,
		Delta:           -amount,
		Reason:          reason,
		RelatedEntityID: relatedEntityID,
		CreatedAt:       time.Now(),
	}

	insufficient := false
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		updateQuery := `
			UPDATE users
			SET credit_balance = credit_balance - $2
			WHERE id = $1 AND credit_balance >= $2
			RETURNING credit_balance
		`
		var balance int64
		if err := r.db.QueryRow(ctx, updateQuery, userID, amount).Scan(&balance); err != nil {
			if err == pgx.ErrNoRows {
				insufficient = true
				return nil
			}
			zap.L().Error("failed to apply spend to balance", zap.Error(err))
			return err
		}

		insertQuery := `
			INSERT INTO credit_ledger (user_id, delta, reason, related_entity_id, created_at)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`
		if err := r.db.QueryRow(ctx, insertQuery, entry.UserID, entry.Delta, entry.Reason, entry.RelatedEntityID, entry.CreatedAt).Scan(&entry.ID); err != nil {
			zap.L().Error("failed to append ledger entry", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if insufficient {
		return nil, nil
	}
	return entry, nil
}

// AppendRefund restores previously spent credits: it bumps the balance
// without touching the lifetime total, which already counted those
// credits when they were first earned.
func (r *Repository) AppendRefund(ctx context.Context, userID int, amount int64, reason domain.CreditReason, relatedEntityID string) (*domain.CreditLedgerEntry, error) {
	entry := &domain.CreditLedgerEntry{
		UserID:          userID,
		Delta:           amount,
		Reason:          reason,
		RelatedEntityID: relatedEntityID,
		CreatedAt:       time.Now(),
	}

	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		updateQuery := `
			UPDATE users
			SET credit_balance = credit_balance + $2
			WHERE id = $1
			RETURNING credit_balance
		`
		var balance int64
		if err := r.db.QueryRow(ctx, updateQuery, userID, amount).Scan(&balance); err != nil {
			zap.L().Error("failed to apply refund to balance", zap.Error(err))
			return err
		}

		insertQuery := `
			INSERT INTO credit_ledger (user_id, delta, reason, related_entity_id, created_at)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`
		if err := r.db.QueryRow(ctx, insertQuery, entry.UserID, entry.Delta, entry.Reason, entry.RelatedEntityID, entry.CreatedAt).Scan(&entry.ID); err != nil {
			zap.L().Error("failed to append ledger entry", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// FindByReasonAndEntityID returns the first ledger entry recorded for a
// reason/entity pair, or (nil, nil) when none exists.
func (r *Repository) FindByReasonAndEntityID(ctx context.Context, reason domain.CreditReason, relatedEntityID string) (*domain.CreditLedgerEntry, error) {
	query := `
        SELECT id, user_id, delta, reason, related_entity_id, created_at
        FROM credit_ledger
        WHERE reason = $1 AND related_entity_id = $2
        ORDER BY id
        LIMIT 1
    `
	var e domain.CreditLedgerEntry
	err := r.db.QueryRow(ctx, query, reason, relatedEntityID).Scan(&e.ID, &e.UserID, &e.Delta, &e.Reason, &e.RelatedEntityID, &e.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to find ledger entry", zap.Error(err))
		return nil, err
	}
	return &e, nil
}

func (r *Repository) GetBalance(ctx context.Context, userID int) (balance int64, totalEarned int64, err error) {
	query := `
        SELECT credit_balance, total_credits_earned
        FROM users
        WHERE id = $1
    `
	err = r.db.QueryRow(ctx, query, userID).Scan(&balance, &totalEarned)
	if err != nil {
		zap.L().Error("failed to get user balance", zap.Error(err))
		return 0, 0, err
	}
	return balance, totalEarned, nil
}

// SumByUserID recomputes the balance from the ledger. This is the
// durable recovery path and the reconciliation check, not the hot read.
func (r *Repository) SumByUserID(ctx context.Context, userID int) (int64, error) {
	query := `
        SELECT COALESCE(SUM(delta), 0)
        FROM credit_ledger
        WHERE user_id = $1
    `
	var sum int64
	err := r.db.QueryRow(ctx, query, userID).Scan(&sum)
	if err != nil {
		zap.L().Error("failed to sum ledger entries", zap.Error(err))
		return 0, err
	}
	return sum, nil
}

func (r *Repository) ListByUserID(ctx context.Context, userID int) ([]domain.CreditLedgerEntry, error) {
	query := `
        SELECT id, user_id, delta, reason, related_entity_id, created_at
        FROM credit_ledger
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch ledger entries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.CreditLedgerEntry
	for rows.Next() {
		var e domain.CreditLedgerEntry
		err := rows.Scan(&e.ID, &e.UserID, &e.Delta, &e.Reason, &e.RelatedEntityID, &e.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan ledger row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, nil
}

func (r *Repository) ListActiveUserIDs(ctx context.Context) ([]int, error) {
	query := `
        SELECT DISTINCT user_id
        FROM credit_ledger
        ORDER BY user_id
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to fetch active user ids", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("failed to scan user id", zap.Error(err))
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}
