package rentalrepo

import (
	"context"

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

func (r *Repository) Create(ctx context.Context, rental *domain.Rental) (*domain.Rental, error) {
	query := `
		INSERT INTO rentals (reference, book_id, borrower_id, lender_id, duration_days,
			rental_fee, platform_fee, security_deposit, discount_applied, total_payable,
			commission_free_days, payment_ref, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		rental.Reference, rental.BookID, rental.BorrowerID, rental.LenderID, rental.DurationDays,
		rental.RentalFee, rental.PlatformFee, rental.SecurityDeposit, rental.DiscountApplied, rental.TotalPayable,
		rental.CommissionFreeDays, rental.PaymentRef, rental.Status, rental.CreatedAt,
	).Scan(&rental.ID)
	if err != nil {
		zap.L().Error("can't save rental", zap.Error(err))
		return nil, err
	}
	return rental, nil
}

func (r *Repository) FindByBorrowerID(ctx context.Context, borrowerID int) ([]domain.Rental, error) {
	query := `
        SELECT id, reference, book_id, borrower_id, lender_id, duration_days,
            rental_fee, platform_fee, security_deposit, discount_applied, total_payable,
            commission_free_days, payment_ref, status, created_at
        FROM rentals
        WHERE borrower_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, borrowerID)
	if err != nil {
		zap.L().Error("failed to fetch rentals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		var rt domain.Rental
		err := rows.Scan(&rt.ID, &rt.Reference, &rt.BookID, &rt.BorrowerID, &rt.LenderID, &rt.DurationDays,
			&rt.RentalFee, &rt.PlatformFee, &rt.SecurityDeposit, &rt.DiscountApplied, &rt.TotalPayable,
			&rt.CommissionFreeDays, &rt.PaymentRef, &rt.Status, &rt.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan rental row", zap.Error(err))
			return nil, err
		}
		rentals = append(rentals, rt)
	}

	return rentals, nil
}
