package bookrepo

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

func (r *Repository) Create(ctx context.Context, book *domain.Book) (*domain.Book, error) {
	query := `
		INSERT INTO books (owner_id, title, daily_fee, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, book.OwnerID, book.Title, book.DailyFee, book.Status, book.CreatedAt).Scan(&book.ID)
	if err != nil {
		zap.L().Error("can't save book", zap.Error(err))
		return nil, err
	}
	return book, nil
}

func (r *Repository) FindByID(ctx context.Context, bookID int) (*domain.Book, error) {
	query := `
        SELECT id, owner_id, title, daily_fee, status
        FROM books
        WHERE id = $1
    `
	var book domain.Book
	err := r.db.QueryRow(ctx, query, bookID).Scan(&book.ID, &book.OwnerID, &book.Title, &book.DailyFee, &book.Status)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find book", zap.Error(err))
		return nil, err
	}
	return &book, nil
}

func (r *Repository) FindByOwnerID(ctx context.Context, ownerID int) ([]domain.Book, error) {
	query := `
        SELECT id, owner_id, title, daily_fee, status
        FROM books
        WHERE owner_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		zap.L().Error("failed to fetch books", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var books []domain.Book
	for rows.Next() {
		var b domain.Book
		err := rows.Scan(&b.ID, &b.OwnerID, &b.Title, &b.DailyFee, &b.Status)
		if err != nil {
			zap.L().Error("failed to scan book row", zap.Error(err))
			return nil, err
		}
		books = append(books, b)
	}

	return books, nil
}

func (r *Repository) FindPendingReview(ctx context.Context, limit uint32) ([]domain.Book, error) {
	query := `
        SELECT id, owner_id, title, daily_fee, status
        FROM books
        WHERE status = $1
        ORDER BY created_at
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, domain.BookPendingReview, limit)
	if err != nil {
		zap.L().Error("failed to fetch books for review", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var books []domain.Book
	for rows.Next() {
		var b domain.Book
		err := rows.Scan(&b.ID, &b.OwnerID, &b.Title, &b.DailyFee, &b.Status)
		if err != nil {
			zap.L().Error("failed to scan book row", zap.Error(err))
			return nil, err
		}
		books = append(books, b)
	}

	return books, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, bookID int, status domain.BookStatus) error {
	query := `
		UPDATE books
		SET status = $2
		WHERE id = $1
	`
	_, err := r.db.Exec(ctx, query, bookID, status)
	if err != nil {
		zap.L().Error("can't update book status", zap.Error(err))
		return err
	}
	return nil
}
