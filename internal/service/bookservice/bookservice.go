package bookservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/bookcycle/bookcycle/internal/domain"
)

type Repo interface {
	Create(ctx context.Context, book *domain.Book) (*domain.Book, error)
	FindByID(ctx context.Context, bookID int) (*domain.Book, error)
	FindByOwnerID(ctx context.Context, ownerID int) ([]domain.Book, error)
	FindPendingReview(ctx context.Context, limit uint32) ([]domain.Book, error)
	UpdateStatus(ctx context.Context, bookID int, status domain.BookStatus) error
}

var ErrInvalidBook = errors.New("invalid book")

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

// AddBook registers an uploaded book pending moderation. The upload
// reward is granted later, when the verification poller sees the book
// approved.
func (s *Service) AddBook(ctx context.Context, ownerID int, title string, dailyFee domain.Money) (*domain.Book, error) {
	if strings.TrimSpace(title) == "" || dailyFee <= 0 {
		return nil, ErrInvalidBook
	}

	book := &domain.Book{
		OwnerID:   ownerID,
		Title:     title,
		DailyFee:  dailyFee,
		Status:    domain.BookPendingReview,
		CreatedAt: time.Now(),
	}

	book, err := s.repo.Create(ctx, book)
	if err != nil {
		zap.L().Error("can't save book: ", zap.Error(err))
		return nil, err
	}

	return book, nil
}

func (s *Service) GetBooks(ctx context.Context, ownerID int) ([]domain.Book, error) {
	books, err := s.repo.FindByOwnerID(ctx, ownerID)
	if err != nil {
		zap.L().Error("failed to get books", zap.Error(err))
		return nil, err
	}
	return books, nil
}
