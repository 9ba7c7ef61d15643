package verification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/bookcycle/bookcycle/internal/config"
	"github.com/bookcycle/bookcycle/internal/domain"
	"github.com/bookcycle/bookcycle/pkg/clients"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

var processingBooks sync.Map

// Response is the moderation system's verdict for an uploaded book.
type Response struct {
	BookID int    `json:"book_id"`
	Status string `json:"status"`
}

type BookRepo interface {
	FindPendingReview(ctx context.Context, limit uint32) ([]domain.Book, error)
	UpdateStatus(ctx context.Context, bookID int, status domain.BookStatus) error
}

type Ledger interface {
	RecordEarning(ctx context.Context, userID int, amount int64, reason domain.CreditReason, relatedEntityID string) (*domain.CreditLedgerEntry, error)
}

type SettingsProvider interface {
	Snapshot() domain.PlatformSettings
}

// Service polls the external moderation system for pending book
// uploads and grants the upload reward once a book is approved.
type Service struct {
	url            string
	bookRepo       BookRepo
	ledger         Ledger
	settings       SettingsProvider
	client         clients.HTTPClientI
	limit          uint32
	workerPool     WorkerPoolI
	updateInterval time.Duration
}

func New(cfg *config.Config, bookRepo BookRepo, ledger Ledger, settings SettingsProvider, client clients.HTTPClientI) *Service {
	return &Service{
		url:            cfg.ModerationAddress,
		bookRepo:       bookRepo,
		ledger:         ledger,
		settings:       settings,
		client:         client,
		limit:          1000,
		workerPool:     NewWorkerPool(10),
		updateInterval: time.Second * 5,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Book verification service started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping verification service")
			return
		case <-ticker.C:
			s.processBooks(ctx)
		}
	}
}

func (s *Service) processBooks(ctx context.Context) {
	books, err := s.bookRepo.FindPendingReview(ctx, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch books for verification", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, book := range books {
		book := book

		if _, loaded := processingBooks.LoadOrStore(book.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer processingBooks.Delete(book.ID)
				return s.handleBook(ctx, book)
			})
			if err != nil {
				processingBooks.Delete(book.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error processing books", zap.Error(err))
	}
}

func (s *Service) handleBook(ctx context.Context, book domain.Book) error {
	url := s.url + "/api/books/" + strconv.Itoa(book.ID)
	var err error
	var statusCode int
	var respBody []byte
	var respHeaders http.Header

	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			statusCode, respBody, respHeaders, err = s.client.Get(url, nil)
			if err != nil {
				if attempt < maxRetries {
					retryAfter := retryInterval * time.Duration(attempt)
					time.Sleep(retryAfter)
					continue
				}
				return fmt.Errorf("failed to verify book %d after %d retries: %w", book.ID, maxRetries, err)
			}

			switch statusCode {
			case http.StatusTooManyRequests:
				return s.handleRateLimit(book, respHeaders, attempt)
			case http.StatusNoContent:
				zap.L().Info("Book not yet known to moderation system", zap.Int("bookID", book.ID), zap.Int("attempt", attempt))
				if attempt < maxRetries {
					retryAfter := retryInterval * time.Duration(attempt)
					time.Sleep(retryAfter)
					continue
				}
				return fmt.Errorf("book %d not found in moderation system after %d retries", book.ID, maxRetries)

			case http.StatusOK:
				return s.processVerdict(ctx, book, respBody)

			default:
				zap.L().Error("Unexpected status code", zap.Int("status", statusCode), zap.Int("bookID", book.ID))
				return errors.New("unexpected status code")
			}
		}
	}
	return nil
}

func (s *Service) processVerdict(ctx context.Context, book domain.Book, respBody []byte) error {
	var response Response
	if err := json.Unmarshal(respBody, &response); err != nil {
		return fmt.Errorf("failed to parse response body: %w", err)
	}

	if response.BookID != book.ID {
		return fmt.Errorf("book id mismatch: expected %d, got %d", book.ID, response.BookID)
	}

	switch response.Status {
	case "APPROVED":
		if err := s.bookRepo.UpdateStatus(ctx, book.ID, domain.BookApproved); err != nil {
			return fmt.Errorf("failed to update book %d status: %w", book.ID, err)
		}
		settings := s.settings.Snapshot()
		if settings.UploadRewardCredits > 0 {
			_, err := s.ledger.RecordEarning(ctx, book.OwnerID, settings.UploadRewardCredits, domain.ReasonUpload, strconv.Itoa(book.ID))
			if err != nil {
				return fmt.Errorf("failed to grant upload reward for book %d: %w", book.ID, err)
			}
		}
		zap.L().Info("Book approved, upload reward granted", zap.Int("bookID", book.ID), zap.Int("ownerID", book.OwnerID))
	case "REJECTED":
		if err := s.bookRepo.UpdateStatus(ctx, book.ID, domain.BookRejected); err != nil {
			return fmt.Errorf("failed to update book %d status: %w", book.ID, err)
		}
		zap.L().Info("Book rejected by moderation", zap.Int("bookID", book.ID))
	case "PENDING":
		zap.L().Info("Book still under review", zap.Int("bookID", book.ID))
	default:
		zap.L().Warn("Unrecognized moderation status", zap.Int("bookID", book.ID), zap.String("status", response.Status))
	}

	return nil
}

func (s *Service) handleRateLimit(book domain.Book, respHeaders http.Header, attempt int) error {
	retryAfterHeader := respHeaders.Get("Retry-After")
	retryAfter := retryInterval * time.Duration(attempt)

	if retryAfterHeader != "" {
		if seconds, err := strconv.Atoi(retryAfterHeader); err == nil {
			retryAfter = time.Duration(seconds) * time.Second
		}
	}
	zap.L().Warn(
		"Rate limit detected, retrying",
		zap.Int("bookID", book.ID),
		zap.Int("attempt", attempt),
		zap.Duration("retryAfter", retryAfter),
	)
	time.Sleep(retryAfter)
	return nil
}
