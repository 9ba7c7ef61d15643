package service

import (
	"github.com/bookcycle/bookcycle/internal/handlers/auth"
	"github.com/bookcycle/bookcycle/internal/handlers/books"
	"github.com/bookcycle/bookcycle/internal/handlers/credits"
	"github.com/bookcycle/bookcycle/internal/handlers/rentals"
	"github.com/bookcycle/bookcycle/internal/handlers/settings"

	pkgauth "github.com/bookcycle/bookcycle/pkg/auth"

	"github.com/bookcycle/bookcycle/internal/config"
	"github.com/bookcycle/bookcycle/internal/pg"
	"github.com/bookcycle/bookcycle/internal/repo"
	authservice "github.com/bookcycle/bookcycle/internal/service/authservice"
	bookservice "github.com/bookcycle/bookcycle/internal/service/bookservice"
	conversionservice "github.com/bookcycle/bookcycle/internal/service/conversionservice"
	creditservice "github.com/bookcycle/bookcycle/internal/service/creditservice"
	ledgerservice "github.com/bookcycle/bookcycle/internal/service/ledgerservice"
	pricingservice "github.com/bookcycle/bookcycle/internal/service/pricingservice"
	rankservice "github.com/bookcycle/bookcycle/internal/service/rankservice"
	rentalservice "github.com/bookcycle/bookcycle/internal/service/rentalservice"
	settingsservice "github.com/bookcycle/bookcycle/internal/service/settingsservice"
)

type Services struct {
	AuthService     auth.Service
	BookService     books.Service
	CreditService   credits.Service
	RankService     credits.RankService
	RentalService   rentals.Service
	SettingsService settings.Service

	// LedgerService is wired directly into the verification poller and
	// the reconciliation scheduler; it has no handler of its own.
	LedgerService *ledgerservice.Service
}

func New(cfg *config.Config, repo *repo.Repositories, txManager pg.TXManager) (*Services, error) {
	settingsService, err := settingsservice.New(settingsservice.FromConfig(cfg))
	if err != nil {
		return nil, err
	}

	ledgerService := ledgerservice.New(repo.LedgerRepo)
	conversionService := conversionservice.New(ledgerService)
	pricingService := pricingservice.New()
	rentalService := rentalservice.New(repo.BookRepo, repo.RentalRepo, ledgerService, conversionService, pricingService, settingsService, txManager)
	creditService := creditservice.New(ledgerService, conversionService, settingsService)
	rankService := rankservice.New(repo.RankRepo)
	bookService := bookservice.New(repo.BookRepo)
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:     authService,
		BookService:     bookService,
		CreditService:   creditService,
		RankService:     rankService,
		RentalService:   rentalService,
		SettingsService: settingsService,
		LedgerService:   ledgerService,
	}, nil
}
