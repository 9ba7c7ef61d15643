package repo

import (
	"github.com/bookcycle/bookcycle/internal/pg"
	bookrepo "github.com/bookcycle/bookcycle/internal/repo/book-repo"
	ledgerrepo "github.com/bookcycle/bookcycle/internal/repo/ledger-repo"
	rentalrepo "github.com/bookcycle/bookcycle/internal/repo/rental-repo"
	userrepo "github.com/bookcycle/bookcycle/internal/repo/user-repo"
	"github.com/bookcycle/bookcycle/internal/service/authservice"
	"github.com/bookcycle/bookcycle/internal/service/bookservice"
	"github.com/bookcycle/bookcycle/internal/service/ledgerservice"
	"github.com/bookcycle/bookcycle/internal/service/rankservice"
	"github.com/bookcycle/bookcycle/internal/service/rentalservice"
)

type Repositories struct {
	UserRepo   authservice.Repo
	RankRepo   rankservice.UserRepo
	BookRepo   bookservice.Repo
	LedgerRepo ledgerservice.Repo
	RentalRepo rentalservice.RentalRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn)
	bookRepo := bookrepo.New(conn)
	ledgerRepo := ledgerrepo.New(conn, txManager)
	rentalRepo := rentalrepo.New(conn)

	return &Repositories{
		UserRepo:   userRepo,
		RankRepo:   userRepo,
		BookRepo:   bookRepo,
		LedgerRepo: ledgerRepo,
		RentalRepo: rentalRepo,
	}
}
