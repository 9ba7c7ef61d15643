package handlers

import (
	"net/http"

	_ "github.com/bookcycle/bookcycle/docs"
	authhandlers "github.com/bookcycle/bookcycle/internal/handlers/auth"
	bookhandlers "github.com/bookcycle/bookcycle/internal/handlers/books"
	credithandlers "github.com/bookcycle/bookcycle/internal/handlers/credits"
	rentalhandlers "github.com/bookcycle/bookcycle/internal/handlers/rentals"
	settingshandlers "github.com/bookcycle/bookcycle/internal/handlers/settings"
	"github.com/bookcycle/bookcycle/internal/service"
	"github.com/bookcycle/bookcycle/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type BooksHandler interface {
	AddBook(w http.ResponseWriter, r *http.Request)
	GetBooks(w http.ResponseWriter, r *http.Request)
}

type CreditsHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
	PreviewRedemption(w http.ResponseWriter, r *http.Request)
	ClaimReferral(w http.ResponseWriter, r *http.Request)
	GetLeaderboard(w http.ResponseWriter, r *http.Request)
}

type RentalsHandler interface {
	Quote(w http.ResponseWriter, r *http.Request)
	Commit(w http.ResponseWriter, r *http.Request)
	GetRentals(w http.ResponseWriter, r *http.Request)
}

type SettingsHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler     AuthHandler
	BooksHandler    BooksHandler
	CreditsHandler  CreditsHandler
	RentalsHandler  RentalsHandler
	SettingsHandler SettingsHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:     authhandlers.New(s.AuthService),
		BooksHandler:    bookhandlers.New(s.BookService),
		CreditsHandler:  credithandlers.New(s.CreditService, s.RankService),
		RentalsHandler:  rentalhandlers.New(s.RentalService),
		SettingsHandler: settingshandlers.New(s.SettingsService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Get("/api/leaderboard", h.CreditsHandler.GetLeaderboard)
	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/credits", func(r chi.Router) {
				r.Get("/balance", h.CreditsHandler.GetBalance)
				r.Get("/history", h.CreditsHandler.GetHistory)
				r.Post("/preview", h.CreditsHandler.PreviewRedemption)
			})
			r.Post("/referral", h.CreditsHandler.ClaimReferral)
		})
	})
	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)
		r.Route("/api/books", func(r chi.Router) {
			r.Post("/", h.BooksHandler.AddBook)
			r.Get("/", h.BooksHandler.GetBooks)
		})
		r.Route("/api/rentals", func(r chi.Router) {
			r.Post("/quote", h.RentalsHandler.Quote)
			r.Post("/", h.RentalsHandler.Commit)
			r.Get("/", h.RentalsHandler.GetRentals)
		})
		r.Route("/api/admin/settings", func(r chi.Router) {
			r.Get("/", h.SettingsHandler.Get)
			r.Put("/", h.SettingsHandler.Update)
		})
	})

	return r
}
