package books

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bookcycle/bookcycle/internal/domain"
	"github.com/bookcycle/bookcycle/internal/dto"
	"github.com/bookcycle/bookcycle/internal/service/bookservice"
	"github.com/bookcycle/bookcycle/pkg/auth"
	"github.com/bookcycle/bookcycle/pkg/utils"
)

type Service interface {
	AddBook(ctx context.Context, ownerID int, title string, dailyFee domain.Money) (*domain.Book, error)
	GetBooks(ctx context.Context, ownerID int) ([]domain.Book, error)
}

type BooksHandler struct {
	bookService Service
}

func New(bookService Service) *BooksHandler {
	return &BooksHandler{
		bookService: bookService,
	}
}

// AddBook godoc
//
//	@Summary		Upload a book
//	@Description	Register a book for rental. The book stays pending until the moderation system approves it; approval grants the upload reward.
//	@Tags			Books
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AddBookRequestDTO	true	"Book payload"
//	@Success		200		{object}	dto.BookResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid book"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/books [post]
func (h *BooksHandler) AddBook(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.AddBookRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	book, err := h.bookService.AddBook(r.Context(), userID, req.Title, domain.Money(req.DailyFee))
	if err != nil {
		switch {
		case errors.Is(err, bookservice.ErrInvalidBook):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, toBookDTO(book))
}

// GetBooks godoc
//
//	@Summary		List own books
//	@Description	Get the authenticated user's uploaded books, newest first.
//	@Tags			Books
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.BookResponseDTO	"Books"
//	@Success		204	{object}	utils.Response		"No books"
//	@Failure		401	{object}	utils.Response		"User not authorized"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/api/books [get]
func (h *BooksHandler) GetBooks(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	books, err := h.bookService.GetBooks(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch books")
		return
	}

	if len(books) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No books")
		return
	}

	response := make([]dto.BookResponseDTO, len(books))
	for i := range books {
		response[i] = toBookDTO(&books[i])
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toBookDTO(book *domain.Book) dto.BookResponseDTO {
	return dto.BookResponseDTO{
		ID:       book.ID,
		Title:    book.Title,
		DailyFee: int64(book.DailyFee),
		Status:   string(book.Status),
	}
}
