package rentals

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bookcycle/bookcycle/internal/domain"
	"github.com/bookcycle/bookcycle/internal/dto"
	"github.com/bookcycle/bookcycle/internal/service/conversionservice"
	"github.com/bookcycle/bookcycle/internal/service/ledgerservice"
	"github.com/bookcycle/bookcycle/internal/service/pricingservice"
	"github.com/bookcycle/bookcycle/internal/service/rentalservice"
	"github.com/bookcycle/bookcycle/pkg/auth"
	"github.com/bookcycle/bookcycle/pkg/utils"
)

type Service interface {
	Quote(ctx context.Context, bookID int, durationDays int) (*domain.RentalCostBreakdown, error)
	Commit(ctx context.Context, bookID, borrowerID, durationDays int, redemption *domain.RedemptionRequest, paymentRef string) (*domain.Rental, error)
	GetRentals(ctx context.Context, borrowerID int) ([]domain.Rental, error)
}

type RentalsHandler struct {
	rentalService Service
}

func New(rentalService Service) *RentalsHandler {
	return &RentalsHandler{
		rentalService: rentalService,
	}
}

// Quote godoc
//
//	@Summary		Quote a rental
//	@Description	Compute the cost breakdown for renting a book. Speculative: no side effects.
//	@Tags			Rentals
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RentalQuoteRequestDTO	true	"Quote payload"
//	@Success		200		{object}	dto.RentalQuoteResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid fee or duration"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Book not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/rentals/quote [post]
func (h *RentalsHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req dto.RentalQuoteRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	breakdown, err := h.rentalService.Quote(r.Context(), req.BookID, req.DurationDays)
	if err != nil {
		switch {
		case errors.Is(err, pricingservice.ErrInvalidInput):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, rentalservice.ErrBookNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, toQuoteDTO(breakdown))
}

// Commit godoc
//
//	@Summary		Commit a rental
//	@Description	Create a rental with an optional credit redemption as one atomic operation. Requires a payment confirmation reference.
//	@Tags			Rentals
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RentalCommitRequestDTO	true	"Commit payload"
//	@Success		200		{object}	dto.RentalResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid input"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient credits or missing payment confirmation"
//	@Failure		404		{object}	utils.Response	"Book not found"
//	@Failure		409		{object}	utils.Response	"Redemption conflict or book unavailable"
//	@Failure		422		{object}	utils.Response	"Redemption would provide no benefit"
//	@Failure		500		{object}	utils.Response	"Commit failure"
//	@Router			/api/rentals [post]
func (h *RentalsHandler) Commit(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.RentalCommitRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var redemption *domain.RedemptionRequest
	if req.Redemption != nil {
		redemption = &domain.RedemptionRequest{
			UserID:           userID,
			OfferType:        domain.OfferType(req.Redemption.OfferType),
			RequestedCredits: req.Redemption.RequestedCredits,
		}
	}

	rental, err := h.rentalService.Commit(r.Context(), req.BookID, userID, req.DurationDays, redemption, req.PaymentRef)
	if err != nil {
		switch {
		case errors.Is(err, pricingservice.ErrInvalidInput), errors.Is(err, conversionservice.ErrInvalidRequest):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, rentalservice.ErrBookNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, rentalservice.ErrPaymentRequired), errors.Is(err, ledgerservice.ErrInsufficientCredits):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, rentalservice.ErrBookNotAvailable), errors.Is(err, rentalservice.ErrOwnRental), errors.Is(err, rentalservice.ErrRedemptionConflict):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, conversionservice.ErrNoValueRedeemable):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, toRentalDTO(rental))
}

// GetRentals godoc
//
//	@Summary		Get rental history
//	@Description	Get the authenticated user's rentals, newest first.
//	@Tags			Rentals
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.RentalResponseDTO	"Rentals"
//	@Success		204	{object}	utils.Response			"No rentals"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/rentals [get]
func (h *RentalsHandler) GetRentals(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	rentals, err := h.rentalService.GetRentals(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch rentals")
		return
	}

	if len(rentals) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No rentals")
		return
	}

	response := make([]dto.RentalResponseDTO, len(rentals))
	for i := range rentals {
		response[i] = *toRentalDTO(&rentals[i])
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toQuoteDTO(b *domain.RentalCostBreakdown) dto.RentalQuoteResponseDTO {
	return dto.RentalQuoteResponseDTO{
		RentalFee:       int64(b.RentalFee),
		PlatformFee:     int64(b.PlatformFee),
		SecurityDeposit: int64(b.SecurityDeposit),
		DiscountApplied: int64(b.DiscountApplied),
		TotalPayable:    int64(b.TotalPayable),
	}
}

func toRentalDTO(rental *domain.Rental) *dto.RentalResponseDTO {
	return &dto.RentalResponseDTO{
		Reference:          rental.Reference,
		BookID:             rental.BookID,
		DurationDays:       rental.DurationDays,
		RentalFee:          int64(rental.RentalFee),
		PlatformFee:        int64(rental.PlatformFee),
		SecurityDeposit:    int64(rental.SecurityDeposit),
		DiscountApplied:    int64(rental.DiscountApplied),
		TotalPayable:       int64(rental.TotalPayable),
		CommissionFreeDays: rental.CommissionFreeDays,
		Status:             string(rental.Status),
		CreatedAt:          rental.CreatedAt,
	}
}
