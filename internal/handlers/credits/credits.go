package credits

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/bookcycle/bookcycle/internal/domain"
	"github.com/bookcycle/bookcycle/internal/dto"
	"github.com/bookcycle/bookcycle/internal/service/conversionservice"
	"github.com/bookcycle/bookcycle/internal/service/creditservice"
	"github.com/bookcycle/bookcycle/internal/service/rankservice"
	"github.com/bookcycle/bookcycle/pkg/auth"
	"github.com/bookcycle/bookcycle/pkg/utils"
)

type Service interface {
	GetTotals(ctx context.Context, userID int) (balance int64, totalEarned int64, err error)
	GetHistory(ctx context.Context, userID int) ([]domain.CreditLedgerEntry, error)
	ClaimReferral(ctx context.Context, userID int, code string) (*domain.CreditLedgerEntry, error)
	PreviewRedemption(ctx context.Context, userID int, offerType domain.OfferType, requestedCredits int64, amountOwed domain.Money) (*creditservice.RedemptionPreview, error)
}

type RankService interface {
	Leaderboard(ctx context.Context, limit int) ([]rankservice.LeaderboardRow, error)
}

type CreditsHandler struct {
	creditService Service
	rankService   RankService
}

func New(creditService Service, rankService RankService) *CreditsHandler {
	return &CreditsHandler{
		creditService: creditService,
		rankService:   rankService,
	}
}

// GetBalance godoc
//
//	@Summary		Get current credit balance
//	@Description	Retrieve the authenticated user's credit balance, lifetime earnings and derived rank tier.
//	@Tags			Credits
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO	"Current balance"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/credits/balance [get]
func (h *CreditsHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	balance, totalEarned, err := h.creditService.GetTotals(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Balance:     balance,
		TotalEarned: totalEarned,
		RankTier:    rankservice.DeriveRankTier(totalEarned),
	})
}

// GetHistory godoc
//
//	@Summary		Get credit ledger history
//	@Description	Get the authenticated user's ledger entries, newest first.
//	@Tags			Credits
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.LedgerEntryResponseDTO	"Ledger history"
//	@Success		204	{object}	utils.Response				"No entries"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/user/credits/history [get]
func (h *CreditsHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	entries, err := h.creditService.GetHistory(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch ledger history")
		return
	}

	if len(entries) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No ledger entries")
		return
	}

	response := make([]dto.LedgerEntryResponseDTO, len(entries))
	for i, e := range entries {
		response[i] = dto.LedgerEntryResponseDTO{
			Delta:           e.Delta,
			Reason:          string(e.Reason),
			RelatedEntityID: e.RelatedEntityID,
			CreatedAt:       e.CreatedAt,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}

// PreviewRedemption godoc
//
//	@Summary		Preview a credit redemption
//	@Description	Quote the discount or commission-free days a redemption would deliver. Read-only: no credits are reserved or spent.
//	@Tags			Credits
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RedemptionPreviewRequestDTO	true	"Redemption preview payload"
//	@Success		200		{object}	dto.RedemptionPreviewResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		422		{object}	utils.Response	"Redemption would provide no benefit"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/credits/preview [post]
func (h *CreditsHandler) PreviewRedemption(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.RedemptionPreviewRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	preview, err := h.creditService.PreviewRedemption(r.Context(), userID, domain.OfferType(req.OfferType), req.RequestedCredits, domain.Money(req.AmountOwed))
	if err != nil {
		switch {
		case errors.Is(err, conversionservice.ErrInvalidRequest):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, conversionservice.ErrNoValueRedeemable):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.RedemptionPreviewResponseDTO{
		OfferType:       string(preview.OfferType),
		DiscountAmount:  int64(preview.DiscountAmount),
		DaysGranted:     preview.DaysGranted,
		CreditsConsumed: preview.CreditsConsumed,
	})
}

// ClaimReferral godoc
//
//	@Summary		Claim a referral reward
//	@Description	Credit the referral reward for a valid referral code.
//	@Tags			Credits
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ReferralClaimRequestDTO	true	"Referral claim payload"
//	@Success		200		{string}	string						"Referral reward granted"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		409		{object}	utils.Response				"Referral code already claimed"
//	@Failure		422		{object}	utils.Response				"Invalid referral code"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/user/referral [post]
func (h *CreditsHandler) ClaimReferral(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.ReferralClaimRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	_, err := h.creditService.ClaimReferral(r.Context(), userID, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, creditservice.ErrInvalidReferralCode):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, creditservice.ErrReferralAlreadyClaimed):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "referral reward granted")
}

// GetLeaderboard godoc
//
//	@Summary		Get the credits leaderboard
//	@Description	Users ordered by credit balance descending; ties broken by lifetime earnings, then user id. Deterministic for identical data.
//	@Tags			Credits
//	@Produce		json
//	@Param			limit	query		int	false	"Maximum number of rows"
//	@Success		200		{array}		dto.LeaderboardRowDTO	"Leaderboard"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/leaderboard [get]
func (h *CreditsHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	rows, err := h.rankService.Leaderboard(r.Context(), limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to build leaderboard")
		return
	}

	response := make([]dto.LeaderboardRowDTO, len(rows))
	for i, row := range rows {
		response[i] = dto.LeaderboardRowDTO{
			Rank:        row.Rank,
			UserID:      row.UserID,
			Login:       row.Login,
			Balance:     row.Balance,
			TotalEarned: row.TotalEarned,
			Tier:        row.Tier,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}
