package settings

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bookcycle/bookcycle/internal/domain"
	"github.com/bookcycle/bookcycle/internal/dto"
	"github.com/bookcycle/bookcycle/internal/service/settingsservice"
	"github.com/bookcycle/bookcycle/pkg/utils"
)

type Service interface {
	Snapshot() domain.PlatformSettings
	Update(settings domain.PlatformSettings) error
}

type SettingsHandler struct {
	settingsService Service
}

func New(settingsService Service) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
	}
}

// Get godoc
//
//	@Summary		Get platform settings
//	@Description	Current pricing and reward configuration snapshot.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.PlatformSettingsDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Router			/api/admin/settings [get]
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	s := h.settingsService.Snapshot()
	utils.RespondWithJSON(w, http.StatusOK, toDTO(s))
}

// Update godoc
//
//	@Summary		Update platform settings
//	@Description	Replace the platform settings snapshot atomically. In-flight transactions keep the snapshot they quoted with.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PlatformSettingsDTO	true	"Settings payload"
//	@Success		200		{object}	dto.PlatformSettingsDTO
//	@Failure		400		{object}	utils.Response	"Invalid settings"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Router			/api/admin/settings [put]
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.PlatformSettingsDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.settingsService.Update(domain.PlatformSettings{
		CommissionRatePercent:       req.CommissionRatePercent,
		SecurityDeposit:             domain.Money(req.SecurityDeposit),
		CreditsPerRupeeDiscount:     req.CreditsPerRupeeDiscount,
		CreditsPerCommissionFreeDay: req.CreditsPerCommissionFreeDay,
		UploadRewardCredits:         req.UploadRewardCredits,
		ReferralRewardCredits:       req.ReferralRewardCredits,
		BorrowRewardCredits:         req.BorrowRewardCredits,
		LendRewardCredits:           req.LendRewardCredits,
		MaxRentalDays:               req.MaxRentalDays,
	})
	if err != nil {
		switch {
		case errors.Is(err, settingsservice.ErrInvalidSettings):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, toDTO(h.settingsService.Snapshot()))
}

func toDTO(s domain.PlatformSettings) dto.PlatformSettingsDTO {
	return dto.PlatformSettingsDTO{
		CommissionRatePercent:       s.CommissionRatePercent,
		SecurityDeposit:             int64(s.SecurityDeposit),
		CreditsPerRupeeDiscount:     s.CreditsPerRupeeDiscount,
		CreditsPerCommissionFreeDay: s.CreditsPerCommissionFreeDay,
		UploadRewardCredits:         s.UploadRewardCredits,
		ReferralRewardCredits:       s.ReferralRewardCredits,
		BorrowRewardCredits:         s.BorrowRewardCredits,
		LendRewardCredits:           s.LendRewardCredits,
		MaxRentalDays:               s.MaxRentalDays,
	}
}
