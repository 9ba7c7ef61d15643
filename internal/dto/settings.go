package dto

type PlatformSettingsDTO struct {
	CommissionRatePercent       int   `json:"commission_rate_percent" example:"5"`
	SecurityDeposit             int64 `json:"security_deposit" example:"10000"`
	CreditsPerRupeeDiscount     int64 `json:"credits_per_rupee_discount" example:"20"`
	CreditsPerCommissionFreeDay int64 `json:"credits_per_commission_free_day" example:"20"`
	UploadRewardCredits         int64 `json:"upload_reward_credits" example:"25"`
	ReferralRewardCredits       int64 `json:"referral_reward_credits" example:"50"`
	BorrowRewardCredits         int64 `json:"borrow_reward_credits" example:"10"`
	LendRewardCredits           int64 `json:"lend_reward_credits" example:"15"`
	MaxRentalDays               int   `json:"max_rental_days" example:"90"`
}
