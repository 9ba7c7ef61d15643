package dto

import "time"

type BalanceResponseDTO struct {
	Balance     int64  `json:"balance" example:"120"`
	TotalEarned int64  `json:"total_earned" example:"340"`
	RankTier    string `json:"rank_tier" example:"Bookworm"`
}

type LedgerEntryResponseDTO struct {
	Delta           int64     `json:"delta" example:"-40"`
	Reason          string    `json:"reason" example:"redeem_discount"`
	RelatedEntityID string    `json:"related_entity_id,omitempty" example:"c7f2b9"`
	CreatedAt       time.Time `json:"created_at" example:"2024-11-02T16:09:57+05:30"`
}

type RedemptionPreviewRequestDTO struct {
	OfferType        string `json:"offer_type" example:"rupees"`
	RequestedCredits int64  `json:"requested_credits" example:"45"`
	AmountOwed       int64  `json:"amount_owed" example:"36750"`
}

type RedemptionPreviewResponseDTO struct {
	OfferType       string `json:"offer_type" example:"rupees"`
	DiscountAmount  int64  `json:"discount_amount,omitempty" example:"200"`
	DaysGranted     int    `json:"days_granted,omitempty" example:"2"`
	CreditsConsumed int64  `json:"credits_consumed" example:"40"`
}

type ReferralClaimRequestDTO struct {
	Code string `json:"code" example:"2377225624"`
}

type LeaderboardRowDTO struct {
	Rank        int    `json:"rank" example:"1"`
	UserID      int    `json:"user_id" example:"7"`
	Login       string `json:"login" example:"reader42"`
	Balance     int64  `json:"balance" example:"320"`
	TotalEarned int64  `json:"total_earned" example:"980"`
	Tier        string `json:"tier" example:"Bibliophile"`
}
