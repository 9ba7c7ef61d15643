package dto

import "time"

type RentalQuoteRequestDTO struct {
	BookID       int `json:"book_id" example:"12"`
	DurationDays int `json:"duration_days" example:"7"`
}

type RentalQuoteResponseDTO struct {
	RentalFee       int64 `json:"rental_fee" example:"35000"`
	PlatformFee     int64 `json:"platform_fee" example:"1750"`
	SecurityDeposit int64 `json:"security_deposit" example:"10000"`
	DiscountApplied int64 `json:"discount_applied" example:"0"`
	TotalPayable    int64 `json:"total_payable" example:"46750"`
}

type RedemptionRequestDTO struct {
	OfferType        string `json:"offer_type" example:"rupees"`
	RequestedCredits int64  `json:"requested_credits" example:"45"`
}

type RentalCommitRequestDTO struct {
	BookID       int                   `json:"book_id" example:"12"`
	DurationDays int                   `json:"duration_days" example:"7"`
	PaymentRef   string                `json:"payment_ref" example:"pay_9f81c2"`
	Redemption   *RedemptionRequestDTO `json:"redemption,omitempty"`
}

type RentalResponseDTO struct {
	Reference          string    `json:"reference" example:"0190c1a4-7a2e-7c3b-b0fd-3f2d94a51a11"`
	BookID             int       `json:"book_id" example:"12"`
	DurationDays       int       `json:"duration_days" example:"7"`
	RentalFee          int64     `json:"rental_fee" example:"35000"`
	PlatformFee        int64     `json:"platform_fee" example:"1750"`
	SecurityDeposit    int64     `json:"security_deposit" example:"10000"`
	DiscountApplied    int64     `json:"discount_applied" example:"200"`
	TotalPayable       int64     `json:"total_payable" example:"46550"`
	CommissionFreeDays int       `json:"commission_free_days,omitempty" example:"0"`
	Status             string    `json:"status" example:"COMMITTED"`
	CreatedAt          time.Time `json:"created_at" example:"2024-11-02T16:09:57+05:30"`
}
