package domain

import "time"

type User struct {
	ID                 int       `db:"id"`
	Login              string    `db:"login"`
	PasswordHash       string    `db:"password_hash"`
	CreditBalance      int64     `db:"credit_balance"`
	TotalCreditsEarned int64     `db:"total_credits_earned"`
	CreatedAt          time.Time `db:"created_at"`
}

type BookStatus string

const (
	BookPendingReview BookStatus = "PENDING_REVIEW"
	BookApproved      BookStatus = "APPROVED"
	BookRejected      BookStatus = "REJECTED"
)

type Book struct {
	ID        int        `db:"id"`
	OwnerID   int        `db:"owner_id"`
	Title     string     `db:"title"`
	DailyFee  Money      `db:"daily_fee"`
	Status    BookStatus `db:"status"`
	CreatedAt time.Time  `db:"created_at"`
}

// CreditReason classifies a ledger entry by the activity that caused it.
type CreditReason string

const (
	ReasonUpload               CreditReason = "upload"
	ReasonReferral             CreditReason = "referral"
	ReasonBorrow               CreditReason = "borrow"
	ReasonLend                 CreditReason = "lend"
	ReasonRedeemDiscount       CreditReason = "redeem_discount"
	ReasonRedeemCommissionFree CreditReason = "redeem_commission_free"
	ReasonAdminAdjustment      CreditReason = "admin_adjustment"
)

// CreditLedgerEntry is an immutable record of a single balance-affecting
// event. The ledger is append-only; corrections are new offsetting
// entries, never edits.
type CreditLedgerEntry struct {
	ID              int          `db:"id"`
	UserID          int          `db:"user_id"`
	Delta           int64        `db:"delta"`
	Reason          CreditReason `db:"reason"`
	RelatedEntityID string       `db:"related_entity_id"`
	CreatedAt       time.Time    `db:"created_at"`
}

// PlatformSettings is a read-only snapshot of the platform's pricing
// and reward configuration. Callers take one snapshot per transaction
// and reuse it through commit.
type PlatformSettings struct {
	CommissionRatePercent       int
	SecurityDeposit             Money
	CreditsPerRupeeDiscount     int64
	CreditsPerCommissionFreeDay int64
	UploadRewardCredits         int64
	ReferralRewardCredits       int64
	BorrowRewardCredits         int64
	LendRewardCredits           int64
	MaxRentalDays               int
}

// RentalCostBreakdown is derived, never persisted on its own.
// Invariant: TotalPayable = RentalFee + PlatformFee + SecurityDeposit - DiscountApplied.
type RentalCostBreakdown struct {
	RentalFee       Money `json:"rental_fee"`
	PlatformFee     Money `json:"platform_fee"`
	SecurityDeposit Money `json:"security_deposit"`
	DiscountApplied Money `json:"discount_applied"`
	TotalPayable    Money `json:"total_payable"`
}

type OfferType string

const (
	OfferRupees         OfferType = "rupees"
	OfferCommissionFree OfferType = "commission_free"
)

// RedemptionRequest is ephemeral caller input: validated, converted
// into one ledger spend plus a discount or day grant, then discarded.
type RedemptionRequest struct {
	UserID           int
	OfferType        OfferType
	RequestedCredits int64
}

type RentalStatus string

const (
	RentalCommitted RentalStatus = "COMMITTED"
	RentalReturned  RentalStatus = "RETURNED"
	RentalCanceled  RentalStatus = "CANCELED"
)

type Rental struct {
	ID                 int          `db:"id"`
	Reference          string       `db:"reference"`
	BookID             int          `db:"book_id"`
	BorrowerID         int          `db:"borrower_id"`
	LenderID           int          `db:"lender_id"`
	DurationDays       int          `db:"duration_days"`
	RentalFee          Money        `db:"rental_fee"`
	PlatformFee        Money        `db:"platform_fee"`
	SecurityDeposit    Money        `db:"security_deposit"`
	DiscountApplied    Money        `db:"discount_applied"`
	TotalPayable       Money        `db:"total_payable"`
	CommissionFreeDays int          `db:"commission_free_days"`
	PaymentRef         string       `db:"payment_ref"`
	Status             RentalStatus `db:"status"`
	CreatedAt          time.Time    `db:"created_at"`
}
