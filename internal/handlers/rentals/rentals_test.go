package rentals

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bookcycle/bookcycle/internal/domain"
	"github.com/bookcycle/bookcycle/internal/dto"
	"github.com/bookcycle/bookcycle/internal/service/conversionservice"
	"github.com/bookcycle/bookcycle/internal/service/ledgerservice"
	"github.com/bookcycle/bookcycle/internal/service/pricingservice"
	"github.com/bookcycle/bookcycle/internal/service/rentalservice"
	"github.com/bookcycle/bookcycle/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*RentalsHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authedCtx() context.Context {
	return context.WithValue(context.Background(), auth.UserIDKey, 1)
}

func TestQuoteHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful quote",
			body: `{"book_id":12,"duration_days":7}`,
			prepareMock: func() {
				service.EXPECT().Quote(authedCtx(), 12, 7).Return(&domain.RentalCostBreakdown{
					RentalFee:       35000,
					PlatformFee:     1750,
					SecurityDeposit: 10000,
					TotalPayable:    46750,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid request body",
			body:          `{"book_id":}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name: "Invalid duration",
			body: `{"book_id":12,"duration_days":0}`,
			prepareMock: func() {
				service.EXPECT().Quote(authedCtx(), 12, 0).Return(nil, pricingservice.ErrInvalidInput)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Book not found",
			body: `{"book_id":99,"duration_days":7}`,
			prepareMock: func() {
				service.EXPECT().Quote(authedCtx(), 99, 7).Return(nil, rentalservice.ErrBookNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Internal server error",
			body: `{"book_id":12,"duration_days":7}`,
			prepareMock: func() {
				service.EXPECT().Quote(authedCtx(), 12, 7).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/rentals/quote", bytes.NewBufferString(tt.body))
			r = r.WithContext(authedCtx())
			w := httptest.NewRecorder()
			handler.Quote(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.RentalQuoteResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, int64(46750), body.TotalPayable)
			}
		})
	}
}

func TestCommitHandler(t *testing.T) {
	handler, service := NewMock(t)
	now := time.Now()

	committed := &domain.Rental{
		Reference:       "7f9c2ba4-e88f-4bdc-a9a0-9b0c6f3b0f01",
		BookID:          12,
		BorrowerID:      1,
		LenderID:        2,
		DurationDays:    7,
		RentalFee:       35000,
		PlatformFee:     1750,
		SecurityDeposit: 10000,
		DiscountApplied: 200,
		TotalPayable:    46550,
		PaymentRef:      "pay-001",
		Status:          domain.RentalCommitted,
		CreatedAt:       now,
	}

	redemption := &domain.RedemptionRequest{
		UserID:           1,
		OfferType:        domain.OfferRupees,
		RequestedCredits: 45,
	}

	commitBody := `{"book_id":12,"duration_days":7,"payment_ref":"pay-001","redemption":{"offer_type":"rupees","requested_credits":45}}`

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful commit with redemption",
			body: commitBody,
			prepareMock: func() {
				service.EXPECT().Commit(authedCtx(), 12, 1, 7, redemption, "pay-001").Return(committed, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid request body",
			body:          `{"book_id":}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name: "Missing payment confirmation",
			body: `{"book_id":12,"duration_days":7}`,
			prepareMock: func() {
				service.EXPECT().Commit(authedCtx(), 12, 1, 7, nil, "").Return(nil, rentalservice.ErrPaymentRequired)
			},
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name: "Insufficient credits",
			body: commitBody,
			prepareMock: func() {
				service.EXPECT().Commit(authedCtx(), 12, 1, 7, redemption, "pay-001").Return(nil, ledgerservice.ErrInsufficientCredits)
			},
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name: "Book not found",
			body: commitBody,
			prepareMock: func() {
				service.EXPECT().Commit(authedCtx(), 12, 1, 7, redemption, "pay-001").Return(nil, rentalservice.ErrBookNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Book not available",
			body: commitBody,
			prepareMock: func() {
				service.EXPECT().Commit(authedCtx(), 12, 1, 7, redemption, "pay-001").Return(nil, rentalservice.ErrBookNotAvailable)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Own book",
			body: commitBody,
			prepareMock: func() {
				service.EXPECT().Commit(authedCtx(), 12, 1, 7, redemption, "pay-001").Return(nil, rentalservice.ErrOwnRental)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Redemption conflict",
			body: commitBody,
			prepareMock: func() {
				service.EXPECT().Commit(authedCtx(), 12, 1, 7, redemption, "pay-001").Return(nil, rentalservice.ErrRedemptionConflict)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "No value redeemable",
			body: commitBody,
			prepareMock: func() {
				service.EXPECT().Commit(authedCtx(), 12, 1, 7, redemption, "pay-001").Return(nil, conversionservice.ErrNoValueRedeemable)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Invalid redemption request",
			body: commitBody,
			prepareMock: func() {
				service.EXPECT().Commit(authedCtx(), 12, 1, 7, redemption, "pay-001").Return(nil, conversionservice.ErrInvalidRequest)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Commit failure",
			body: commitBody,
			prepareMock: func() {
				service.EXPECT().Commit(authedCtx(), 12, 1, 7, redemption, "pay-001").Return(nil, rentalservice.ErrCommitFailure)
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/rentals", bytes.NewBufferString(tt.body))
			r = r.WithContext(authedCtx())
			w := httptest.NewRecorder()
			handler.Commit(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.RentalResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, int64(46550), body.TotalPayable)
				assert.Equal(t, int64(200), body.DiscountApplied)
				assert.Equal(t, committed.Reference, body.Reference)
			}
		})
	}
}

func TestGetRentalsHandler(t *testing.T) {
	handler, service := NewMock(t)
	now := time.Now()

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful retrieval",
			prepareMock: func() {
				service.EXPECT().GetRentals(authedCtx(), 1).Return([]domain.Rental{
					{Reference: "7f9c2ba4-e88f-4bdc-a9a0-9b0c6f3b0f01", BookID: 12, DurationDays: 7, TotalPayable: 46750, Status: domain.RentalCommitted, CreatedAt: now},
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "No rentals",
			prepareMock: func() {
				service.EXPECT().GetRentals(authedCtx(), 1).Return([]domain.Rental{}, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().GetRentals(authedCtx(), 1).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/rentals", nil)
			r = r.WithContext(authedCtx())
			w := httptest.NewRecorder()
			handler.GetRentals(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.RentalResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Len(t, body, 1)
				assert.Equal(t, int64(46750), body[0].TotalPayable)
			}
		})
	}
}
