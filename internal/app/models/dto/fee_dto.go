package dto

import (
	"time"

	"github.com/psanashik/academy/internal/app/aggregate"
	"github.com/psanashik/academy/internal/app/models"
)

// CreatePaymentRequest is the payload for POST /api/fees
type CreatePaymentRequest struct {
	StudentID     int64      `json:"studentId" binding:"required,gt=0"`
	Amount        float64    `json:"amount" binding:"required,gt=0"`
	PaymentType   string     `json:"paymentType" binding:"required,oneof=monthly registration tournament"`
	PaymentMethod string     `json:"paymentMethod" binding:"required,oneof=cash upi card online"`
	DueDate       *time.Time `json:"dueDate,omitempty"`
	MonthYear     string     `json:"monthYear" binding:"required" example:"2025-01"`
	Notes         *string    `json:"notes,omitempty"`
}

// RecordFeePaymentRequest marks a payment as collected.
type RecordFeePaymentRequest struct {
	PaymentMethod string     `json:"paymentMethod" binding:"required,oneof=cash upi card online"`
	PaidDate      *time.Time `json:"paidDate,omitempty"` // defaults to now
	TransactionID *string    `json:"transactionId,omitempty"`
}

// FeeListResponse is the payload for GET /api/fees: the filtered records
// plus the summary computed over the same filtered set.
type FeeListResponse struct {
	Fees       []*models.Payment    `json:"fees"`
	Summary    aggregate.FeeSummary `json:"summary"`
	Pagination PaginationInfo       `json:"pagination"`
}

// FeeQuote is the payload for GET /api/fees/quote/:studentId
type FeeQuote struct {
	StudentID int64   `json:"studentId"`
	Amount    float64 `json:"amount"`
}
