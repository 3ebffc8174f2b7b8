package models

import "time"

// Payment defines the payment model based on the 'payments' table.
// Status is always derived from (PaidDate, DueDate, now); the stored column
// exists for reporting but is never trusted as a source of truth.
type Payment struct {
	ID            int64      `json:"id" db:"id"`
	StudentID     int64      `json:"studentId" db:"student_id"`
	Amount        float64    `json:"amount" db:"amount"`
	PaymentType   string     `json:"paymentType" db:"payment_type"`     // monthly, registration, tournament
	PaymentMethod string     `json:"paymentMethod" db:"payment_method"` // cash, upi, card, online
	Status        FeeStatus  `json:"status" db:"status"`
	TransactionID *string    `json:"transactionId,omitempty" db:"transaction_id"`
	ReceiptNumber *string    `json:"receiptNumber,omitempty" db:"receipt_number"`
	DueDate       *time.Time `json:"dueDate,omitempty" db:"due_date"`
	PaidDate      *time.Time `json:"paidDate,omitempty" db:"payment_date"`
	MonthYear     string     `json:"monthYear" db:"month_year" example:"2025-01"`
	Notes         *string    `json:"notes,omitempty" db:"notes"`
	CreatedAt     time.Time  `json:"createdAt" db:"created_at"`

	// Relations (populated when needed)
	Student *Student `json:"student,omitempty"`
}
