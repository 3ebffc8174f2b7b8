package services

import (
	"context"
	"fmt"
	"time"

	"github.com/psanashik/academy/internal/app/aggregate"
	"github.com/psanashik/academy/internal/app/models"
	"github.com/psanashik/academy/internal/app/models/dto"
	"github.com/psanashik/academy/internal/app/repositories"
	"github.com/psanashik/academy/internal/pkg/apperrors"
)

// FeeService handles payment records and fee aggregation. A payment's
// status is derived from its dates on every read; the stored column is
// refreshed opportunistically but never trusted.
type FeeService interface {
	CreatePayment(ctx context.Context, req *dto.CreatePaymentRequest) (*models.Payment, error)
	GetPayment(ctx context.Context, id int64) (*models.Payment, error)
	ListFees(ctx context.Context, filter repositories.PaymentFilter, status models.FeeStatus) ([]*models.Payment, aggregate.FeeSummary, error)
	RecordPayment(ctx context.Context, id int64, req *dto.RecordFeePaymentRequest) (*models.Payment, error)
	QuoteMonthlyFee(ctx context.Context, studentID int64) (float64, error)
}

type feeService struct {
	paymentRepo repositories.PaymentRepository
	studentRepo repositories.StudentRepository
	sportRepo   repositories.SportRepository
}

// NewFeeService creates a new fee service
func NewFeeService(paymentRepo repositories.PaymentRepository, studentRepo repositories.StudentRepository, sportRepo repositories.SportRepository) FeeService {
	return &feeService{
		paymentRepo: paymentRepo,
		studentRepo: studentRepo,
		sportRepo:   sportRepo,
	}
}

// CreatePayment records a fee obligation for a student
func (s *feeService) CreatePayment(ctx context.Context, req *dto.CreatePaymentRequest) (*models.Payment, error) {
	if _, err := s.studentRepo.GetByID(ctx, req.StudentID); err != nil {
		return nil, err
	}

	payment := &models.Payment{
		StudentID:     req.StudentID,
		Amount:        req.Amount,
		PaymentType:   req.PaymentType,
		PaymentMethod: req.PaymentMethod,
		DueDate:       req.DueDate,
		MonthYear:     req.MonthYear,
		Notes:         req.Notes,
	}
	payment.Status = aggregate.DeriveFeeStatus(payment.PaidDate, payment.DueDate, time.Now())

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// GetPayment retrieves a payment with its derived status
func (s *feeService) GetPayment(ctx context.Context, id int64) (*models.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	payment.Status = aggregate.DeriveFeeStatus(payment.PaidDate, payment.DueDate, time.Now())
	return payment, nil
}

// ListFees retrieves payments with derived statuses, the optional status
// filter applied after derivation, and the summary computed over the
// filtered set.
func (s *feeService) ListFees(ctx context.Context, filter repositories.PaymentFilter, status models.FeeStatus) ([]*models.Payment, aggregate.FeeSummary, error) {
	payments, err := s.paymentRepo.List(ctx, filter)
	if err != nil {
		return nil, aggregate.FeeSummary{}, err
	}

	now := time.Now()
	filtered := payments[:0]
	for _, payment := range payments {
		payment.Status = aggregate.DeriveFeeStatus(payment.PaidDate, payment.DueDate, now)
		if status != "" && payment.Status != status {
			continue
		}
		filtered = append(filtered, payment)
	}

	return filtered, aggregate.SummarizeFees(filtered, now), nil
}

// RecordPayment marks a payment as collected, stamping the paid date and
// assigning a receipt number. Recording an already paid payment fails.
func (s *feeService) RecordPayment(ctx context.Context, id int64, req *dto.RecordFeePaymentRequest) (*models.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment.PaidDate != nil {
		return nil, apperrors.NewConflictError("payment is already recorded as paid")
	}

	paidDate := time.Now()
	if req.PaidDate != nil {
		paidDate = *req.PaidDate
	}

	receipt := fmt.Sprintf("RCP-%s-%06d", paidDate.Format("200601"), payment.ID)

	payment.PaymentMethod = req.PaymentMethod
	payment.PaidDate = &paidDate
	payment.TransactionID = req.TransactionID
	payment.ReceiptNumber = &receipt
	payment.Status = models.FeePaid

	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// QuoteMonthlyFee returns the monthly fee for a student, looked up from
// the sport's fee structure by the student's skill level.
func (s *feeService) QuoteMonthlyFee(ctx context.Context, studentID int64) (float64, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return 0, err
	}
	sport, err := s.sportRepo.GetByID(ctx, student.SportID)
	if err != nil {
		return 0, err
	}
	return sport.FeeStructure.AmountFor(student.SkillLevel), nil
}
