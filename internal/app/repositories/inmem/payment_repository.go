package inmem

import (
	"context"
	"time"

	"github.com/psanashik/academy/internal/app/models"
	"github.com/psanashik/academy/internal/app/repositories"
	"github.com/psanashik/academy/internal/pkg/apperrors"
)

type paymentRepository struct {
	s *Store
}

func (r *paymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.students[payment.StudentID]; !ok {
		return apperrors.ErrStudentNotFound
	}

	payment.ID = r.s.nextID()
	payment.CreatedAt = time.Now()
	clone := *payment
	r.s.payments[payment.ID] = &clone
	return nil
}

func (r *paymentRepository) GetByID(ctx context.Context, id int64) (*models.Payment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	payment, ok := r.s.payments[id]
	if !ok {
		return nil, apperrors.ErrPaymentNotFound
	}
	clone := *payment
	return &clone, nil
}

func (r *paymentRepository) List(ctx context.Context, filter repositories.PaymentFilter) ([]*models.Payment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var payments []*models.Payment
	for _, payment := range r.s.payments {
		if filter.StudentID > 0 && payment.StudentID != filter.StudentID {
			continue
		}
		if filter.MonthYear != "" && payment.MonthYear != filter.MonthYear {
			continue
		}
		if filter.Search != "" {
			student := r.s.students[payment.StudentID]
			if student == nil || !matchesSearch(filter.Search, student.Name, student.StudentID) {
				continue
			}
		}
		clone := *payment
		payments = append(payments, &clone)
	}
	sortByID(payments, func(p *models.Payment) int64 { return p.ID })
	return payments, nil
}

func (r *paymentRepository) Update(ctx context.Context, payment *models.Payment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.payments[payment.ID]
	if !ok {
		return apperrors.ErrPaymentNotFound
	}
	existing.Amount = payment.Amount
	existing.PaymentMethod = payment.PaymentMethod
	existing.Status = payment.Status
	existing.TransactionID = payment.TransactionID
	existing.ReceiptNumber = payment.ReceiptNumber
	existing.DueDate = payment.DueDate
	existing.PaidDate = payment.PaidDate
	existing.Notes = payment.Notes
	return nil
}
