package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/psanashik/academy/internal/app/models"
	"github.com/psanashik/academy/internal/pkg/apperrors"
	"github.com/psanashik/academy/internal/pkg/dberrors"
)

type paymentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *pgxpool.Pool) PaymentRepository {
	return &paymentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const paymentColumns = `id, student_id, amount, payment_type, payment_method, status, transaction_id, receipt_number, due_date, payment_date, month_year, notes, created_at`

func scanPayment(row pgx.Row) (*models.Payment, error) {
	var payment models.Payment
	err := row.Scan(
		&payment.ID,
		&payment.StudentID,
		&payment.Amount,
		&payment.PaymentType,
		&payment.PaymentMethod,
		&payment.Status,
		&payment.TransactionID,
		&payment.ReceiptNumber,
		&payment.DueDate,
		&payment.PaidDate,
		&payment.MonthYear,
		&payment.Notes,
		&payment.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// Create stores a new payment record
func (r *paymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	query := `
		INSERT INTO payments (student_id, amount, payment_type, payment_method, status,
			transaction_id, receipt_number, due_date, payment_date, month_year, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		payment.StudentID, payment.Amount, payment.PaymentType, payment.PaymentMethod,
		payment.Status, payment.TransactionID, payment.ReceiptNumber,
		payment.DueDate, payment.PaidDate, payment.MonthYear, payment.Notes,
	).Scan(&payment.ID, &payment.CreatedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrStudentNotFound
		}
		return fmt.Errorf("error creating payment: %w", err)
	}
	return nil
}

// GetByID retrieves a payment by ID
func (r *paymentRepository) GetByID(ctx context.Context, id int64) (*models.Payment, error) {
	query := fmt.Sprintf(`SELECT %s FROM payments WHERE id = $1`, paymentColumns)

	payment, err := scanPayment(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("error retrieving payment: %w", err)
	}
	return payment, nil
}

// List retrieves payments matching the filter. Search matches on the
// owning student's name or external ID.
func (r *paymentRepository) List(ctx context.Context, filter PaymentFilter) ([]*models.Payment, error) {
	builder := r.sb.Select("p." + paymentColumnsAliased).From("payments p").OrderBy("p.id")

	if filter.StudentID > 0 {
		builder = builder.Where(squirrel.Eq{"p.student_id": filter.StudentID})
	}
	if filter.MonthYear != "" {
		builder = builder.Where(squirrel.Eq{"p.month_year": filter.MonthYear})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		builder = builder.
			Join("students s ON s.id = p.student_id").
			Where(squirrel.Or{
				squirrel.ILike{"s.name": pattern},
				squirrel.ILike{"s.student_id": pattern},
			})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build payment list query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing payments: %w", err)
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, payment)
	}
	return payments, rows.Err()
}

const paymentColumnsAliased = `id, p.student_id, p.amount, p.payment_type, p.payment_method, p.status, p.transaction_id, p.receipt_number, p.due_date, p.payment_date, p.month_year, p.notes, p.created_at`

// Update replaces a payment's mutable fields
func (r *paymentRepository) Update(ctx context.Context, payment *models.Payment) error {
	query := `
		UPDATE payments
		SET amount = $1, payment_method = $2, status = $3, transaction_id = $4,
			receipt_number = $5, due_date = $6, payment_date = $7, notes = $8
		WHERE id = $9
	`

	cmdTag, err := r.db.Exec(ctx, query,
		payment.Amount, payment.PaymentMethod, payment.Status, payment.TransactionID,
		payment.ReceiptNumber, payment.DueDate, payment.PaidDate, payment.Notes, payment.ID)
	if err != nil {
		return fmt.Errorf("error updating payment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPaymentNotFound
	}
	return nil
}
