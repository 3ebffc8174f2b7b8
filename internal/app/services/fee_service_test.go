package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psanashik/academy/internal/app/models"
	"github.com/psanashik/academy/internal/app/models/dto"
	"github.com/psanashik/academy/internal/app/repositories"
)

func TestListFeesDerivesStatusAndSummary(t *testing.T) {
	env := newTestEnv(t)
	sport := env.seedSport(t, "Cricket")
	coach := env.seedCoach(t, "Rajesh Kumar")
	batch := env.seedBatch(t, sport.ID, coach.ID, 10)
	student := env.seedStudent(t, "STU001", sport.ID, batch.ID)

	// One paid, one overdue, one pending.
	paid, err := env.FeeService.CreatePayment(env.ctx, &dto.CreatePaymentRequest{
		StudentID: student.ID, Amount: 2000, PaymentType: "monthly",
		PaymentMethod: "cash", MonthYear: "2025-01",
	})
	require.NoError(t, err)
	_, err = env.FeeService.RecordPayment(env.ctx, paid.ID, &dto.RecordFeePaymentRequest{PaymentMethod: "upi"})
	require.NoError(t, err)

	_, err = env.FeeService.CreatePayment(env.ctx, &dto.CreatePaymentRequest{
		StudentID: student.ID, Amount: 2000, PaymentType: "monthly",
		PaymentMethod: "cash", MonthYear: "2024-12",
		DueDate: timePtr(time.Now().AddDate(0, -1, 0)),
	})
	require.NoError(t, err)

	_, err = env.FeeService.CreatePayment(env.ctx, &dto.CreatePaymentRequest{
		StudentID: student.ID, Amount: 2000, PaymentType: "monthly",
		PaymentMethod: "cash", MonthYear: "2025-03",
		DueDate: timePtr(time.Now().AddDate(0, 1, 0)),
	})
	require.NoError(t, err)

	fees, summary, err := env.FeeService.ListFees(env.ctx, repositories.PaymentFilter{}, "")
	require.NoError(t, err)
	require.Len(t, fees, 3)

	assert.Equal(t, 1, summary.PaidCount)
	assert.Equal(t, 1, summary.OverdueCount)
	assert.Equal(t, 1, summary.PendingCount)
	assert.Equal(t, 2000.0, summary.TotalPaid)
	assert.Equal(t, 2000.0, summary.TotalOverdue)
	assert.Equal(t, 2000.0, summary.TotalPending)
	assert.Equal(t, 6000.0, summary.TotalAmount)
}

func TestListFeesStatusFilter(t *testing.T) {
	env := newTestEnv(t)
	sport := env.seedSport(t, "Cricket")
	coach := env.seedCoach(t, "Rajesh Kumar")
	batch := env.seedBatch(t, sport.ID, coach.ID, 10)
	student := env.seedStudent(t, "STU001", sport.ID, batch.ID)

	_, err := env.FeeService.CreatePayment(env.ctx, &dto.CreatePaymentRequest{
		StudentID: student.ID, Amount: 2000, PaymentType: "monthly",
		PaymentMethod: "cash", MonthYear: "2024-12",
		DueDate: timePtr(time.Now().AddDate(0, -1, 0)),
	})
	require.NoError(t, err)
	_, err = env.FeeService.CreatePayment(env.ctx, &dto.CreatePaymentRequest{
		StudentID: student.ID, Amount: 2500, PaymentType: "monthly",
		PaymentMethod: "cash", MonthYear: "2025-03",
		DueDate: timePtr(time.Now().AddDate(0, 1, 0)),
	})
	require.NoError(t, err)

	overdue, summary, err := env.FeeService.ListFees(env.ctx, repositories.PaymentFilter{}, models.FeeOverdue)
	require.NoError(t, err)
	require.Len(t, overdue, 1)
	assert.Equal(t, models.FeeOverdue, overdue[0].Status)
	// The summary covers the filtered set only.
	assert.Equal(t, 1, summary.OverdueCount)
	assert.Equal(t, 0, summary.PendingCount)
	assert.Equal(t, 2000.0, summary.TotalAmount)
}

func TestRecordPayment(t *testing.T) {
	env := newTestEnv(t)
	sport := env.seedSport(t, "Cricket")
	coach := env.seedCoach(t, "Rajesh Kumar")
	batch := env.seedBatch(t, sport.ID, coach.ID, 10)
	student := env.seedStudent(t, "STU001", sport.ID, batch.ID)

	payment, err := env.FeeService.CreatePayment(env.ctx, &dto.CreatePaymentRequest{
		StudentID: student.ID, Amount: 2000, PaymentType: "monthly",
		PaymentMethod: "cash", MonthYear: "2025-01",
		DueDate: timePtr(time.Now().AddDate(0, -1, 0)),
	})
	require.NoError(t, err)
	assert.Equal(t, models.FeeOverdue, payment.Status)

	recorded, err := env.FeeService.RecordPayment(env.ctx, payment.ID, &dto.RecordFeePaymentRequest{
		PaymentMethod: "upi",
	})
	require.NoError(t, err)
	assert.Equal(t, models.FeePaid, recorded.Status)
	require.NotNil(t, recorded.PaidDate)
	require.NotNil(t, recorded.ReceiptNumber)
	assert.Regexp(t, `^RCP-\d{6}-\d{6}$`, *recorded.ReceiptNumber)

	// A payment cannot be collected twice.
	_, err = env.FeeService.RecordPayment(env.ctx, payment.ID, &dto.RecordFeePaymentRequest{PaymentMethod: "cash"})
	assert.Error(t, err)
}

func TestQuoteMonthlyFee(t *testing.T) {
	env := newTestEnv(t)
	sport := env.seedSport(t, "Cricket")
	coach := env.seedCoach(t, "Rajesh Kumar")
	batch := env.seedBatch(t, sport.ID, coach.ID, 10)
	student := env.seedStudent(t, "STU001", sport.ID, batch.ID)

	amount, err := env.FeeService.QuoteMonthlyFee(env.ctx, student.ID)
	require.NoError(t, err)
	assert.Equal(t, 2000.0, amount) // beginner tier

	_, err = env.StudentService.UpdateStudent(env.ctx, student.ID, &dto.UpdateStudentRequest{
		Name:       student.Name,
		Phone:      student.Phone,
		BatchID:    batch.ID,
		SkillLevel: "advanced",
	})
	require.NoError(t, err)

	amount, err = env.FeeService.QuoteMonthlyFee(env.ctx, student.ID)
	require.NoError(t, err)
	assert.Equal(t, 3000.0, amount)
}
