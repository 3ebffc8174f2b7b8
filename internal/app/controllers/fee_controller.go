package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/psanashik/academy/internal/app/models"
	"github.com/psanashik/academy/internal/app/models/dto"
	"github.com/psanashik/academy/internal/app/repositories"
	"github.com/psanashik/academy/internal/app/services"
	"github.com/psanashik/academy/internal/middleware"
	"github.com/psanashik/academy/internal/pkg/helpers"
)

// FeeController handles fee and payment operations
type FeeController struct {
	feeService services.FeeService
}

// NewFeeController creates a new FeeController
func NewFeeController(feeService services.FeeService) *FeeController {
	return &FeeController{feeService: feeService}
}

func feeFilterFromQuery(ctx *gin.Context) repositories.PaymentFilter {
	return repositories.PaymentFilter{
		Search:    ctx.Query("search"),
		MonthYear: ctx.Query("month"),
		StudentID: parseInt64Query(ctx, "studentId"),
	}
}

// CreatePayment creates a payment record
// @Summary Create a payment record
// @Description Creates a pending payment record for a student. Status is always derived, never stored.
// @Tags fees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreatePaymentRequest true "Payment information"
// @Success 201 {object} dto.APIResponse{data=models.Payment} "Payment created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /fees [post]
func (c *FeeController) CreatePayment(ctx *gin.Context) {
	var req dto.CreatePaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		handleBindingError(ctx, err)
		return
	}

	payment, err := c.feeService.CreatePayment(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(payment))
}

// GetPayment retrieves a payment by ID
// @Summary Get payment by ID
// @Tags fees
// @Produce json
// @Security BearerAuth
// @Param id path int true "Payment ID"
// @Success 200 {object} dto.APIResponse{data=models.Payment} "Payment"
// @Failure 404 {object} dto.ErrorResponse "Payment not found"
// @Router /fees/{id} [get]
func (c *FeeController) GetPayment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "payment ID")
	if !ok {
		return
	}

	payment, err := c.feeService.GetPayment(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(payment))
}

// ListFees retrieves payments with derived statuses and a summary
// @Summary List fees
// @Description Lists payment records with statuses derived at read time. The summary covers exactly the filtered set.
// @Tags fees
// @Produce json
// @Security BearerAuth
// @Param search query string false "Match against student name or student ID"
// @Param month query string false "Billing month (YYYY-MM)"
// @Param studentId query int false "Filter by student"
// @Param status query string false "Derived status filter (paid, pending, overdue)"
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.FeeListResponse} "Fees with summary"
// @Router /fees [get]
func (c *FeeController) ListFees(ctx *gin.Context) {
	fees, summary, err := c.feeService.ListFees(ctx, feeFilterFromQuery(ctx), models.FeeStatus(ctx.Query("status")))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	page, size := helpers.ParsePaginationParams(ctx)
	resp := dto.FeeListResponse{
		Fees:       pageSlice(fees, page, size),
		Summary:    summary,
		Pagination: helpers.NewPaginationInfo(int64(len(fees)), page, size),
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(resp))
}

// GetFeeSummary returns the fee summary for the filtered set
// @Summary Fee summary
// @Description Totals and counts per derived status bucket over the filtered payment set
// @Tags fees
// @Produce json
// @Security BearerAuth
// @Param search query string false "Match against student name or student ID"
// @Param month query string false "Billing month (YYYY-MM)"
// @Param studentId query int false "Filter by student"
// @Param status query string false "Derived status filter (paid, pending, overdue)"
// @Success 200 {object} dto.APIResponse{data=aggregate.FeeSummary} "Summary"
// @Router /fees/summary [get]
func (c *FeeController) GetFeeSummary(ctx *gin.Context) {
	_, summary, err := c.feeService.ListFees(ctx, feeFilterFromQuery(ctx), models.FeeStatus(ctx.Query("status")))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(summary))
}

// RecordPayment marks a payment as collected
// @Summary Record a payment
// @Description Marks a pending or overdue payment as paid and issues a receipt number. Already-paid payments are rejected.
// @Tags fees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Payment ID"
// @Param request body dto.RecordFeePaymentRequest true "Collection details"
// @Success 200 {object} dto.APIResponse{data=models.Payment} "Payment recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Payment not found"
// @Failure 409 {object} dto.ErrorResponse "Payment already recorded"
// @Router /fees/{id}/pay [post]
func (c *FeeController) RecordPayment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "payment ID")
	if !ok {
		return
	}

	var req dto.RecordFeePaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		handleBindingError(ctx, err)
		return
	}

	payment, err := c.feeService.RecordPayment(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(payment))
}

// QuoteMonthlyFee returns the monthly fee for a student's sport and skill level
// @Summary Quote a student's monthly fee
// @Tags fees
// @Produce json
// @Security BearerAuth
// @Param studentId path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.FeeQuote} "Quoted amount"
// @Failure 404 {object} dto.ErrorResponse "Student or sport not found"
// @Router /fees/quote/{studentId} [get]
func (c *FeeController) QuoteMonthlyFee(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "studentId", "student ID")
	if !ok {
		return
	}

	amount, err := c.feeService.QuoteMonthlyFee(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.FeeQuote{StudentID: studentID, Amount: amount}))
}
