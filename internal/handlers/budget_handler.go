package handlers

import (
	"github.com/gin-gonic/gin"

	apperrors "finadvisor/internal/errors"
	"finadvisor/internal/services"
)

// BudgetHandler handles monthly budget requests
type BudgetHandler struct {
	budgetService services.BudgetServicer
	auditService  services.AuditServicer
}

// NewBudgetHandler creates a new BudgetHandler
func NewBudgetHandler(budgetService services.BudgetServicer, auditService services.AuditServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService, auditService: auditService}
}

// AddBudgetRequest represents the payload for setting this month's budget.
// user_id and amount may be JSON numbers or numeric strings.
type AddBudgetRequest struct {
	UserID flexID      `json:"user_id" binding:"required" swaggertype:"integer"`
	Amount interface{} `json:"amount" swaggertype:"number"`
}

// BudgetOverviewResponse represents the budget overview payload
type BudgetOverviewResponse struct {
	Status string `json:"status" example:"success"`
	services.BudgetOverview
}

// AddBudget sets the current month's budget
// @Summary     Set this month's budget
// @Description Create or replace the caller's budget for the current month
// @Tags        budget
// @Accept      json
// @Produce     json
// @Param       request body AddBudgetRequest true "Budget data"
// @Success     200 {object} MessageResponse "Budget set"
// @Failure     400 {object} ErrorResponse "Missing or invalid amount"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /add_budget [post]
func (h *BudgetHandler) AddBudget(c *gin.Context) {
	var req AddBudgetRequest
	if !bindJSON(c, &req, "user_id and amount required") {
		return
	}

	amount, present, err := parseAmount(req.Amount)
	if !present {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "user_id and amount required"))
		return
	}
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid amount"))
		return
	}

	budget, err := h.budgetService.SetBudget(c.Request.Context(), uint(req.UserID), amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(c.Request.Context(), services.AuditEntry{
		UserID:       budget.UserID,
		Action:       services.AuditSetBudget,
		ResourceType: "budget",
		ResourceID:   budget.ID,
		IPAddress:    c.ClientIP(),
		Changes:      map[string]interface{}{"month_year": budget.MonthYear, "amount": budget.Amount.String()},
	})

	respondMessage(c, "Budget set for current month")
}

// GetBudget returns the current month summary and recent months
// @Summary     Get budget overview
// @Description Current month budget, spend, remaining and advice plus up to three previous months
// @Tags        budget
// @Produce     json
// @Param       user_id query int true "User ID"
// @Success     200 {object} BudgetOverviewResponse "Budget overview"
// @Failure     400 {object} ErrorResponse "Missing user_id"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /get_budget [get]
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	userID, ok := queryID(c, "user_id")
	if !ok {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "user_id required"))
		return
	}

	overview, err := h.budgetService.GetBudgetOverview(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondOK(c, gin.H{
		"current":  overview.Current,
		"previous": overview.Previous,
	})
}
