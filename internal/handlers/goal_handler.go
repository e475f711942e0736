package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "finadvisor/internal/errors"
	"finadvisor/internal/models"
	"finadvisor/internal/services"
)

// GoalHandler handles savings goal requests
type GoalHandler struct {
	goalService  services.GoalServicer
	auditService services.AuditServicer
}

// NewGoalHandler creates a new GoalHandler
func NewGoalHandler(goalService services.GoalServicer, auditService services.AuditServicer) *GoalHandler {
	return &GoalHandler{goalService: goalService, auditService: auditService}
}

// CreateGoalRequest represents the goal creation payload
type CreateGoalRequest struct {
	UserID flexID      `json:"user_id" binding:"required" swaggertype:"integer"`
	Name   string      `json:"name" binding:"required,max=100"`
	Target interface{} `json:"target" swaggertype:"number"`
	Saved  interface{} `json:"saved" swaggertype:"number"`
	Date   string      `json:"date" binding:"required,date_only" example:"2024-12-31"`
}

// UpdateGoalRequest represents the goal update payload. Omitted fields are
// left unchanged; a supplied user_id must own the goal.
type UpdateGoalRequest struct {
	GoalID flexID      `json:"goal_id" binding:"required" swaggertype:"integer"`
	UserID flexID      `json:"user_id" swaggertype:"integer"`
	Name   *string     `json:"name" binding:"omitempty,max=100"`
	Target interface{} `json:"target" swaggertype:"number"`
	Date   *string     `json:"date" binding:"omitempty,date_only"`
}

// DeleteGoalRequest represents the goal deletion payload
type DeleteGoalRequest struct {
	GoalID flexID `json:"goal_id" binding:"required" swaggertype:"integer"`
	UserID flexID `json:"user_id" swaggertype:"integer"`
}

// AddGoalMoneyRequest represents a deposit toward a goal
type AddGoalMoneyRequest struct {
	UserID flexID      `json:"user_id" binding:"required" swaggertype:"integer"`
	GoalID flexID      `json:"goal_id" binding:"required" swaggertype:"integer"`
	Amount interface{} `json:"amount" swaggertype:"number"`
	Date   string      `json:"date" binding:"required,date_only" example:"2024-03-10"`
	Note   *string     `json:"note" binding:"omitempty,max=255"`
}

// GoalListResponse represents the goal list payload
type GoalListResponse struct {
	Status string        `json:"status" example:"success"`
	Goals  []models.Goal `json:"goals"`
}

// GoalHistoryResponse represents the deposit history payload
type GoalHistoryResponse struct {
	Status  string              `json:"status" example:"success"`
	History []models.GoalSaving `json:"history"`
}

// owner turns an optional user_id into the ownership filter.
func owner(id flexID) *uint {
	if id == 0 {
		return nil
	}
	v := uint(id)
	return &v
}

// GetGoals lists the user's goals
// @Summary     List goals
// @Tags        goals
// @Produce     json
// @Param       user_id query int true "User ID"
// @Success     200 {object} GoalListResponse "Goals"
// @Failure     400 {object} ErrorResponse "Missing user_id"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals [get]
func (h *GoalHandler) GetGoals(c *gin.Context) {
	userID, ok := queryID(c, "user_id")
	if !ok {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "user_id required"))
		return
	}

	goals, err := h.goalService.GetUserGoals(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondOK(c, gin.H{"goals": goals})
}

// CreateGoal adds a savings goal
// @Summary     Add a goal
// @Tags        goals
// @Accept      json
// @Produce     json
// @Param       request body CreateGoalRequest true "Goal data"
// @Success     200 {object} MessageResponse "Goal added"
// @Failure     400 {object} ErrorResponse "Missing fields"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals [post]
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	var req CreateGoalRequest
	if !bindJSON(c, &req, "All fields required") {
		return
	}

	target, present, err := parseAmount(req.Target)
	if !present {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "All fields required"))
		return
	}
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid target"))
		return
	}
	saved, _, err := parseAmount(req.Saved)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid saved amount"))
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid date"))
		return
	}

	goal, err := h.goalService.CreateGoal(c.Request.Context(), uint(req.UserID), req.Name, target, saved, date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(c.Request.Context(), services.AuditEntry{
		UserID:       goal.UserID,
		Action:       services.AuditCreateGoal,
		ResourceType: "goal",
		ResourceID:   goal.ID,
		IPAddress:    c.ClientIP(),
		Changes:      map[string]interface{}{"name": goal.Name, "target": goal.Target.String()},
	})

	respondMessage(c, "Goal added")
}

// UpdateGoal changes a goal's name, target or date
// @Summary     Update a goal
// @Description Only the supplied fields change. Lowering the target to the saved amount completes the goal.
// @Tags        goals
// @Accept      json
// @Produce     json
// @Param       request body UpdateGoalRequest true "Goal changes"
// @Success     200 {object} MessageResponse "Goal updated"
// @Failure     400 {object} ErrorResponse "Missing goal_id"
// @Failure     403 {object} ErrorResponse "Goal belongs to another user"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /update_goal [post]
func (h *GoalHandler) UpdateGoal(c *gin.Context) {
	var req UpdateGoalRequest
	if !bindJSON(c, &req, "goal_id required") {
		return
	}

	update := services.GoalUpdate{Name: req.Name}
	changes := map[string]interface{}{}
	if req.Name != nil {
		changes["name"] = *req.Name
	}
	target, present, err := parseAmount(req.Target)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid target"))
		return
	}
	if present {
		update.Target = &target
		changes["target"] = target.String()
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid date"))
			return
		}
		update.Date = &date
		changes["date"] = *req.Date
	}

	goal, err := h.goalService.UpdateGoal(c.Request.Context(), uint(req.GoalID), owner(req.UserID), update)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(c.Request.Context(), services.AuditEntry{
		UserID:       goal.UserID,
		Action:       services.AuditUpdateGoal,
		ResourceType: "goal",
		ResourceID:   goal.ID,
		IPAddress:    c.ClientIP(),
		Changes:      changes,
	})

	respondMessage(c, "Goal updated")
}

// DeleteGoal removes a goal and its deposit history
// @Summary     Delete a goal
// @Tags        goals
// @Accept      json
// @Produce     json
// @Param       request body DeleteGoalRequest true "Goal to delete"
// @Success     200 {object} MessageResponse "Goal deleted"
// @Failure     400 {object} ErrorResponse "Missing goal_id"
// @Failure     403 {object} ErrorResponse "Goal belongs to another user"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /delete_goal [post]
func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	var req DeleteGoalRequest
	if !bindJSON(c, &req, "goal_id required") {
		return
	}

	goal, err := h.goalService.DeleteGoal(c.Request.Context(), uint(req.GoalID), owner(req.UserID))
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(c.Request.Context(), services.AuditEntry{
		UserID:       goal.UserID,
		Action:       services.AuditDeleteGoal,
		ResourceType: "goal",
		ResourceID:   goal.ID,
		IPAddress:    c.ClientIP(),
	})

	respondMessage(c, "Goal deleted")
}

// AddGoalMoney deposits money toward a goal
// @Summary     Add money to a goal
// @Description Records the deposit and raises the goal's saved amount in one transaction. The goal completes once saved reaches the target.
// @Tags        goals
// @Accept      json
// @Produce     json
// @Param       request body AddGoalMoneyRequest true "Deposit"
// @Success     200 {object} MessageResponse "Amount added to goal"
// @Failure     400 {object} ErrorResponse "Missing or invalid fields"
// @Failure     403 {object} ErrorResponse "Goal belongs to another user"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /add_goal_money [post]
func (h *GoalHandler) AddGoalMoney(c *gin.Context) {
	const required = "user_id, goal_id, amount, and date required"

	var req AddGoalMoneyRequest
	if !bindJSON(c, &req, required) {
		return
	}

	amount, present, err := parseAmount(req.Amount)
	if !present || (err == nil && amount.IsZero()) {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, required))
		return
	}
	if err != nil || amount.LessThan(decimal.Zero) {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid amount format"))
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid date"))
		return
	}

	goal, err := h.goalService.AddGoalMoney(c.Request.Context(), uint(req.UserID), uint(req.GoalID), amount, date, req.Note)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(c.Request.Context(), services.AuditEntry{
		UserID:       goal.UserID,
		Action:       services.AuditGoalDeposit,
		ResourceType: "goal",
		ResourceID:   goal.ID,
		IPAddress:    c.ClientIP(),
		Changes: map[string]interface{}{
			"amount": amount.String(),
			"saved":  goal.Saved.String(),
			"status": goal.Status,
		},
	})

	respondMessage(c, "Amount added to goal")
}

// GetGoalHistory lists deposits made toward a goal
// @Summary     Goal deposit history
// @Description Newest first. page and page_size are optional.
// @Tags        goals
// @Produce     json
// @Param       user_id   query int true  "User ID"
// @Param       goal_id   query int true  "Goal ID"
// @Param       page      query int false "Page number"
// @Param       page_size query int false "Items per page (max 100)"
// @Success     200 {object} GoalHistoryResponse "Deposits"
// @Failure     400 {object} ErrorResponse "Missing user_id or goal_id"
// @Router      /goal_money_history [get]
func (h *GoalHandler) GetGoalHistory(c *gin.Context) {
	userID, okUser := queryID(c, "user_id")
	goalID, okGoal := queryID(c, "goal_id")
	if !okUser || !okGoal {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "user_id and goal_id required"))
		return
	}
	page, ok := bindPage(c)
	if !ok {
		return
	}

	resp, err := h.goalService.GetGoalHistory(c.Request.Context(), userID, goalID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondOK(c, listBody("history", resp, page.Requested()))
}
