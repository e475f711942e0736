package handlers

import (
	"github.com/gin-gonic/gin"

	apperrors "finadvisor/internal/errors"
	"finadvisor/internal/models"
	"finadvisor/internal/services"
)

// TransactionHandler handles transaction-related requests
type TransactionHandler struct {
	transactionService services.TransactionServicer
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(transactionService services.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransactionRequest represents the transaction creation payload
type CreateTransactionRequest struct {
	UserID   flexID      `json:"user_id" binding:"required" swaggertype:"integer"`
	Category string      `json:"category" binding:"required,max=100"`
	Amount   interface{} `json:"amount" swaggertype:"number"`
	Type     string      `json:"type" binding:"required,txn_type" enums:"expense,income"`
	Date     string      `json:"date" binding:"required,date_only" example:"2024-03-10"`
}

// TransactionListResponse represents the transaction list payload
type TransactionListResponse struct {
	Status       string               `json:"status" example:"success"`
	Transactions []models.Transaction `json:"transactions"`
}

// GetTransactions lists the user's transactions
// @Summary     List transactions
// @Description Newest first. page and page_size are optional; without them every transaction is returned.
// @Tags        transactions
// @Produce     json
// @Param       user_id   query int true  "User ID"
// @Param       page      query int false "Page number"
// @Param       page_size query int false "Items per page (max 100)"
// @Success     200 {object} TransactionListResponse "Transactions"
// @Failure     400 {object} ErrorResponse "Missing user_id"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [get]
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	userID, ok := queryID(c, "user_id")
	if !ok {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "user_id required"))
		return
	}
	page, ok := bindPage(c)
	if !ok {
		return
	}

	resp, err := h.transactionService.GetUserTransactions(c.Request.Context(), userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondOK(c, listBody("transactions", resp, page.Requested()))
}

// CreateTransaction records an expense or income
// @Summary     Add a transaction
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       request body CreateTransactionRequest true "Transaction data"
// @Success     200 {object} MessageResponse "Transaction added"
// @Failure     400 {object} ErrorResponse "Missing or invalid fields"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if !bindJSON(c, &req, "All fields required") {
		return
	}

	amount, present, err := parseAmount(req.Amount)
	if !present {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "All fields required"))
		return
	}
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid amount"))
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid date"))
		return
	}

	_, err = h.transactionService.CreateTransaction(c.Request.Context(),
		uint(req.UserID), req.Category, amount, models.TransactionType(req.Type), date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondMessage(c, "Transaction added")
}
