package services

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "finadvisor/internal/errors"
	"finadvisor/internal/models"
	"finadvisor/internal/pagination"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// CreateTransaction records an expense or income. Transactions are never
// updated afterwards.
func (s *transactionService) CreateTransaction(
	ctx context.Context,
	userID uint,
	category string,
	amount decimal.Decimal,
	txType models.TransactionType,
	date time.Time,
) (*models.Transaction, error) {
	category = strings.TrimSpace(category)
	if category == "" || date.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "All fields required")
	}
	if !amount.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid amount")
	}
	if txType != models.TransactionTypeExpense && txType != models.TransactionTypeIncome {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "type must be expense or income")
	}

	txn := &models.Transaction{
		UserID:   userID,
		Category: category,
		Amount:   amount,
		Type:     txType,
		Date:     date,
	}
	if err := s.db.WithContext(ctx).Create(txn).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return txn, nil
}

// GetUserTransactions lists the user's transactions, newest date first. All
// rows are returned unless a page was requested.
func (s *transactionService) GetUserTransactions(ctx context.Context, userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	base := s.db.WithContext(ctx).Model(&models.Transaction{}).Where("user_id = ?", userID).
		Session(&gorm.Session{})

	var txns []models.Transaction
	if !page.Requested() {
		if err := base.Order("date DESC, created_at DESC").Find(&txns).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		result := pagination.All(txns)
		return &result, nil
	}

	page.Defaults()
	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := base.Order("date DESC, created_at DESC").Scopes(pagination.Paginate(page)).Find(&txns).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(txns, page.Page, page.PageSize, totalItems)
	return &result, nil
}
