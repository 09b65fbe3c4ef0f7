package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rajshah0904/Liquicity-sub002/internal/errors"
	"github.com/rajshah0904/Liquicity-sub002/internal/repositories"
	"github.com/rajshah0904/Liquicity-sub002/internal/services"
)

const (
	defaultGeneratedCount = 50
	maxGeneratedCount     = 1000
	defaultGeneratedDays  = 90
	maxGeneratedDays      = 365
)

// DevHandler handles development-only endpoints
// These endpoints are only registered when APP_ENV=development
type DevHandler struct {
	transactionRepo   repositories.TransactionRepositoryInterface
	linkedAccountRepo repositories.LinkedAccountRepositoryInterface
	generator         services.TransactionGeneratorInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(
	transactionRepo repositories.TransactionRepositoryInterface,
	linkedAccountRepo repositories.LinkedAccountRepositoryInterface,
	generator services.TransactionGeneratorInterface,
) *DevHandler {
	return &DevHandler{
		transactionRepo:   transactionRepo,
		linkedAccountRepo: linkedAccountRepo,
		generator:         generator,
	}
}

// GenerateTransactions fills the authenticated account with realistic cross-border history
//
// Method: POST /api/v1/dev/transactions/generate
// Authentication: Required
// Environment: Development only
//
// Query parameters:
//   - count: Number of transactions to generate (default: 50, max: 1000)
//   - days: Number of days of history to spread them over (default: 90, max: 365)
//
// Error Responses:
//   - 400: Account has no linked accounts to route payments between
//   - 401: Unauthorized
//   - 500: Internal server error
func (h *DevHandler) GenerateTransactions(c echo.Context) error {
	accountID, err := getAccountIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthInvalidToken)
	}

	count := clamp(getIntParam(c, "count", defaultGeneratedCount), 1, maxGeneratedCount)
	days := clamp(getIntParam(c, "days", defaultGeneratedDays), 1, maxGeneratedDays)

	ctx := c.Request().Context()

	linked, err := h.linkedAccountRepo.ListByAccountID(ctx, accountID)
	if err != nil {
		return SendSystemError(c, err)
	}
	if len(linked) == 0 {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("account has no linked accounts"))
	}

	endDate := time.Now().UTC()
	startDate := endDate.AddDate(0, 0, -days)

	transactions := h.generator.Generate(accountID, linked, startDate, endDate, count)
	if err := h.transactionRepo.CreateBatch(ctx, transactions); err != nil {
		return SendSystemError(c, err)
	}

	slog.Info("generated development transactions",
		"trace_id", getTraceID(c),
		"account_id", accountID,
		"count", len(transactions),
	)

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":              "test data generated successfully",
		"transactions_created": len(transactions),
		"account_id":           accountID,
		"date_range": map[string]string{
			"start": startDate.Format(time.RFC3339),
			"end":   endDate.Format(time.RFC3339),
		},
	})
}

func clamp(value, lower, upper int) int {
	if value < lower {
		return lower
	}
	if value > upper {
		return upper
	}
	return value
}
