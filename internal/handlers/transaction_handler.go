package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rajshah0904/Liquicity-sub002/internal/dto"
	"github.com/rajshah0904/Liquicity-sub002/internal/errors"
	"github.com/rajshah0904/Liquicity-sub002/internal/services"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	listingService services.TransactionListingServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(listingService services.TransactionListingServiceInterface) *TransactionHandler {
	return &TransactionHandler{
		listingService: listingService,
	}
}

// ListTransactions returns one page of the account's transactions with pagination and an account-wide summary
// @Summary List transactions
// @Description Paginated, filtered and sorted transaction history. The summary always covers the whole account.
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number, 1-based" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Param status query string false "Filter by status" Enums(all, pending, completed, failed)
// @Param type query string false "Filter by type" Enums(all, domestic, international)
// @Param dateFrom query string false "Inclusive lower bound (YYYY-MM-DD or RFC 3339)"
// @Param dateTo query string false "Inclusive upper bound (YYYY-MM-DD or RFC 3339)"
// @Param search query string false "Case-insensitive match on recipient, id or notes"
// @Param sortOrder query string false "Sort order" Enums(newest, oldest, amount-high, amount-low)
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - No authenticated account"
// @Failure 500 {object} errors.ErrorResponse "TRANSACTION_002 - Failed to fetch transactions"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	accountID, err := getAccountIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthInvalidToken)
	}

	var params dto.TransactionQueryParams
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &params); err != nil {
		// every field is a string, so binding only fails on a malformed query string
		params = dto.TransactionQueryParams{}
	}

	filter := services.BuildTransactionFilter(accountID, params)

	response, err := h.listingService.ListTransactions(c.Request().Context(), filter)
	if err != nil {
		slog.Error("failed to fetch transactions",
			"trace_id", getTraceID(c),
			"account_id", accountID,
			"error", err,
		)
		return SendError(c, errors.TransactionListingFailed)
	}

	return c.JSON(http.StatusOK, response)
}
