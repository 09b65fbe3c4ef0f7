package dto

import (
	"github.com/rajshah0904/Liquicity-sub002/internal/models"
)

// TransactionQueryParams carries the raw query string of GET /transactions.
// Every field stays a string so malformed numbers fall back to defaults instead of failing the bind.
type TransactionQueryParams struct {
	Page      string `query:"page"`
	PageSize  string `query:"pageSize"`
	Status    string `query:"status"`
	Type      string `query:"type"`
	DateFrom  string `query:"dateFrom"`
	DateTo    string `query:"dateTo"`
	Search    string `query:"search"`
	SortOrder string `query:"sortOrder"`
}

// TransactionItem is one projected row of the listing
type TransactionItem struct {
	ID                 string `json:"id"`
	Date               string `json:"date"`
	Amount             string `json:"amount"`
	Currency           string `json:"currency"`
	Status             string `json:"status"`
	Type               string `json:"type"`
	SourceCountry      string `json:"sourceCountry"`
	DestinationCountry string `json:"destinationCountry"`
	PaymentMethod      string `json:"paymentMethod"`
	Recipient          string `json:"recipient"`
}

// PaginationInfo contains pagination metadata
type PaginationInfo struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalCount  int64 `json:"totalCount"`
}

// TransactionSummaryResponse is the account-wide summary block
type TransactionSummaryResponse struct {
	Total              int64  `json:"total"`
	Pending            int64  `json:"pending"`
	Completed          int64  `json:"completed"`
	Failed             int64  `json:"failed"`
	DomesticCount      int64  `json:"domesticCount"`
	InternationalCount int64  `json:"internationalCount"`
	Volume             string `json:"volume"`
}

// ListTransactionsResponse represents the response for listing transactions
type ListTransactionsResponse struct {
	Transactions []TransactionItem          `json:"transactions"`
	Pagination   PaginationInfo             `json:"pagination"`
	Summary      TransactionSummaryResponse `json:"summary"`
}

// NewTransactionSummaryResponse projects the aggregate into its wire form
func NewTransactionSummaryResponse(summary *models.TransactionSummary) TransactionSummaryResponse {
	if summary == nil {
		summary = models.NewTransactionSummary()
	}
	return TransactionSummaryResponse{
		Total:              summary.Total,
		Pending:            summary.Pending,
		Completed:          summary.Completed,
		Failed:             summary.Failed,
		DomesticCount:      summary.DomesticCount,
		InternationalCount: summary.InternationalCount,
		Volume:             summary.Volume.StringFixed(2),
	}
}
