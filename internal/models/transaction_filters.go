package models

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// TransactionSortOrder is one of the four orderings the dashboard offers
type TransactionSortOrder string

const (
	SortNewest     TransactionSortOrder = "newest"
	SortOldest     TransactionSortOrder = "oldest"
	SortAmountHigh TransactionSortOrder = "amount-high"
	SortAmountLow  TransactionSortOrder = "amount-low"

	DefaultPage     = 1
	DefaultPageSize = 10
)

// ParseSortOrder returns the matching sort order, falling back to newest
func ParseSortOrder(value string) TransactionSortOrder {
	switch TransactionSortOrder(value) {
	case SortOldest, SortAmountHigh, SortAmountLow:
		return TransactionSortOrder(value)
	default:
		return SortNewest
	}
}

// OrderClause returns the SQL ORDER BY expression for the sort order
func (s TransactionSortOrder) OrderClause() string {
	switch s {
	case SortOldest:
		return "created_at ASC"
	case SortAmountHigh:
		return "amount DESC"
	case SortAmountLow:
		return "amount ASC"
	default:
		return "created_at DESC"
	}
}

// TransactionFilter describes one page request against an account's transactions.
// A nil optional field means the dimension is unconstrained.
type TransactionFilter struct {
	AccountID uuid.UUID
	Status    *string
	Type      *string
	DateFrom  *time.Time
	DateTo    *time.Time
	Search    *string
	Sort      TransactionSortOrder
	Page      int
	PageSize  int
}

// Offset returns the number of records to skip for the requested page.
// Zero or negative pages are passed through unchanged; callers decide how to treat them.
func (f TransactionFilter) Offset() int {
	return (f.Page - 1) * f.PageSize
}

// OffsetOverflows reports whether the requested page starts beyond the largest representable offset
func (f TransactionFilter) OffsetOverflows() bool {
	return f.Page > 1 && f.PageSize > 0 && f.Page-1 > math.MaxInt/f.PageSize
}

// TotalPages returns ceil(totalCount / pageSize), or 0 when either side is non-positive
func (f TransactionFilter) TotalPages(totalCount int64) int {
	if totalCount <= 0 || f.PageSize <= 0 {
		return 0
	}
	size := int64(f.PageSize)
	return int((totalCount + size - 1) / size)
}
