package models

import (
	"github.com/shopspring/decimal"
)

// GroupCount is one row of a GROUP BY ... COUNT(*) aggregate
type GroupCount struct {
	Key   string `gorm:"column:group_key"`
	Count int64  `gorm:"column:group_count"`
}

// TransactionSummary aggregates an account's full transaction history.
// It is recomputed on every request and never persisted.
type TransactionSummary struct {
	Total              int64           `json:"total"`
	Pending            int64           `json:"pending"`
	Completed          int64           `json:"completed"`
	Failed             int64           `json:"failed"`
	DomesticCount      int64           `json:"domesticCount"`
	InternationalCount int64           `json:"internationalCount"`
	Volume             decimal.Decimal `json:"volume"`
}

// NewTransactionSummary returns a summary with every counter at zero
func NewTransactionSummary() *TransactionSummary {
	return &TransactionSummary{Volume: decimal.Zero}
}

// ApplyStatusCounts overwrites the status counters from grouped rows and sets Total to their sum
func (s *TransactionSummary) ApplyStatusCounts(groups []GroupCount) {
	var total int64
	for _, g := range groups {
		switch g.Key {
		case TransactionStatusPending:
			s.Pending = g.Count
		case TransactionStatusCompleted:
			s.Completed = g.Count
		case TransactionStatusFailed:
			s.Failed = g.Count
		}
		total += g.Count
	}
	s.Total = total
}

// ApplyTypeCounts overwrites the type counters; unknown types are ignored
func (s *TransactionSummary) ApplyTypeCounts(groups []GroupCount) {
	for _, g := range groups {
		switch g.Key {
		case TransactionTypeDomestic:
			s.DomesticCount = g.Count
		case TransactionTypeInternational:
			s.InternationalCount = g.Count
		}
	}
}

// FoldTransactionSummary computes the summary in memory over an already-fetched set
func FoldTransactionSummary(transactions []Transaction) *TransactionSummary {
	summary := NewTransactionSummary()
	statusCounts := make(map[string]int64)
	typeCounts := make(map[string]int64)

	for i := range transactions {
		txn := &transactions[i]
		statusCounts[txn.Status]++
		typeCounts[txn.TransactionType]++
		if txn.IsCompleted() {
			summary.Volume = summary.Volume.Add(txn.Amount)
		}
	}

	summary.ApplyStatusCounts(toGroupCounts(statusCounts))
	summary.ApplyTypeCounts(toGroupCounts(typeCounts))
	return summary
}

func toGroupCounts(counts map[string]int64) []GroupCount {
	groups := make([]GroupCount, 0, len(counts))
	for key, count := range counts {
		groups = append(groups, GroupCount{Key: key, Count: count})
	}
	return groups
}
