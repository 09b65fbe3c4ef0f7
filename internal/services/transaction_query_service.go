package services

import (
	"context"
	"fmt"

	"github.com/rajshah0904/Liquicity-sub002/internal/dto"
	"github.com/rajshah0904/Liquicity-sub002/internal/models"
	"github.com/rajshah0904/Liquicity-sub002/internal/repositories"
)

// isoMillisLayout renders timestamps as ISO-8601 UTC with millisecond precision
const isoMillisLayout = "2006-01-02T15:04:05.000Z07:00"

type transactionQueryService struct {
	transactionRepo repositories.TransactionRepositoryInterface
}

// NewTransactionQueryService creates the page/count lookup service
func NewTransactionQueryService(transactionRepo repositories.TransactionRepositoryInterface) TransactionQueryServiceInterface {
	return &transactionQueryService{
		transactionRepo: transactionRepo,
	}
}

// ListPage fetches one page and projects each record for the response.
// A negative offset reads from the start. A non-positive page size, or a page past the
// largest representable offset, yields an empty page.
func (s *transactionQueryService) ListPage(ctx context.Context, filter models.TransactionFilter) ([]dto.TransactionItem, error) {
	if filter.PageSize <= 0 || filter.OffsetOverflows() {
		return []dto.TransactionItem{}, nil
	}

	offset := filter.Offset()
	if offset < 0 {
		offset = 0
	}

	transactions, err := s.transactionRepo.FindPage(ctx, filter, offset, filter.PageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	items := make([]dto.TransactionItem, 0, len(transactions))
	for i := range transactions {
		items = append(items, ProjectTransaction(&transactions[i]))
	}

	return items, nil
}

// CountMatching counts all records matching the filter across every page
func (s *transactionQueryService) CountMatching(ctx context.Context, filter models.TransactionFilter) (int64, error) {
	total, err := s.transactionRepo.CountMatching(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return total, nil
}

// ProjectTransaction denormalizes a record into its listing row
func ProjectTransaction(txn *models.Transaction) dto.TransactionItem {
	return dto.TransactionItem{
		ID:                 txn.ID.String(),
		Date:               txn.CreatedAt.UTC().Format(isoMillisLayout),
		Amount:             txn.Amount.StringFixed(2),
		Currency:           txn.Currency,
		Status:             txn.Status,
		Type:               txn.TransactionType,
		SourceCountry:      txn.SourceCountry(),
		DestinationCountry: txn.DestinationCountry(),
		PaymentMethod:      txn.PaymentMethod,
		Recipient:          txn.RecipientDisplayName(),
	}
}
