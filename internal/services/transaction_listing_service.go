package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rajshah0904/Liquicity-sub002/internal/dto"
	"github.com/rajshah0904/Liquicity-sub002/internal/models"
)

type transactionListingService struct {
	queryService   TransactionQueryServiceInterface
	summaryService TransactionSummaryServiceInterface
	metrics        MetricsRecorderInterface
}

// NewTransactionListingService wires the query and summary services into the listing pipeline
func NewTransactionListingService(
	queryService TransactionQueryServiceInterface,
	summaryService TransactionSummaryServiceInterface,
	metrics MetricsRecorderInterface,
) TransactionListingServiceInterface {
	return &transactionListingService{
		queryService:   queryService,
		summaryService: summaryService,
		metrics:        metrics,
	}
}

// ListTransactions runs the page, count and summary reads concurrently and assembles the payload.
// Any failed read fails the whole request; no partial result is returned.
func (s *transactionListingService) ListTransactions(ctx context.Context, filter models.TransactionFilter) (*dto.ListTransactionsResponse, error) {
	start := time.Now()

	var (
		items      []dto.TransactionItem
		totalCount int64
		summary    *models.TransactionSummary
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		page, err := s.queryService.ListPage(gctx, filter)
		if err != nil {
			s.recordStoreFailure("list_page")
			return err
		}
		items = page
		return nil
	})

	g.Go(func() error {
		count, err := s.queryService.CountMatching(gctx, filter)
		if err != nil {
			s.recordStoreFailure("count_matching")
			return err
		}
		totalCount = count
		return nil
	})

	g.Go(func() error {
		result, err := s.summaryService.GetSummary(gctx, filter.AccountID)
		if err != nil {
			s.recordStoreFailure("summary")
			return err
		}
		summary = result
		return nil
	})

	if err := g.Wait(); err != nil {
		s.metrics.IncrementCounter("transactions.list", map[string]string{"status": "failed"})
		slog.Error("transaction listing failed",
			"account_id", filter.AccountID,
			"error", err,
		)
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	if items == nil {
		items = []dto.TransactionItem{}
	}

	response := &dto.ListTransactionsResponse{
		Transactions: items,
		Pagination: dto.PaginationInfo{
			CurrentPage: filter.Page,
			TotalPages:  filter.TotalPages(totalCount),
			TotalCount:  totalCount,
		},
		Summary: dto.NewTransactionSummaryResponse(summary),
	}

	s.metrics.IncrementCounter("transactions.list", map[string]string{"status": "success"})
	s.metrics.RecordProcessingTime("transactions.list", time.Since(start))

	return response, nil
}

func (s *transactionListingService) recordStoreFailure(operation string) {
	s.metrics.IncrementCounter("store.read.failed", map[string]string{"operation": operation})
}
