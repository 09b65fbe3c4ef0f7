package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/rajshah0904/Liquicity-sub002/internal/models"
	"github.com/rajshah0904/Liquicity-sub002/internal/repositories"
)

type transactionSummaryService struct {
	transactionRepo repositories.TransactionRepositoryInterface
}

// NewTransactionSummaryService creates the account-wide summary aggregator
func NewTransactionSummaryService(transactionRepo repositories.TransactionRepositoryInterface) TransactionSummaryServiceInterface {
	return &transactionSummaryService{
		transactionRepo: transactionRepo,
	}
}

// GetSummary groups the account's whole history by status and by type and sums completed volume.
// The three reads run concurrently; the first failure cancels the rest.
func (s *transactionSummaryService) GetSummary(ctx context.Context, accountID uuid.UUID) (*models.TransactionSummary, error) {
	scope := models.TransactionFilter{AccountID: accountID}

	completed := models.TransactionStatusCompleted
	completedScope := scope
	completedScope.Status = &completed

	var (
		statusGroups []models.GroupCount
		typeGroups   []models.GroupCount
		summary      = models.NewTransactionSummary()
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		groups, err := s.transactionRepo.CountGroupedBy(gctx, scope, repositories.GroupByStatus)
		if err != nil {
			return fmt.Errorf("status counts: %w", err)
		}
		statusGroups = groups
		return nil
	})

	g.Go(func() error {
		groups, err := s.transactionRepo.CountGroupedBy(gctx, scope, repositories.GroupByType)
		if err != nil {
			return fmt.Errorf("type counts: %w", err)
		}
		typeGroups = groups
		return nil
	})

	g.Go(func() error {
		volume, err := s.transactionRepo.SumAmount(gctx, completedScope)
		if err != nil {
			return fmt.Errorf("completed volume: %w", err)
		}
		summary.Volume = volume
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to build transaction summary: %w", err)
	}

	summary.ApplyStatusCounts(statusGroups)
	summary.ApplyTypeCounts(typeGroups)

	return summary, nil
}
