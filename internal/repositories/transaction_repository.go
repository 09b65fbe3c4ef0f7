package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/rajshah0904/Liquicity-sub002/internal/models"
)

var ErrUnsupportedGroupField = errors.New("unsupported group by field")

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// matching scopes a query to the filter's predicate. Sort and paging are not applied here.
func matching(filter models.TransactionFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Where("account_id = ?", filter.AccountID)

		if filter.Status != nil {
			db = db.Where("status = ?", *filter.Status)
		}
		if filter.Type != nil {
			db = db.Where("transaction_type = ?", *filter.Type)
		}
		if filter.DateFrom != nil {
			db = db.Where("created_at >= ?", *filter.DateFrom)
		}
		if filter.DateTo != nil {
			db = db.Where("created_at <= ?", *filter.DateTo)
		}
		if filter.Search != nil {
			pattern := "%" + likeEscaper.Replace(strings.ToLower(*filter.Search)) + "%"
			db = db.Where(
				`(LOWER(recipient_name) LIKE ? ESCAPE '\' OR LOWER(CAST(id AS TEXT)) LIKE ? ESCAPE '\' OR LOWER(notes) LIKE ? ESCAPE '\')`,
				pattern, pattern, pattern,
			)
		}

		return db
	}
}

// CreateBatch creates multiple transactions in a single database transaction
func (r *transactionRepository) CreateBatch(ctx context.Context, transactions []models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.CreateInBatches(&transactions, 100).Error; err != nil {
			return fmt.Errorf("failed to create batch transactions: %w", err)
		}
		return nil
	})
}

// FindPage returns one sorted page of matching transactions with their linked accounts loaded
func (r *transactionRepository) FindPage(ctx context.Context, filter models.TransactionFilter, offset, limit int) ([]models.Transaction, error) {
	var transactions []models.Transaction

	if err := r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Scopes(matching(filter)).
		Preload("SourceAccount").
		Preload("DestinationAccount").
		Order(filter.Sort.OrderClause()).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transaction page: %w", err)
	}

	return transactions, nil
}

// CountMatching counts every transaction matching the filter, ignoring paging
func (r *transactionRepository) CountMatching(ctx context.Context, filter models.TransactionFilter) (int64, error) {
	var total int64

	if err := r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Scopes(matching(filter)).
		Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	return total, nil
}

// CountGroupedBy counts matching transactions per distinct value of field
func (r *transactionRepository) CountGroupedBy(ctx context.Context, filter models.TransactionFilter, field string) ([]models.GroupCount, error) {
	if field != GroupByStatus && field != GroupByType {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedGroupField, field)
	}

	var groups []models.GroupCount

	// field is whitelisted above
	if err := r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Scopes(matching(filter)).
		Select(fmt.Sprintf("%s AS group_key, COUNT(*) AS group_count", field)).
		Group(field).
		Scan(&groups).Error; err != nil {
		return nil, fmt.Errorf("failed to group transactions by %s: %w", field, err)
	}

	return groups, nil
}

// SumAmount totals the amount of matching transactions; no rows yields zero
func (r *transactionRepository) SumAmount(ctx context.Context, filter models.TransactionFilter) (decimal.Decimal, error) {
	var total decimal.NullDecimal

	if err := r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Scopes(matching(filter)).
		Select("COALESCE(SUM(amount), 0)").
		Row().
		Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum transaction amounts: %w", err)
	}

	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}
