package database

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rajshah0904/Liquicity-sub002/internal/config"
	"github.com/rajshah0904/Liquicity-sub002/internal/models"
)

// SetupTestDB opens a private in-memory sqlite database with the schema migrated
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	}

	// A named shared-cache memory DB keeps every pooled connection on the same data
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(uuid.NewString(), "-", ""))
	db, err := gorm.Open(sqlite.Open(dsn), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		_ = testDB.Close()
	})

	return testDB
}

// CreateTestAccount inserts an account with a random email and the given KYC status
func CreateTestAccount(t *testing.T, db *DB, kycStatus string) *models.Account {
	t.Helper()

	account := &models.Account{
		Email:       gofakeit.Email(),
		FullName:    gofakeit.Name(),
		CountryCode: gofakeit.CountryAbr(),
		KYCStatus:   kycStatus,
	}

	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}

	return account
}

// CreateTestLinkedAccount inserts a linked bank account in the given country
func CreateTestLinkedAccount(t *testing.T, db *DB, accountID uuid.UUID, countryCode, displayName string) *models.LinkedAccount {
	t.Helper()

	linked := &models.LinkedAccount{
		AccountID:   accountID,
		CountryCode: countryCode,
		DisplayName: displayName,
		BankName:    gofakeit.Company(),
	}

	if err := db.Create(linked).Error; err != nil {
		t.Fatalf("failed to create test linked account: %v", err)
	}

	return linked
}

// TestTransactionOption customises a fixture transaction before insert
type TestTransactionOption func(*models.Transaction)

func WithStatus(status string) TestTransactionOption {
	return func(txn *models.Transaction) { txn.Status = status }
}

func WithType(transactionType string) TestTransactionOption {
	return func(txn *models.Transaction) { txn.TransactionType = transactionType }
}

func WithAmount(amount string) TestTransactionOption {
	return func(txn *models.Transaction) { txn.Amount = decimal.RequireFromString(amount) }
}

func WithCreatedAt(createdAt time.Time) TestTransactionOption {
	return func(txn *models.Transaction) { txn.CreatedAt = createdAt.UTC() }
}

func WithRecipient(name string) TestTransactionOption {
	return func(txn *models.Transaction) { txn.RecipientName = name }
}

func WithNotes(notes string) TestTransactionOption {
	return func(txn *models.Transaction) { txn.Notes = notes }
}

func WithLinkedAccounts(source, destination *models.LinkedAccount) TestTransactionOption {
	return func(txn *models.Transaction) {
		if source != nil {
			txn.SourceAccountID = &source.ID
		}
		if destination != nil {
			txn.DestinationAccountID = &destination.ID
		}
	}
}

// CreateTestTransaction inserts a completed domestic transaction unless options say otherwise
func CreateTestTransaction(t *testing.T, db *DB, accountID uuid.UUID, opts ...TestTransactionOption) *models.Transaction {
	t.Helper()

	txn := &models.Transaction{
		AccountID:       accountID,
		Amount:          decimal.NewFromFloat(gofakeit.Price(1, 5000)).Round(2),
		Currency:        gofakeit.CurrencyShort(),
		Status:          models.TransactionStatusCompleted,
		TransactionType: models.TransactionTypeDomestic,
		PaymentMethod:   gofakeit.RandomString([]string{"bank_transfer", "card", "stablecoin"}),
		RecipientName:   gofakeit.Name(),
	}

	for _, opt := range opts {
		opt(txn)
	}

	if err := db.Create(txn).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}

	return txn
}

// CleanupTestDB empties every table, children first
func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"kyc_submissions",
		"transactions",
		"linked_accounts",
		"accounts",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
