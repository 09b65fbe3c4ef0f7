package services

import (
	"sort"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rajshah0904/Liquicity-sub002/internal/models"
)

type transactionGenerator struct {
	faker *gofakeit.Faker
}

const (
	businessHoursStart = 6
	businessHoursEnd   = 23
)

var (
	paymentMethods = []string{"bank_transfer", "wire", "card", "ach", "sepa", "swift"}

	transferNotes = []string{
		"Invoice settlement",
		"Monthly rent",
		"Family support",
		"Supplier payment",
		"Tuition fees",
		"Consulting retainer",
		"Payroll top-up",
		"",
	}

	currencyByCountry = map[string]string{
		"US": "USD",
		"GB": "GBP",
		"DE": "EUR",
		"FR": "EUR",
		"ES": "EUR",
		"MX": "MXN",
		"IN": "INR",
		"BR": "BRL",
		"CA": "CAD",
		"JP": "JPY",
	}
)

// NewTransactionGenerator creates a generator with a random seed
func NewTransactionGenerator() TransactionGeneratorInterface {
	return &transactionGenerator{faker: gofakeit.New(0)}
}

// NewSeededTransactionGenerator creates a deterministic generator
func NewSeededTransactionGenerator(seed uint64) TransactionGeneratorInterface {
	return &transactionGenerator{faker: gofakeit.New(seed)}
}

// GenerateAmount returns a two-decimal amount; international transfers skew larger
func (g *transactionGenerator) GenerateAmount(transactionType string) decimal.Decimal {
	minValue, maxValue := 10.00, 2500.00
	if transactionType == models.TransactionTypeInternational {
		minValue, maxValue = 50.00, 15000.00
	}
	return decimal.NewFromFloat(g.faker.Float64Range(minValue, maxValue)).Round(2)
}

// GenerateStatus returns a status weighted 80% completed, 15% pending, 5% failed
func (g *transactionGenerator) GenerateStatus() string {
	roll := g.faker.Float64Range(0, 1)
	switch {
	case roll < 0.80:
		return models.TransactionStatusCompleted
	case roll < 0.95:
		return models.TransactionStatusPending
	default:
		return models.TransactionStatusFailed
	}
}

// GenerateTimestamp returns a UTC instant on a day within [start, end), during business hours
func (g *transactionGenerator) GenerateTimestamp(start, end time.Time) time.Time {
	if !end.After(start) {
		return start.UTC()
	}

	day := g.faker.DateRange(start, end).UTC()
	timestamp := time.Date(
		day.Year(), day.Month(), day.Day(),
		g.faker.IntRange(businessHoursStart, businessHoursEnd-1),
		g.faker.IntRange(0, 59),
		g.faker.IntRange(0, 59),
		0,
		time.UTC,
	)

	if timestamp.Before(start) {
		return start.UTC()
	}
	if !timestamp.Before(end) {
		return end.Add(-time.Second).UTC()
	}
	return timestamp
}

// Generate builds count transactions between the account's linked accounts, oldest first
func (g *transactionGenerator) Generate(
	accountID uuid.UUID,
	linked []models.LinkedAccount,
	start, end time.Time,
	count int,
) []models.Transaction {
	if count <= 0 {
		return []models.Transaction{}
	}

	transactions := make([]models.Transaction, 0, count)
	for i := 0; i < count; i++ {
		transactions = append(transactions, g.generateOne(accountID, linked, start, end))
	}

	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].CreatedAt.Before(transactions[j].CreatedAt)
	})

	return transactions
}

func (g *transactionGenerator) generateOne(accountID uuid.UUID, linked []models.LinkedAccount, start, end time.Time) models.Transaction {
	txnType := models.TransactionTypeDomestic
	if g.faker.Float64Range(0, 1) < 0.4 {
		txnType = models.TransactionTypeInternational
	}

	source, destination := g.pickEndpoints(linked, txnType)
	if source != nil && destination != nil && source.CountryCode != destination.CountryCode {
		txnType = models.TransactionTypeInternational
	} else if source != nil && destination != nil {
		txnType = models.TransactionTypeDomestic
	}

	timestamp := g.GenerateTimestamp(start, end)

	txn := models.Transaction{
		ID:              uuid.New(),
		AccountID:       accountID,
		Amount:          g.GenerateAmount(txnType),
		Currency:        "USD",
		Status:          g.GenerateStatus(),
		TransactionType: txnType,
		PaymentMethod:   g.faker.RandomString(paymentMethods),
		RecipientName:   g.faker.Name(),
		Notes:           g.faker.RandomString(transferNotes),
		CreatedAt:       timestamp,
		UpdatedAt:       timestamp,
	}

	if source != nil {
		sourceID := source.ID
		txn.SourceAccountID = &sourceID
		if currency, ok := currencyByCountry[source.CountryCode]; ok {
			txn.Currency = currency
		}
	}
	if destination != nil {
		destinationID := destination.ID
		txn.DestinationAccountID = &destinationID
		if destination.DisplayName != "" {
			txn.RecipientName = destination.DisplayName
		}
	}

	return txn
}

// pickEndpoints chooses source and destination linked accounts matching the wanted type when possible
func (g *transactionGenerator) pickEndpoints(linked []models.LinkedAccount, txnType string) (*models.LinkedAccount, *models.LinkedAccount) {
	if len(linked) == 0 {
		return nil, nil
	}

	source := &linked[g.faker.IntRange(0, len(linked)-1)]

	candidates := make([]*models.LinkedAccount, 0, len(linked))
	for i := range linked {
		if linked[i].ID == source.ID {
			continue
		}
		sameCountry := linked[i].CountryCode == source.CountryCode
		if sameCountry == (txnType == models.TransactionTypeDomestic) {
			candidates = append(candidates, &linked[i])
		}
	}

	if len(candidates) == 0 {
		return source, nil
	}
	return source, candidates[g.faker.IntRange(0, len(candidates)-1)]
}
