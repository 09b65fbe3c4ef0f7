package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/rajshah0904/Liquicity-sub002/internal/config"
	"github.com/rajshah0904/Liquicity-sub002/internal/database"
	"github.com/rajshah0904/Liquicity-sub002/internal/models"
	"github.com/rajshah0904/Liquicity-sub002/internal/repositories"
	"github.com/rajshah0904/Liquicity-sub002/internal/services"
)

// linkedAccountSeeds gives every seeded account a domestic pair plus foreign counterparts
var linkedAccountSeeds = []struct {
	country string
	bank    string
}{
	{"US", "First Republic Checking"},
	{"US", "Chase Savings"},
	{"MX", "BBVA México"},
	{"DE", "Deutsche Bank"},
	{"GB", "Barclays"},
	{"IN", "HDFC Bank"},
}

func main() {
	if err := run(); err != nil {
		slog.Error("seed error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	email := flag.String("email", "", "email of the account to seed (random when empty)")
	count := flag.Int("count", 150, "number of transactions to generate")
	days := flag.Int("days", 180, "days of history to spread transactions over")
	seed := flag.Uint64("seed", 0, "generator seed, 0 for random")
	flag.Parse()

	if *count <= 0 || *days <= 0 {
		return errors.New("count and days must be positive")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.IsProduction() {
		return errors.New("refusing to seed a production database")
	}

	db, err := database.Initialize(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()
	accountRepo := repositories.NewAccountRepository(db.DB)
	linkedAccountRepo := repositories.NewLinkedAccountRepository(db.DB)
	transactionRepo := repositories.NewTransactionRepository(db.DB)

	account, err := findOrCreateAccount(ctx, accountRepo, *email)
	if err != nil {
		return err
	}

	linked, err := ensureLinkedAccounts(ctx, linkedAccountRepo, account)
	if err != nil {
		return err
	}

	generator := services.NewTransactionGenerator()
	if *seed != 0 {
		generator = services.NewSeededTransactionGenerator(*seed)
	}

	end := time.Now().UTC()
	start := end.AddDate(0, 0, -*days)
	transactions := generator.Generate(account.ID, linked, start, end, *count)

	if err := transactionRepo.CreateBatch(ctx, transactions); err != nil {
		return fmt.Errorf("failed to insert transactions: %w", err)
	}

	slog.Info("seeded account",
		"account_id", account.ID,
		"email", account.Email,
		"linked_accounts", len(linked),
		"transactions", len(transactions),
	)

	token, expiresAt, err := services.NewTokenService(&cfg.JWT).GenerateAccessToken(account)
	if err != nil {
		slog.Warn("could not issue a development token", "error", err)
		return nil
	}
	if os.Getenv("JWT_PUBLIC_KEY") == "" {
		slog.Warn("JWT keys were generated for this run only; the API will reject this token unless it shares JWT_PRIVATE_KEY/JWT_PUBLIC_KEY")
	}

	fmt.Printf("account:    %s\n", account.ID)
	fmt.Printf("token:      %s\n", token)
	fmt.Printf("expires at: %s\n", expiresAt.UTC().Format(time.RFC3339))
	return nil
}

func findOrCreateAccount(ctx context.Context, repo repositories.AccountRepositoryInterface, email string) (*models.Account, error) {
	if email != "" {
		account, err := repo.GetByEmail(ctx, email)
		if err == nil {
			return account, nil
		}
		if !errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, err
		}
	} else {
		email = strings.ToLower(gofakeit.Email())
	}

	account := &models.Account{
		Email:       email,
		FullName:    gofakeit.Name(),
		CountryCode: "US",
		KYCStatus:   models.KYCStatusNotStarted,
	}
	if err := repo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	return account, nil
}

func ensureLinkedAccounts(ctx context.Context, repo repositories.LinkedAccountRepositoryInterface, account *models.Account) ([]models.LinkedAccount, error) {
	existing, err := repo.ListByAccountID(ctx, account.ID)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return existing, nil
	}

	linked := make([]models.LinkedAccount, 0, len(linkedAccountSeeds))
	for _, s := range linkedAccountSeeds {
		la := models.LinkedAccount{
			AccountID:   account.ID,
			CountryCode: s.country,
			DisplayName: gofakeit.Name(),
			BankName:    s.bank,
		}
		if err := repo.Create(ctx, &la); err != nil {
			return nil, fmt.Errorf("failed to create linked account: %w", err)
		}
		linked = append(linked, la)
	}
	return linked, nil
}
