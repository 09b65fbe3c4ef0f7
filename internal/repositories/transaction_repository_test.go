package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/rajshah0904/Liquicity-sub002/internal/database"
	"github.com/rajshah0904/Liquicity-sub002/internal/models"
)

type TransactionRepositoryTestSuite struct {
	suite.Suite
	db      *database.DB
	repo    TransactionRepositoryInterface
	ctx     context.Context
	account *models.Account
	usBank  *models.LinkedAccount
	mxBank  *models.LinkedAccount
	base    time.Time
}

func TestTransactionRepositorySuite(t *testing.T) {
	suite.Run(t, new(TransactionRepositoryTestSuite))
}

func (s *TransactionRepositoryTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewTransactionRepository(s.db.DB)
	s.ctx = context.Background()
	s.account = database.CreateTestAccount(s.T(), s.db, models.KYCStatusApproved)
	s.usBank = database.CreateTestLinkedAccount(s.T(), s.db, s.account.ID, "US", "Chase Checking")
	s.mxBank = database.CreateTestLinkedAccount(s.T(), s.db, s.account.ID, "MX", "Maria Lopez")
	s.base = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
}

func (s *TransactionRepositoryTestSuite) filter() models.TransactionFilter {
	return models.TransactionFilter{
		AccountID: s.account.ID,
		Sort:      models.SortNewest,
		Page:      1,
		PageSize:  10,
	}
}

func strPtr(v string) *string { return &v }

func (s *TransactionRepositoryTestSuite) TestFindPage_ScopedToAccount() {
	other := database.CreateTestAccount(s.T(), s.db, models.KYCStatusApproved)
	database.CreateTestTransaction(s.T(), s.db, s.account.ID)
	database.CreateTestTransaction(s.T(), s.db, other.ID)

	page, err := s.repo.FindPage(s.ctx, s.filter(), 0, 10)

	s.Require().NoError(err)
	s.Require().Len(page, 1)
	s.Equal(s.account.ID, page[0].AccountID)
}

func (s *TransactionRepositoryTestSuite) TestFindPage_PreloadsLinkedAccounts() {
	database.CreateTestTransaction(s.T(), s.db, s.account.ID,
		database.WithType(models.TransactionTypeInternational),
		database.WithLinkedAccounts(s.usBank, s.mxBank),
	)

	page, err := s.repo.FindPage(s.ctx, s.filter(), 0, 10)

	s.Require().NoError(err)
	s.Require().Len(page, 1)
	s.Require().NotNil(page[0].SourceAccount)
	s.Require().NotNil(page[0].DestinationAccount)
	s.Equal("US", page[0].SourceCountry())
	s.Equal("MX", page[0].DestinationCountry())
	s.Equal("Maria Lopez", page[0].RecipientDisplayName())
}

func (s *TransactionRepositoryTestSuite) TestFindPage_SortOrders() {
	oldest := database.CreateTestTransaction(s.T(), s.db, s.account.ID,
		database.WithAmount("300"), database.WithCreatedAt(s.base))
	middle := database.CreateTestTransaction(s.T(), s.db, s.account.ID,
		database.WithAmount("100"), database.WithCreatedAt(s.base.Add(time.Hour)))
	newest := database.CreateTestTransaction(s.T(), s.db, s.account.ID,
		database.WithAmount("200"), database.WithCreatedAt(s.base.Add(2*time.Hour)))

	testCases := []struct {
		sort models.TransactionSortOrder
		want []uuid.UUID
	}{
		{models.SortNewest, []uuid.UUID{newest.ID, middle.ID, oldest.ID}},
		{models.SortOldest, []uuid.UUID{oldest.ID, middle.ID, newest.ID}},
		{models.SortAmountHigh, []uuid.UUID{oldest.ID, newest.ID, middle.ID}},
		{models.SortAmountLow, []uuid.UUID{middle.ID, newest.ID, oldest.ID}},
	}

	for _, tc := range testCases {
		s.Run(string(tc.sort), func() {
			filter := s.filter()
			filter.Sort = tc.sort

			page, err := s.repo.FindPage(s.ctx, filter, 0, 10)
			s.Require().NoError(err)

			got := make([]uuid.UUID, 0, len(page))
			for _, txn := range page {
				got = append(got, txn.ID)
			}
			s.Equal(tc.want, got)
		})
	}
}

func (s *TransactionRepositoryTestSuite) TestFindPage_OffsetAndLimit() {
	for i := 0; i < 5; i++ {
		database.CreateTestTransaction(s.T(), s.db, s.account.ID,
			database.WithCreatedAt(s.base.Add(time.Duration(i)*time.Hour)))
	}

	first, err := s.repo.FindPage(s.ctx, s.filter(), 0, 2)
	s.Require().NoError(err)
	second, err := s.repo.FindPage(s.ctx, s.filter(), 2, 2)
	s.Require().NoError(err)
	last, err := s.repo.FindPage(s.ctx, s.filter(), 4, 2)
	s.Require().NoError(err)
	beyond, err := s.repo.FindPage(s.ctx, s.filter(), 10, 2)
	s.Require().NoError(err)

	s.Len(first, 2)
	s.Len(second, 2)
	s.Len(last, 1)
	s.Empty(beyond)
	s.True(first[1].CreatedAt.After(second[0].CreatedAt))
}

func (s *TransactionRepositoryTestSuite) TestCountMatching_StatusAndType() {
	database.CreateTestTransaction(s.T(), s.db, s.account.ID,
		database.WithStatus(models.TransactionStatusCompleted), database.WithType(models.TransactionTypeDomestic))
	database.CreateTestTransaction(s.T(), s.db, s.account.ID,
		database.WithStatus(models.TransactionStatusCompleted), database.WithType(models.TransactionTypeInternational))
	database.CreateTestTransaction(s.T(), s.db, s.account.ID,
		database.WithStatus(models.TransactionStatusPending), database.WithType(models.TransactionTypeInternational))

	filter := s.filter()
	total, err := s.repo.CountMatching(s.ctx, filter)
	s.Require().NoError(err)
	s.Equal(int64(3), total)

	filter.Status = strPtr(models.TransactionStatusCompleted)
	total, err = s.repo.CountMatching(s.ctx, filter)
	s.Require().NoError(err)
	s.Equal(int64(2), total)

	filter.Type = strPtr(models.TransactionTypeInternational)
	total, err = s.repo.CountMatching(s.ctx, filter)
	s.Require().NoError(err)
	s.Equal(int64(1), total)
}

func (s *TransactionRepositoryTestSuite) TestCountMatching_DateRange() {
	database.CreateTestTransaction(s.T(), s.db, s.account.ID, database.WithCreatedAt(s.base.AddDate(0, 0, -10)))
	database.CreateTestTransaction(s.T(), s.db, s.account.ID, database.WithCreatedAt(s.base))
	database.CreateTestTransaction(s.T(), s.db, s.account.ID, database.WithCreatedAt(s.base.AddDate(0, 0, 10)))

	from := s.base.AddDate(0, 0, -1)
	to := s.base.AddDate(0, 0, 1)

	filter := s.filter()
	filter.DateFrom = &from
	total, err := s.repo.CountMatching(s.ctx, filter)
	s.Require().NoError(err)
	s.Equal(int64(2), total)

	filter.DateTo = &to
	total, err = s.repo.CountMatching(s.ctx, filter)
	s.Require().NoError(err)
	s.Equal(int64(1), total)
}

func (s *TransactionRepositoryTestSuite) TestCountMatching_SearchIsCaseInsensitiveSubstring() {
	database.CreateTestTransaction(s.T(), s.db, s.account.ID, database.WithRecipient("Maria Lopez"))
	database.CreateTestTransaction(s.T(), s.db, s.account.ID, database.WithRecipient("John Smith"), database.WithNotes("Rent for MARIA's flat"))
	database.CreateTestTransaction(s.T(), s.db, s.account.ID, database.WithRecipient("Akira Tanaka"), database.WithNotes("tuition"))

	filter := s.filter()
	filter.Search = strPtr("maria")

	total, err := s.repo.CountMatching(s.ctx, filter)
	s.Require().NoError(err)
	s.Equal(int64(2), total)
}

func (s *TransactionRepositoryTestSuite) TestCountMatching_SearchByID() {
	target := database.CreateTestTransaction(s.T(), s.db, s.account.ID, database.WithRecipient("Alpha"))
	database.CreateTestTransaction(s.T(), s.db, s.account.ID, database.WithRecipient("Beta"))

	filter := s.filter()
	filter.Search = strPtr(target.ID.String()[:8])

	page, err := s.repo.FindPage(s.ctx, filter, 0, 10)
	s.Require().NoError(err)
	s.Require().Len(page, 1)
	s.Equal(target.ID, page[0].ID)
}

func (s *TransactionRepositoryTestSuite) TestCountMatching_SearchEscapesWildcards() {
	database.CreateTestTransaction(s.T(), s.db, s.account.ID, database.WithRecipient("Acme 100% Ltd"))
	database.CreateTestTransaction(s.T(), s.db, s.account.ID, database.WithRecipient("Acme 1000 Ltd"))

	filter := s.filter()
	filter.Search = strPtr("100%")

	total, err := s.repo.CountMatching(s.ctx, filter)
	s.Require().NoError(err)
	s.Equal(int64(1), total)
}

func (s *TransactionRepositoryTestSuite) TestCountGroupedBy() {
	database.CreateTestTransaction(s.T(), s.db, s.account.ID,
		database.WithStatus(models.TransactionStatusCompleted), database.WithType(models.TransactionTypeDomestic))
	database.CreateTestTransaction(s.T(), s.db, s.account.ID,
		database.WithStatus(models.TransactionStatusCompleted), database.WithType(models.TransactionTypeInternational))
	database.CreateTestTransaction(s.T(), s.db, s.account.ID,
		database.WithStatus(models.TransactionStatusFailed), database.WithType(models.TransactionTypeInternational))

	byStatus, err := s.repo.CountGroupedBy(s.ctx, s.filter(), GroupByStatus)
	s.Require().NoError(err)
	s.ElementsMatch([]models.GroupCount{
		{Key: models.TransactionStatusCompleted, Count: 2},
		{Key: models.TransactionStatusFailed, Count: 1},
	}, byStatus)

	byType, err := s.repo.CountGroupedBy(s.ctx, s.filter(), GroupByType)
	s.Require().NoError(err)
	s.ElementsMatch([]models.GroupCount{
		{Key: models.TransactionTypeDomestic, Count: 1},
		{Key: models.TransactionTypeInternational, Count: 2},
	}, byType)
}

func (s *TransactionRepositoryTestSuite) TestCountGroupedBy_RejectsUnknownField() {
	_, err := s.repo.CountGroupedBy(s.ctx, s.filter(), "amount; DROP TABLE transactions")
	s.ErrorIs(err, ErrUnsupportedGroupField)
}

func (s *TransactionRepositoryTestSuite) TestSumAmount() {
	database.CreateTestTransaction(s.T(), s.db, s.account.ID,
		database.WithStatus(models.TransactionStatusCompleted), database.WithAmount("100.50"))
	database.CreateTestTransaction(s.T(), s.db, s.account.ID,
		database.WithStatus(models.TransactionStatusCompleted), database.WithAmount("49.50"))
	database.CreateTestTransaction(s.T(), s.db, s.account.ID,
		database.WithStatus(models.TransactionStatusPending), database.WithAmount("1000"))

	filter := s.filter()
	filter.Status = strPtr(models.TransactionStatusCompleted)

	total, err := s.repo.SumAmount(s.ctx, filter)
	s.Require().NoError(err)
	s.True(decimal.NewFromInt(150).Equal(total), "got %s", total)
}

func (s *TransactionRepositoryTestSuite) TestSumAmount_NoRowsIsZero() {
	total, err := s.repo.SumAmount(s.ctx, s.filter())
	s.Require().NoError(err)
	s.True(total.IsZero())
}

func (s *TransactionRepositoryTestSuite) TestCreateBatch() {
	batch := []models.Transaction{
		{AccountID: s.account.ID, Amount: decimal.NewFromInt(10), Currency: "USD", Status: models.TransactionStatusCompleted, TransactionType: models.TransactionTypeDomestic},
		{AccountID: s.account.ID, Amount: decimal.NewFromInt(20), Currency: "EUR", Status: models.TransactionStatusPending, TransactionType: models.TransactionTypeInternational},
	}

	s.Require().NoError(s.repo.CreateBatch(s.ctx, batch))
	s.NoError(s.repo.CreateBatch(s.ctx, nil))

	total, err := s.repo.CountMatching(s.ctx, s.filter())
	s.Require().NoError(err)
	s.Equal(int64(2), total)
}

func (s *TransactionRepositoryTestSuite) TestCreateBatch_InvalidRecordRollsBack() {
	batch := []models.Transaction{
		{AccountID: s.account.ID, Amount: decimal.NewFromInt(10), Currency: "USD", Status: models.TransactionStatusCompleted, TransactionType: models.TransactionTypeDomestic},
		{AccountID: s.account.ID, Amount: decimal.NewFromInt(20), Currency: "USD", Status: "bogus", TransactionType: models.TransactionTypeDomestic},
	}

	s.Error(s.repo.CreateBatch(s.ctx, batch))

	total, err := s.repo.CountMatching(s.ctx, s.filter())
	s.Require().NoError(err)
	s.Zero(total)
}
