package repositories

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/rajshah0904/Liquicity-sub002/internal/database"
	"github.com/rajshah0904/Liquicity-sub002/internal/models"
)

type AccountRepositoryTestSuite struct {
	suite.Suite
	db         *database.DB
	repo       AccountRepositoryInterface
	linkedRepo LinkedAccountRepositoryInterface
	ctx        context.Context
}

func TestAccountRepositorySuite(t *testing.T) {
	suite.Run(t, new(AccountRepositoryTestSuite))
}

func (s *AccountRepositoryTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewAccountRepository(s.db.DB)
	s.linkedRepo = NewLinkedAccountRepository(s.db.DB)
	s.ctx = context.Background()
}

func (s *AccountRepositoryTestSuite) TestCreateAndGet() {
	account := &models.Account{
		Email:    gofakeit.Email(),
		FullName: gofakeit.Name(),
	}

	s.Require().NoError(s.repo.Create(s.ctx, account))
	s.NotEqual(uuid.Nil, account.ID)
	s.Equal(models.KYCStatusNotStarted, account.KYCStatus)

	byID, err := s.repo.GetByID(s.ctx, account.ID)
	s.Require().NoError(err)
	s.Equal(account.Email, byID.Email)

	byEmail, err := s.repo.GetByEmail(s.ctx, account.Email)
	s.Require().NoError(err)
	s.Equal(account.ID, byEmail.ID)
}

func (s *AccountRepositoryTestSuite) TestCreate_DuplicateEmail() {
	email := gofakeit.Email()
	s.Require().NoError(s.repo.Create(s.ctx, &models.Account{Email: email}))

	err := s.repo.Create(s.ctx, &models.Account{Email: email})
	s.ErrorIs(err, ErrAccountEmailExists)
}

func (s *AccountRepositoryTestSuite) TestGet_NotFound() {
	_, err := s.repo.GetByID(s.ctx, uuid.New())
	s.ErrorIs(err, ErrAccountNotFound)

	_, err = s.repo.GetByEmail(s.ctx, "nobody@example.com")
	s.ErrorIs(err, ErrAccountNotFound)
}

func (s *AccountRepositoryTestSuite) TestUpdateKYCStatus() {
	account := database.CreateTestAccount(s.T(), s.db, models.KYCStatusNotStarted)

	s.Require().NoError(s.repo.UpdateKYCStatus(s.ctx, account.ID, models.KYCStatusPending))

	reloaded, err := s.repo.GetByID(s.ctx, account.ID)
	s.Require().NoError(err)
	s.Equal(models.KYCStatusPending, reloaded.KYCStatus)
}

func (s *AccountRepositoryTestSuite) TestUpdateKYCStatus_Invalid() {
	account := database.CreateTestAccount(s.T(), s.db, models.KYCStatusNotStarted)

	s.ErrorIs(s.repo.UpdateKYCStatus(s.ctx, account.ID, "maybe"), models.ErrInvalidKYCStatus)
	s.ErrorIs(s.repo.UpdateKYCStatus(s.ctx, uuid.New(), models.KYCStatusApproved), ErrAccountNotFound)
}

func (s *AccountRepositoryTestSuite) TestClaimKYCSubmission() {
	testCases := []struct {
		status      string
		wantClaimed bool
		wantStatus  string
	}{
		{models.KYCStatusNotStarted, true, models.KYCStatusPending},
		{models.KYCStatusRejected, true, models.KYCStatusPending},
		{models.KYCStatusPending, false, models.KYCStatusPending},
		{models.KYCStatusApproved, false, models.KYCStatusApproved},
	}

	for _, tc := range testCases {
		s.Run(tc.status, func() {
			account := database.CreateTestAccount(s.T(), s.db, tc.status)

			claimed, err := s.repo.ClaimKYCSubmission(s.ctx, account.ID)
			s.Require().NoError(err)
			s.Equal(tc.wantClaimed, claimed)

			reloaded, err := s.repo.GetByID(s.ctx, account.ID)
			s.Require().NoError(err)
			s.Equal(tc.wantStatus, reloaded.KYCStatus)
		})
	}
}

func (s *AccountRepositoryTestSuite) TestClaimKYCSubmission_OnlyOnce() {
	account := database.CreateTestAccount(s.T(), s.db, models.KYCStatusNotStarted)

	first, err := s.repo.ClaimKYCSubmission(s.ctx, account.ID)
	s.Require().NoError(err)
	second, err := s.repo.ClaimKYCSubmission(s.ctx, account.ID)
	s.Require().NoError(err)

	s.True(first)
	s.False(second)

	claimed, err := s.repo.ClaimKYCSubmission(s.ctx, uuid.New())
	s.Require().NoError(err)
	s.False(claimed)
}

func (s *AccountRepositoryTestSuite) TestLinkedAccounts() {
	account := database.CreateTestAccount(s.T(), s.db, models.KYCStatusApproved)
	other := database.CreateTestAccount(s.T(), s.db, models.KYCStatusApproved)

	s.Require().NoError(s.linkedRepo.Create(s.ctx, &models.LinkedAccount{AccountID: account.ID, CountryCode: "US", DisplayName: "Chase"}))
	s.Require().NoError(s.linkedRepo.Create(s.ctx, &models.LinkedAccount{AccountID: account.ID, CountryCode: "DE", DisplayName: "Sparkasse"}))
	s.Require().NoError(s.linkedRepo.Create(s.ctx, &models.LinkedAccount{AccountID: other.ID, CountryCode: "GB", DisplayName: "Barclays"}))

	linked, err := s.linkedRepo.ListByAccountID(s.ctx, account.ID)
	s.Require().NoError(err)
	s.Len(linked, 2)
	for _, l := range linked {
		s.Equal(account.ID, l.AccountID)
	}
}
