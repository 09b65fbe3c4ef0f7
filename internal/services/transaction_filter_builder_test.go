package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/rajshah0904/Liquicity-sub002/internal/dto"
	"github.com/rajshah0904/Liquicity-sub002/internal/models"
)

type TransactionFilterBuilderTestSuite struct {
	suite.Suite
	accountID uuid.UUID
}

func TestTransactionFilterBuilderSuite(t *testing.T) {
	suite.Run(t, new(TransactionFilterBuilderTestSuite))
}

func (s *TransactionFilterBuilderTestSuite) SetupTest() {
	s.accountID = uuid.New()
}

func (s *TransactionFilterBuilderTestSuite) TestDefaults() {
	filter := BuildTransactionFilter(s.accountID, dto.TransactionQueryParams{})

	s.Equal(s.accountID, filter.AccountID)
	s.Nil(filter.Status)
	s.Nil(filter.Type)
	s.Nil(filter.DateFrom)
	s.Nil(filter.DateTo)
	s.Nil(filter.Search)
	s.Equal(models.SortNewest, filter.Sort)
	s.Equal(1, filter.Page)
	s.Equal(10, filter.PageSize)
}

func (s *TransactionFilterBuilderTestSuite) TestAllMeansUnconstrained() {
	filter := BuildTransactionFilter(s.accountID, dto.TransactionQueryParams{
		Status: "all",
		Type:   "ALL",
	})

	s.Nil(filter.Status)
	s.Nil(filter.Type)
}

func (s *TransactionFilterBuilderTestSuite) TestStatusAndType() {
	filter := BuildTransactionFilter(s.accountID, dto.TransactionQueryParams{
		Status: "completed",
		Type:   "international",
	})

	s.Require().NotNil(filter.Status)
	s.Require().NotNil(filter.Type)
	s.Equal("completed", *filter.Status)
	s.Equal("international", *filter.Type)
}

func (s *TransactionFilterBuilderTestSuite) TestPagination() {
	testCases := []struct {
		name         string
		page         string
		pageSize     string
		wantPage     int
		wantPageSize int
	}{
		{"explicit", "3", "25", 3, 25},
		{"malformed falls back", "abc", "x1", 1, 10},
		{"zero kept", "0", "0", 0, 0},
		{"negative kept", "-2", "-5", -2, -5},
		{"whitespace trimmed", " 2 ", " 5", 2, 5},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			filter := BuildTransactionFilter(s.accountID, dto.TransactionQueryParams{
				Page:     tc.page,
				PageSize: tc.pageSize,
			})
			s.Equal(tc.wantPage, filter.Page)
			s.Equal(tc.wantPageSize, filter.PageSize)
		})
	}
}

func (s *TransactionFilterBuilderTestSuite) TestSortOrder() {
	testCases := map[string]models.TransactionSortOrder{
		"":            models.SortNewest,
		"newest":      models.SortNewest,
		"oldest":      models.SortOldest,
		"amount-high": models.SortAmountHigh,
		"amount-low":  models.SortAmountLow,
		"sideways":    models.SortNewest,
	}

	for raw, want := range testCases {
		filter := BuildTransactionFilter(s.accountID, dto.TransactionQueryParams{SortOrder: raw})
		s.Equal(want, filter.Sort, "sortOrder=%q", raw)
	}
}

func (s *TransactionFilterBuilderTestSuite) TestDateOnlyBounds() {
	filter := BuildTransactionFilter(s.accountID, dto.TransactionQueryParams{
		DateFrom: "2024-01-01",
		DateTo:   "2024-03-31",
	})

	s.Require().NotNil(filter.DateFrom)
	s.Require().NotNil(filter.DateTo)
	s.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *filter.DateFrom)
	s.Equal(time.Date(2024, 3, 31, 23, 59, 59, 999999999, time.UTC), *filter.DateTo)
}

func (s *TransactionFilterBuilderTestSuite) TestRFC3339Bounds() {
	filter := BuildTransactionFilter(s.accountID, dto.TransactionQueryParams{
		DateFrom: "2024-01-01T10:00:00+02:00",
		DateTo:   "2024-01-02T12:30:00Z",
	})

	s.Require().NotNil(filter.DateFrom)
	s.Require().NotNil(filter.DateTo)
	s.Equal(time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC), *filter.DateFrom)
	s.Equal(time.Date(2024, 1, 2, 12, 30, 0, 0, time.UTC), *filter.DateTo)
}

func (s *TransactionFilterBuilderTestSuite) TestUnparseableDatesIgnored() {
	filter := BuildTransactionFilter(s.accountID, dto.TransactionQueryParams{
		DateFrom: "last tuesday",
		DateTo:   "2024-13-45",
	})

	s.Nil(filter.DateFrom)
	s.Nil(filter.DateTo)
}

func (s *TransactionFilterBuilderTestSuite) TestSearch() {
	filter := BuildTransactionFilter(s.accountID, dto.TransactionQueryParams{Search: "  Maria  "})
	s.Require().NotNil(filter.Search)
	s.Equal("Maria", *filter.Search)

	filter = BuildTransactionFilter(s.accountID, dto.TransactionQueryParams{Search: "   "})
	s.Nil(filter.Search)
}
