package services

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rajshah0904/Liquicity-sub002/internal/dto"
	"github.com/rajshah0904/Liquicity-sub002/internal/models"
)

// filterAll is the query value meaning "no constraint" for status and type
const filterAll = "all"

const dateOnlyLayout = "2006-01-02"

// BuildTransactionFilter turns raw query parameters into a filter for the account.
// It never fails: malformed numbers fall back to defaults and unparseable dates are dropped.
// Zero or negative page numbers are kept as given.
func BuildTransactionFilter(accountID uuid.UUID, params dto.TransactionQueryParams) models.TransactionFilter {
	filter := models.TransactionFilter{
		AccountID: accountID,
		Status:    constraint(params.Status),
		Type:      constraint(params.Type),
		Sort:      models.ParseSortOrder(strings.TrimSpace(params.SortOrder)),
		Page:      parseIntOrDefault(params.Page, models.DefaultPage),
		PageSize:  parseIntOrDefault(params.PageSize, models.DefaultPageSize),
	}

	if from, ok := parseDateBoundary(params.DateFrom, false); ok {
		filter.DateFrom = &from
	}
	if to, ok := parseDateBoundary(params.DateTo, true); ok {
		filter.DateTo = &to
	}

	if search := strings.TrimSpace(params.Search); search != "" {
		filter.Search = &search
	}

	return filter
}

func constraint(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, filterAll) {
		return nil
	}
	return &value
}

func parseIntOrDefault(value string, defaultValue int) int {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return defaultValue
	}
	return parsed
}

// parseDateBoundary accepts YYYY-MM-DD or RFC 3339. A date-only upper bound
// covers the whole day, so dateTo=2024-03-31 includes transactions made that evening.
func parseDateBoundary(value string, endOfDay bool) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	if day, err := time.ParseInLocation(dateOnlyLayout, value, time.UTC); err == nil {
		if endOfDay {
			return day.Add(24*time.Hour - time.Nanosecond), true
		}
		return day, true
	}

	if instant, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return instant.UTC(), true
	}

	return time.Time{}, false
}
