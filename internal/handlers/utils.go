package handlers

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ErrUnauthorized is returned when the account context is missing or invalid
var ErrUnauthorized = fmt.Errorf("unauthorized")

// getAccountIDFromContext returns the account resolved by the auth middleware
func getAccountIDFromContext(c echo.Context) (uuid.UUID, error) {
	accountID, ok := c.Get(AccountIDContextKey).(uuid.UUID)
	if !ok || accountID == uuid.Nil {
		return uuid.Nil, ErrUnauthorized
	}
	return accountID, nil
}

func getIntParam(c echo.Context, name string, defaultValue int) int {
	value, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return defaultValue
	}
	return value
}
