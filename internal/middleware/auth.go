package middleware

import (
	stderrors "errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/rajshah0904/Liquicity-sub002/internal/errors"
	"github.com/rajshah0904/Liquicity-sub002/internal/handlers"
	"github.com/rajshah0904/Liquicity-sub002/internal/repositories"
	"github.com/rajshah0904/Liquicity-sub002/internal/services"
)

// RequireAuth verifies the bearer token and resolves it to a stored account.
// Downstream handlers read the account id from handlers.AccountIDContextKey.
func RequireAuth(tokenService services.TokenServiceInterface, accountRepo repositories.AccountRepositoryInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			token, err := tokenService.ExtractTokenFromHeader(authHeader)
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			claims, err := tokenService.ValidateAccessToken(token)
			if err != nil {
				if stderrors.Is(err, services.ErrExpiredToken) {
					return handlers.SendError(c, errors.AuthExpiredToken)
				}
				return handlers.SendError(c, errors.AuthInvalidToken)
			}

			accountID, err := uuid.Parse(claims.AccountID)
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidToken)
			}

			account, err := accountRepo.GetByID(c.Request().Context(), accountID)
			if err != nil {
				if stderrors.Is(err, repositories.ErrAccountNotFound) {
					return handlers.SendError(c, errors.AuthUnknownAccount)
				}
				return handlers.SendSystemError(c, err)
			}

			c.Set(handlers.AccountIDContextKey, account.ID)
			c.Set("account_email", account.Email)
			c.Set("token_jti", claims.ID)

			return next(c)
		}
	}
}
