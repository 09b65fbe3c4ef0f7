package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"github.com/rajshah0904/Liquicity-sub002/internal/config"
	apierrors "github.com/rajshah0904/Liquicity-sub002/internal/errors"
	"github.com/rajshah0904/Liquicity-sub002/internal/handlers"
	"github.com/rajshah0904/Liquicity-sub002/internal/models"
	"github.com/rajshah0904/Liquicity-sub002/internal/repositories"
	"github.com/rajshah0904/Liquicity-sub002/internal/repositories/repository_mocks"
	"github.com/rajshah0904/Liquicity-sub002/internal/services"
	"github.com/rajshah0904/Liquicity-sub002/internal/services/service_mocks"
)

func TestAuthMiddleware(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareSuite))
}

type AuthMiddlewareSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	jwtConfig       *config.JWTConfig
	tokenService    services.TokenServiceInterface
	mockAccountRepo *repository_mocks.MockAccountRepositoryInterface
	account         *models.Account
	e               *echo.Echo
}

func (s *AuthMiddlewareSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	s.jwtConfig = &config.JWTConfig{
		PrivateKey:          privateKey,
		PublicKey:           publicKey,
		Issuer:              "test-issuer",
		AccessTokenDuration: time.Hour,
	}
	s.tokenService = services.NewTokenService(s.jwtConfig)
	s.mockAccountRepo = repository_mocks.NewMockAccountRepositoryInterface(s.ctrl)
	s.account = &models.Account{
		ID:        uuid.New(),
		Email:     "maria@example.com",
		KYCStatus: models.KYCStatusApproved,
	}
	s.e = echo.New()
}

func (s *AuthMiddlewareSuite) TearDownTest() {
	s.ctrl.Finish()
}

// serve runs the middleware and reports whether the protected handler was reached
func (s *AuthMiddlewareSuite) serve(authHeader string) (*httptest.ResponseRecorder, echo.Context, bool) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set(TraceIDContextKey, "trace-auth")

	reached := false
	handler := RequireAuth(s.tokenService, s.mockAccountRepo)(func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	})

	s.Require().NoError(handler(c))
	return rec, c, reached
}

func (s *AuthMiddlewareSuite) errorCode(rec *httptest.ResponseRecorder) string {
	var body apierrors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Code
}

func (s *AuthMiddlewareSuite) validToken() string {
	token, _, err := s.tokenService.GenerateAccessToken(s.account)
	s.Require().NoError(err)
	return token
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ValidToken() {
	s.mockAccountRepo.EXPECT().
		GetByID(gomock.Any(), s.account.ID).
		Return(s.account, nil)

	rec, c, reached := s.serve("Bearer " + s.validToken())

	s.True(reached)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal(s.account.ID, c.Get(handlers.AccountIDContextKey))
	s.Equal(s.account.Email, c.Get("account_email"))
}

func (s *AuthMiddlewareSuite) TestRequireAuth_MissingHeader() {
	rec, _, reached := s.serve("")

	s.False(reached)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("AUTH_001", s.errorCode(rec))
}

func (s *AuthMiddlewareSuite) TestRequireAuth_InvalidHeaderFormat() {
	for _, header := range []string{"Basic dXNlcjpwYXNz", "Bearer", "Bearer    ", "token-without-scheme"} {
		s.Run(header, func() {
			rec, _, reached := s.serve(header)

			s.False(reached)
			s.Equal(http.StatusUnauthorized, rec.Code)
			s.Equal("AUTH_004", s.errorCode(rec))
		})
	}
}

func (s *AuthMiddlewareSuite) TestRequireAuth_InvalidToken() {
	rec, _, reached := s.serve("Bearer not.a.jwt")

	s.False(reached)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("AUTH_002", s.errorCode(rec))
}

func (s *AuthMiddlewareSuite) TestRequireAuth_TokenFromAnotherIssuerKey() {
	otherKey, otherPublic, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)
	other := services.NewTokenService(&config.JWTConfig{
		PrivateKey:          otherKey,
		PublicKey:           otherPublic,
		Issuer:              "test-issuer",
		AccessTokenDuration: time.Hour,
	})
	token, _, err := other.GenerateAccessToken(s.account)
	s.Require().NoError(err)

	rec, _, reached := s.serve("Bearer " + token)

	s.False(reached)
	s.Equal("AUTH_002", s.errorCode(rec))
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ExpiredToken() {
	past := time.Now().Add(-2 * time.Hour)
	claims := models.CustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.jwtConfig.Issuer,
			Subject:   s.account.ID.String(),
			IssuedAt:  jwt.NewNumericDate(past),
			ExpiresAt: jwt.NewNumericDate(past.Add(time.Hour)),
		},
		AccountID: s.account.ID.String(),
		TokenType: services.TokenTypeAccess,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(s.jwtConfig.PrivateKey)
	s.Require().NoError(err)

	rec, _, reached := s.serve("Bearer " + token)

	s.False(reached)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("AUTH_003", s.errorCode(rec))
}

func (s *AuthMiddlewareSuite) TestRequireAuth_UnknownAccount() {
	s.mockAccountRepo.EXPECT().
		GetByID(gomock.Any(), s.account.ID).
		Return(nil, repositories.ErrAccountNotFound)

	rec, _, reached := s.serve("Bearer " + s.validToken())

	s.False(reached)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("AUTH_005", s.errorCode(rec))
}

func (s *AuthMiddlewareSuite) TestRequireAuth_AccountLookupFails() {
	s.mockAccountRepo.EXPECT().
		GetByID(gomock.Any(), s.account.ID).
		Return(nil, errors.New("connection refused"))

	rec, _, reached := s.serve("Bearer " + s.validToken())

	s.False(reached)
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("SYSTEM_001", s.errorCode(rec))
	s.NotContains(rec.Body.String(), "connection refused")
}

func (s *AuthMiddlewareSuite) TestRequireAuth_UsesTokenService() {
	mockTokenService := service_mocks.NewMockTokenServiceInterface(s.ctrl)
	accountID := uuid.New()

	mockTokenService.EXPECT().ExtractTokenFromHeader("Bearer opaque").Return("opaque", nil)
	mockTokenService.EXPECT().ValidateAccessToken("opaque").Return(&models.CustomClaims{
		AccountID: accountID.String(),
		TokenType: services.TokenTypeAccess,
	}, nil)
	s.mockAccountRepo.EXPECT().
		GetByID(gomock.Any(), accountID).
		Return(&models.Account{ID: accountID, Email: "kenji@example.com"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer opaque")
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	handler := RequireAuth(mockTokenService, s.mockAccountRepo)(func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	s.Require().NoError(handler(c))
	s.Equal(http.StatusNoContent, rec.Code)
	s.Equal(accountID, c.Get(handlers.AccountIDContextKey))
}
