package services

import (
	"crypto/rsa"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/rajshah0904/Liquicity-sub002/internal/config"
	"github.com/rajshah0904/Liquicity-sub002/internal/models"
)

// TokenServiceTestSuite defines the test suite for TokenService
type TokenServiceTestSuite struct {
	suite.Suite
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	service    TokenServiceInterface
	issuer     string
	account    *models.Account
}

// SetupTest runs before each test
func (s *TokenServiceTestSuite) SetupTest() {
	var err error
	s.privateKey, s.publicKey, err = config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	s.issuer = "test-issuer"
	s.service = NewTokenService(&config.JWTConfig{
		PrivateKey:          s.privateKey,
		PublicKey:           s.publicKey,
		Issuer:              s.issuer,
		AccessTokenDuration: time.Hour,
	})
	s.account = &models.Account{ID: uuid.New(), Email: "owner@example.com"}
}

// TestTokenServiceSuite runs the test suite
func TestTokenServiceSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}

func (s *TokenServiceTestSuite) TestGenerateAndValidate_RoundTrip() {
	token, expiresAt, err := s.service.GenerateAccessToken(s.account)
	s.Require().NoError(err)
	s.NotEmpty(token)
	s.WithinDuration(time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := s.service.ValidateAccessToken(token)
	s.Require().NoError(err)
	s.Equal(s.account.ID.String(), claims.AccountID)
	s.Equal(s.account.Email, claims.Email)
	s.Equal(TokenTypeAccess, claims.TokenType)
}

func (s *TokenServiceTestSuite) TestGenerateAccessToken_NilAccount() {
	_, _, err := s.service.GenerateAccessToken(nil)
	s.Error(err)
}

func (s *TokenServiceTestSuite) TestGenerateAccessToken_VerifyOnlyService() {
	verifyOnly := NewTokenService(&config.JWTConfig{PublicKey: s.publicKey, Issuer: s.issuer})

	_, _, err := verifyOnly.GenerateAccessToken(s.account)
	s.ErrorIs(err, ErrSigningKeyUnavailable)
}

func (s *TokenServiceTestSuite) TestValidateAccessToken_Empty() {
	_, err := s.service.ValidateAccessToken("")
	s.ErrorIs(err, ErrEmptyToken)
}

func (s *TokenServiceTestSuite) TestValidateAccessToken_Garbage() {
	_, err := s.service.ValidateAccessToken("not.a.jwt")
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *TokenServiceTestSuite) TestValidateAccessToken_Expired() {
	expired := NewTokenService(&config.JWTConfig{
		PrivateKey:          s.privateKey,
		PublicKey:           s.publicKey,
		Issuer:              s.issuer,
		AccessTokenDuration: -time.Minute,
	})
	token, _, err := expired.GenerateAccessToken(s.account)
	s.Require().NoError(err)

	_, err = s.service.ValidateAccessToken(token)
	s.ErrorIs(err, ErrExpiredToken)
}

func (s *TokenServiceTestSuite) TestValidateAccessToken_WrongIssuer() {
	other := NewTokenService(&config.JWTConfig{
		PrivateKey:          s.privateKey,
		PublicKey:           s.publicKey,
		Issuer:              "someone-else",
		AccessTokenDuration: time.Hour,
	})
	token, _, err := other.GenerateAccessToken(s.account)
	s.Require().NoError(err)

	_, err = s.service.ValidateAccessToken(token)
	s.ErrorIs(err, ErrInvalidIssuer)
}

func (s *TokenServiceTestSuite) TestValidateAccessToken_WrongKey() {
	otherKey, _, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)
	forger := NewTokenService(&config.JWTConfig{
		PrivateKey:          otherKey,
		PublicKey:           &otherKey.PublicKey,
		Issuer:              s.issuer,
		AccessTokenDuration: time.Hour,
	})
	token, _, err := forger.GenerateAccessToken(s.account)
	s.Require().NoError(err)

	_, err = s.service.ValidateAccessToken(token)
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *TokenServiceTestSuite) TestValidateAccessToken_MissingAccountClaim() {
	claims := models.CustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		TokenType: TokenTypeAccess,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(s.privateKey)
	s.Require().NoError(err)

	_, err = s.service.ValidateAccessToken(token)
	s.ErrorIs(err, ErrMissingAccountClaim)
}

func (s *TokenServiceTestSuite) TestValidateAccessToken_RejectsHMAC() {
	claims := models.CustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{Issuer: s.issuer},
		AccountID:        s.account.ID.String(),
		TokenType:        TokenTypeAccess,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("shared-secret"))
	s.Require().NoError(err)

	_, err = s.service.ValidateAccessToken(token)
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *TokenServiceTestSuite) TestExtractTokenFromHeader() {
	testCases := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"bearer", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"lowercase scheme", "bearer abc", "abc", false},
		{"empty", "", "", true},
		{"basic scheme", "Basic dXNlcjpwYXNz", "", true},
		{"bearer without token", "Bearer   ", "", true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			token, err := s.service.ExtractTokenFromHeader(tc.header)
			if tc.wantErr {
				s.ErrorIs(err, ErrInvalidAuthHeader)
				return
			}
			s.NoError(err)
			s.Equal(tc.want, token)
		})
	}
}
