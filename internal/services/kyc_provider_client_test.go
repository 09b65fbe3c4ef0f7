package services

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/rajshah0904/Liquicity-sub002/internal/config"
	"github.com/rajshah0904/Liquicity-sub002/internal/dto"
	"github.com/rajshah0904/Liquicity-sub002/internal/services/service_mocks"
)

type KYCProviderClientTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	metrics *service_mocks.MockMetricsRecorderInterface
	logger  *slog.Logger
	request *dto.KYCProviderVerificationRequest
	server  *httptest.Server
	calls   atomic.Int32
}

func (s *KYCProviderClientTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	s.calls.Store(0)
	s.request = dto.NewKYCProviderVerificationRequest("sub-123", &dto.KYCSubmissionRequest{
		FirstName:          "Ana",
		LastName:           "Silva",
		DateOfBirth:        "1990-04-12",
		Nationality:        "BR",
		CountryOfResidence: "PT",
		AddressLine1:       "Rua Augusta 10",
		City:               "Lisboa",
		PostalCode:         "1100-053",
		DocumentType:       "passport",
		DocumentNumber:     "FX123456",
	})
}

func (s *KYCProviderClientTestSuite) TearDownTest() {
	if s.server != nil {
		s.server.Close()
		s.server = nil
	}
	s.ctrl.Finish()
}

func TestKYCProviderClientSuite(t *testing.T) {
	suite.Run(t, new(KYCProviderClientTestSuite))
}

func (s *KYCProviderClientTestSuite) newClient(handler http.HandlerFunc, maxFailures uint32) KYCProviderClientInterface {
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.calls.Add(1)
		handler(w, r)
	}))

	return NewKYCProviderClient(&config.KYCProviderConfig{
		BaseURL:              s.server.URL,
		APIKey:               "test-api-key",
		Timeout:              2 * time.Second,
		BreakerMaxFailures:   maxFailures,
		BreakerResetTimeout:  time.Minute,
		BreakerHalfOpenCalls: 1,
	}, s.metrics, s.logger)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (s *KYCProviderClientTestSuite) TestVerify_Success() {
	client := s.newClient(func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodPost, r.Method)
		s.Equal("/v1/verifications", r.URL.Path)
		s.Equal("Bearer test-api-key", r.Header.Get("Authorization"))
		s.Equal("application/json", r.Header.Get("Content-Type"))

		var body dto.KYCProviderVerificationRequest
		s.NoError(json.NewDecoder(r.Body).Decode(&body))
		s.Equal("sub-123", body.ExternalReference)
		s.Equal("Ana", body.Applicant.FirstName)
		s.Equal("PT", body.Address.Country)
		s.Equal("passport", body.Document.Type)

		writeJSON(w, http.StatusCreated, dto.KYCProviderVerificationResponse{
			VerificationID: "ver_001",
			Decision:       "approved",
			CreatedAt:      time.Now().UTC(),
		})
	}, 3)

	resp, err := client.Verify(context.Background(), s.request)

	s.Require().NoError(err)
	s.Equal("ver_001", resp.VerificationID)
	s.Equal("approved", resp.Decision)
}

func (s *KYCProviderClientTestSuite) TestVerify_ClientErrorDoesNotTripBreaker() {
	client := s.newClient(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnprocessableEntity, dto.KYCProviderErrorResponse{
			Error: dto.KYCProviderErrorDetail{Code: "invalid_document", Message: "document number malformed", RequestID: "req_1"},
		})
	}, 2)

	for i := 0; i < 4; i++ {
		_, err := client.Verify(context.Background(), s.request)
		s.ErrorIs(err, ErrKYCProviderFailed)
		s.NotErrorIs(err, ErrKYCProviderUnavailable)
	}
	s.Equal(int32(4), s.calls.Load())
}

func (s *KYCProviderClientTestSuite) TestVerify_UndecodableClientErrorIsLogged() {
	var logs bytes.Buffer
	s.logger = slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	client := s.newClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("<html>bad request</html>"))
	}, 3)

	_, err := client.Verify(context.Background(), s.request)

	s.ErrorIs(err, ErrKYCProviderFailed)
	s.Contains(logs.String(), "kyc provider error body not decodable")
	s.Contains(logs.String(), "<html>bad request</html>")
}

func (s *KYCProviderClientTestSuite) TestVerify_ServerErrorsOpenBreaker() {
	client := s.newClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	}, 2)

	s.metrics.EXPECT().
		RecordGauge("circuit_breaker.state", float64(1), map[string]string{"service": "kyc_provider"}).
		Times(1)

	_, err := client.Verify(context.Background(), s.request)
	s.ErrorIs(err, ErrKYCProviderFailed)
	_, err = client.Verify(context.Background(), s.request)
	s.ErrorIs(err, ErrKYCProviderFailed)

	_, err = client.Verify(context.Background(), s.request)
	s.ErrorIs(err, ErrKYCProviderUnavailable)
	s.Equal(int32(2), s.calls.Load(), "open breaker must not reach the provider")
}

func (s *KYCProviderClientTestSuite) TestVerify_MalformedBody() {
	client := s.newClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("{not json"))
	}, 3)

	_, err := client.Verify(context.Background(), s.request)
	s.ErrorIs(err, ErrKYCProviderFailed)
}

func (s *KYCProviderClientTestSuite) TestVerify_ContextCancelled() {
	client := s.newClient(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, dto.KYCProviderVerificationResponse{Decision: "approved"})
	}, 3)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Verify(ctx, s.request)
	s.ErrorIs(err, ErrKYCProviderFailed)
}

func TestMapProviderDecision(t *testing.T) {
	testCases := map[string]string{
		"approved": "approved",
		"Verified": "approved",
		" clear ":  "approved",
		"declined": "rejected",
		"REJECTED": "rejected",
		"denied":   "rejected",
		"review":   "pending",
		"pending":  "pending",
		"":         "pending",
	}

	for decision, want := range testCases {
		if got := MapProviderDecision(decision); got != want {
			t.Errorf("MapProviderDecision(%q) = %q, want %q", decision, got, want)
		}
	}
}
