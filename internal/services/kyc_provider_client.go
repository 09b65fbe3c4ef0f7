package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/sony/gobreaker"

	"github.com/rajshah0904/Liquicity-sub002/internal/config"
	"github.com/rajshah0904/Liquicity-sub002/internal/dto"
)

const (
	kycProviderName       = "kyc_provider"
	kycVerificationsPath  = "/v1/verifications"
	circuitBreakerMetric  = "circuit_breaker.state"
	circuitStateClosed    = 0
	circuitStateOpen      = 1
	circuitStateHalfOpen  = 2
	maxProviderBodyLength = 1 << 20
)

var (
	// ErrKYCProviderUnavailable is returned while the circuit breaker is rejecting calls
	ErrKYCProviderUnavailable = errors.New("kyc provider unavailable")
	// ErrKYCProviderFailed is returned when the provider call fails or answers with an error
	ErrKYCProviderFailed = errors.New("kyc provider request failed")
)

// providerRejection is a 4xx answer. It reflects the request, not provider health,
// so it does not count toward tripping the breaker.
type providerRejection struct {
	status  int
	code    string
	message string
}

func (e *providerRejection) Error() string {
	return fmt.Sprintf("kyc provider rejected request (%d %s): %s", e.status, e.code, e.message)
}

// AuthTransport attaches the provider API key to every outgoing request
type AuthTransport struct {
	apiKey string
	base   http.RoundTripper
}

func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())

	req.Header.Set("Authorization", "Bearer "+t.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return t.base.RoundTrip(req)
}

// KYCProviderClient calls the identity verification provider behind a circuit breaker
type KYCProviderClient struct {
	config  *config.KYCProviderConfig
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
	metrics MetricsRecorderInterface
	logger  *slog.Logger
}

// NewKYCProviderClient creates a provider client from configuration
func NewKYCProviderClient(
	cfg *config.KYCProviderConfig,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) KYCProviderClientInterface {
	client := &http.Client{
		Transport: &AuthTransport{
			apiKey: cfg.APIKey,
			base:   http.DefaultTransport,
		},
		Timeout: cfg.Timeout,
	}

	c := &KYCProviderClient{
		config:  cfg,
		client:  client,
		metrics: metrics,
		logger:  logger,
	}

	maxFailures := cfg.BreakerMaxFailures
	if maxFailures == 0 {
		maxFailures = 5
	}

	c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        kycProviderName,
		MaxRequests: cfg.BreakerHalfOpenCalls,
		Timeout:     cfg.BreakerResetTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		IsSuccessful: func(err error) bool {
			var rejection *providerRejection
			return err == nil || errors.As(err, &rejection)
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				"service", name,
				"from", from.String(),
				"to", to.String(),
			)
			c.metrics.RecordGauge(circuitBreakerMetric, breakerStateValue(to), map[string]string{"service": name})
		},
	})

	return c
}

func breakerStateValue(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateOpen:
		return circuitStateOpen
	case gobreaker.StateHalfOpen:
		return circuitStateHalfOpen
	default:
		return circuitStateClosed
	}
}

// Verify submits an applicant for verification and returns the provider's decision
func (c *KYCProviderClient) Verify(ctx context.Context, request *dto.KYCProviderVerificationRequest) (*dto.KYCProviderVerificationResponse, error) {
	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.verify(ctx, request)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			c.logger.Warn("circuit breaker open - kyc request rejected",
				"reference", request.ExternalReference,
			)
			return nil, fmt.Errorf("%w: %v", ErrKYCProviderUnavailable, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrKYCProviderFailed, err)
	}

	return result.(*dto.KYCProviderVerificationResponse), nil
}

func (c *KYCProviderClient) verify(ctx context.Context, request *dto.KYCProviderVerificationRequest) (*dto.KYCProviderVerificationResponse, error) {
	req, err := c.buildRequest(ctx, http.MethodPost, kycVerificationsPath, request)
	if err != nil {
		return nil, err
	}

	resp, body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
		var verification dto.KYCProviderVerificationResponse
		if err := json.Unmarshal(body, &verification); err != nil {
			return nil, fmt.Errorf("decode verification response: %w", err)
		}

		c.logger.Info("kyc verification result",
			"reference", request.ExternalReference,
			"verification_id", verification.VerificationID,
			"decision", verification.Decision,
		)

		return &verification, nil

	case resp.StatusCode >= http.StatusBadRequest && resp.StatusCode < http.StatusInternalServerError:
		var errResp dto.KYCProviderErrorResponse
		if err := json.Unmarshal(body, &errResp); err != nil {
			c.logger.Debug("kyc provider error body not decodable",
				"status", resp.StatusCode,
				"body", string(body),
				"error", err,
			)
		}

		c.logger.Error("kyc provider rejected request",
			"status", resp.StatusCode,
			"code", errResp.Error.Code,
			"message", errResp.Error.Message,
			"request_id", errResp.Error.RequestID,
		)

		return nil, &providerRejection{
			status:  resp.StatusCode,
			code:    errResp.Error.Code,
			message: errResp.Error.Message,
		}

	default:
		return nil, fmt.Errorf("unexpected kyc provider response (%d): %s", resp.StatusCode, string(body))
	}
}

func (c *KYCProviderClient) buildRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.config.BaseURL+path, buf)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	return req, nil
}

func (c *KYCProviderClient) do(req *http.Request) (*http.Response, []byte, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("kyc provider request failed",
			"method", req.Method,
			"url", req.URL.String(),
			"error", err,
		)
		return nil, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxProviderBodyLength))
	if err != nil {
		return nil, nil, fmt.Errorf("read response body: %w", err)
	}

	return resp, body, nil
}
