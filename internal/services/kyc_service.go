package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rajshah0904/Liquicity-sub002/internal/dto"
	"github.com/rajshah0904/Liquicity-sub002/internal/models"
	"github.com/rajshah0904/Liquicity-sub002/internal/repositories"
)

var (
	ErrKYCAlreadyApproved = errors.New("identity verification already approved")
	ErrKYCPending         = errors.New("identity verification already pending")
)

type kycService struct {
	accountRepo    repositories.AccountRepositoryInterface
	submissionRepo repositories.KYCSubmissionRepositoryInterface
	provider       KYCProviderClientInterface
	metrics        MetricsRecorderInterface
}

// NewKYCService creates the identity verification flow
func NewKYCService(
	accountRepo repositories.AccountRepositoryInterface,
	submissionRepo repositories.KYCSubmissionRepositoryInterface,
	provider KYCProviderClientInterface,
	metrics MetricsRecorderInterface,
) KYCServiceInterface {
	return &kycService{
		accountRepo:    accountRepo,
		submissionRepo: submissionRepo,
		provider:       provider,
		metrics:        metrics,
	}
}

// Submit claims the account, forwards the form to the provider and records the mapped outcome.
// Nothing is persisted when the provider call fails and the claim is released.
func (s *kycService) Submit(ctx context.Context, accountID uuid.UUID, req *dto.KYCSubmissionRequest) (*models.KYCSubmission, error) {
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	switch account.KYCStatus {
	case models.KYCStatusApproved:
		return nil, ErrKYCAlreadyApproved
	case models.KYCStatusPending:
		return nil, ErrKYCPending
	}

	claimed, err := s.accountRepo.ClaimKYCSubmission(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, s.claimConflict(ctx, accountID)
	}

	submission := &models.KYCSubmission{
		ID:           uuid.New(),
		AccountID:    accountID,
		DocumentType: req.DocumentType,
		CountryCode:  strings.ToUpper(req.CountryOfResidence),
		SubmittedAt:  time.Now().UTC(),
	}

	verification, err := s.provider.Verify(ctx, dto.NewKYCProviderVerificationRequest(submission.ID.String(), req))
	if err != nil {
		s.metrics.IncrementCounter("kyc.submission", map[string]string{"status": "provider_error"})
		s.releaseClaim(ctx, accountID, account.KYCStatus)
		return nil, err
	}

	submission.ProviderReference = verification.VerificationID
	submission.ProviderDecision = verification.Decision
	submission.Status = MapProviderDecision(verification.Decision)
	submission.SetReasons(verification.Reasons)

	if err := s.submissionRepo.CreateWithAccountStatus(ctx, submission); err != nil {
		if errors.Is(err, repositories.ErrKYCClaimLost) {
			return nil, fmt.Errorf("%w: %v", ErrKYCPending, err)
		}
		s.releaseClaim(ctx, accountID, account.KYCStatus)
		return nil, fmt.Errorf("failed to record kyc submission: %w", err)
	}

	s.metrics.IncrementCounter("kyc.submission", map[string]string{"status": submission.Status})
	slog.Info("kyc submission recorded",
		"account_id", accountID,
		"submission_id", submission.ID,
		"status", submission.Status,
	)

	return submission, nil
}

// claimConflict reports why another submission holds the account
func (s *kycService) claimConflict(ctx context.Context, accountID uuid.UUID) error {
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return err
	}
	if account.KYCStatus == models.KYCStatusApproved {
		return ErrKYCAlreadyApproved
	}
	return ErrKYCPending
}

func (s *kycService) releaseClaim(ctx context.Context, accountID uuid.UUID, previous string) {
	if previous == "" {
		previous = models.KYCStatusNotStarted
	}
	if err := s.accountRepo.UpdateKYCStatus(context.WithoutCancel(ctx), accountID, previous); err != nil {
		slog.Error("failed to release kyc claim",
			"account_id", accountID,
			"status", previous,
			"error", err,
		)
	}
}

// GetStatus reports the account's verification state along with its latest submission, if any
func (s *kycService) GetStatus(ctx context.Context, accountID uuid.UUID) (*dto.KYCStatusResponse, error) {
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	response := &dto.KYCStatusResponse{Status: account.KYCStatus}
	if response.Status == "" {
		response.Status = models.KYCStatusNotStarted
	}

	submission, err := s.submissionRepo.GetLatestByAccountID(ctx, accountID)
	if errors.Is(err, repositories.ErrKYCSubmissionNotFound) {
		return response, nil
	}
	if err != nil {
		return nil, err
	}

	submittedAt := submission.SubmittedAt
	response.SubmissionID = submission.ID.String()
	response.ProviderDecision = submission.ProviderDecision
	response.Reasons = submission.Reasons
	response.SubmittedAt = &submittedAt

	return response, nil
}

// MapProviderDecision normalizes the provider's free-form decision into a KYC status
func MapProviderDecision(decision string) string {
	switch strings.ToLower(strings.TrimSpace(decision)) {
	case "approved", "verified", "clear":
		return models.KYCStatusApproved
	case "declined", "rejected", "denied":
		return models.KYCStatusRejected
	default:
		return models.KYCStatusPending
	}
}
