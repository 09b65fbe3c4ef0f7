package handlers

import (
	stderrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rajshah0904/Liquicity-sub002/internal/dto"
	"github.com/rajshah0904/Liquicity-sub002/internal/errors"
	"github.com/rajshah0904/Liquicity-sub002/internal/repositories"
	"github.com/rajshah0904/Liquicity-sub002/internal/services"
)

// KYCHandler handles identity verification requests
type KYCHandler struct {
	kycService services.KYCServiceInterface
}

// NewKYCHandler creates a new KYC handler
func NewKYCHandler(kycService services.KYCServiceInterface) *KYCHandler {
	return &KYCHandler{kycService: kycService}
}

// SubmitKYC forwards the identity form to the verification provider
// @Summary Submit identity verification
// @Tags KYC
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.KYCSubmissionRequest true "Identity details"
// @Success 201 {object} dto.KYCStatusResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid form"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - No authenticated account"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Failure 409 {object} errors.ErrorResponse "KYC_002 - Already approved, KYC_003 - Submission pending"
// @Failure 502 {object} errors.ErrorResponse "KYC_001 - Provider failure"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Provider unavailable"
// @Router /kyc/submissions [post]
func (h *KYCHandler) SubmitKYC(c echo.Context) error {
	accountID, err := getAccountIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthInvalidToken)
	}

	var req dto.KYCSubmissionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(ValidationDetails(err)...))
	}

	submission, err := h.kycService.Submit(c.Request().Context(), accountID, &req)
	if err != nil {
		switch {
		case stderrors.Is(err, repositories.ErrAccountNotFound):
			return SendError(c, errors.AccountNotFound)
		case stderrors.Is(err, services.ErrKYCAlreadyApproved):
			return SendError(c, errors.KYCAlreadyApproved)
		case stderrors.Is(err, services.ErrKYCPending):
			return SendError(c, errors.KYCPending)
		case stderrors.Is(err, services.ErrKYCProviderUnavailable):
			return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Identity verification provider unavailable"))
		case stderrors.Is(err, services.ErrKYCProviderFailed):
			return SendError(c, errors.KYCProviderError)
		default:
			return SendSystemError(c, err)
		}
	}

	submittedAt := submission.SubmittedAt
	return c.JSON(http.StatusCreated, dto.KYCStatusResponse{
		Status:           submission.Status,
		SubmissionID:     submission.ID.String(),
		ProviderDecision: submission.ProviderDecision,
		Reasons:          submission.Reasons,
		SubmittedAt:      &submittedAt,
	})
}

// GetKYCStatus reports the account's verification status
// @Summary Get identity verification status
// @Tags KYC
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.KYCStatusResponse
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - No authenticated account"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Router /kyc/status [get]
func (h *KYCHandler) GetKYCStatus(c echo.Context) error {
	accountID, err := getAccountIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthInvalidToken)
	}

	status, err := h.kycService.GetStatus(c.Request().Context(), accountID)
	if err != nil {
		if stderrors.Is(err, repositories.ErrAccountNotFound) {
			return SendError(c, errors.AccountNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, status)
}
