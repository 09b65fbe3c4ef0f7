package dto

import "time"

// KYC Request DTOs

// KYCSubmissionRequest is the identity form collected from the account holder
type KYCSubmissionRequest struct {
	FirstName          string `json:"firstName" validate:"required,min=1,max=100"`
	LastName           string `json:"lastName" validate:"required,min=1,max=100"`
	DateOfBirth        string `json:"dateOfBirth" validate:"required,datetime=2006-01-02"`
	Nationality        string `json:"nationality" validate:"required,iso3166_1_alpha2"`
	CountryOfResidence string `json:"countryOfResidence" validate:"required,iso3166_1_alpha2"`
	AddressLine1       string `json:"addressLine1" validate:"required,max=255"`
	AddressLine2       string `json:"addressLine2,omitempty" validate:"max=255"`
	City               string `json:"city" validate:"required,max=100"`
	PostalCode         string `json:"postalCode" validate:"required,max=20"`
	DocumentType       string `json:"documentType" validate:"required,oneof=passport national_id drivers_license"`
	DocumentNumber     string `json:"documentNumber" validate:"required,min=4,max=50"`
}

// KYC Response DTOs

// KYCStatusResponse reports where the account stands in identity verification
type KYCStatusResponse struct {
	Status           string     `json:"status"`
	SubmissionID     string     `json:"submissionId,omitempty"`
	ProviderDecision string     `json:"providerDecision,omitempty"`
	Reasons          string     `json:"reasons,omitempty"`
	SubmittedAt      *time.Time `json:"submittedAt,omitempty"`
}

// ---------- Provider wire format ----------

// KYCProviderApplicant is the applicant block sent to the verification provider
type KYCProviderApplicant struct {
	FirstName          string `json:"first_name"`
	LastName           string `json:"last_name"`
	DateOfBirth        string `json:"date_of_birth"`
	Nationality        string `json:"nationality"`
	CountryOfResidence string `json:"country_of_residence"`
}

type KYCProviderAddress struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

type KYCProviderDocument struct {
	Type   string `json:"type"`
	Number string `json:"number"`
}

// KYCProviderVerificationRequest is POSTed to /v1/verifications
type KYCProviderVerificationRequest struct {
	ExternalReference string               `json:"external_reference"`
	Applicant         KYCProviderApplicant `json:"applicant"`
	Address           KYCProviderAddress   `json:"address"`
	Document          KYCProviderDocument  `json:"document"`
}

// KYCProviderVerificationResponse is the provider's decision payload
type KYCProviderVerificationResponse struct {
	VerificationID string    `json:"verification_id"`
	Decision       string    `json:"decision"`
	Reasons        []string  `json:"reasons,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type KYCProviderErrorResponse struct {
	Error KYCProviderErrorDetail `json:"error"`
}

type KYCProviderErrorDetail struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
}

// NewKYCProviderVerificationRequest maps the collected form onto the provider's wire format
func NewKYCProviderVerificationRequest(reference string, req *KYCSubmissionRequest) *KYCProviderVerificationRequest {
	return &KYCProviderVerificationRequest{
		ExternalReference: reference,
		Applicant: KYCProviderApplicant{
			FirstName:          req.FirstName,
			LastName:           req.LastName,
			DateOfBirth:        req.DateOfBirth,
			Nationality:        req.Nationality,
			CountryOfResidence: req.CountryOfResidence,
		},
		Address: KYCProviderAddress{
			Line1:      req.AddressLine1,
			Line2:      req.AddressLine2,
			City:       req.City,
			PostalCode: req.PostalCode,
			Country:    req.CountryOfResidence,
		},
		Document: KYCProviderDocument{
			Type:   req.DocumentType,
			Number: req.DocumentNumber,
		},
	}
}
