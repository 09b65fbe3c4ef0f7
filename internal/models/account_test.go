package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccount_BeforeCreate(t *testing.T) {
	tests := []struct {
		name    string
		account Account
		wantErr error
	}{
		{
			name:    "defaults kyc status",
			account: Account{Email: "  Owner@Example.COM "},
		},
		{
			name:    "keeps explicit status",
			account: Account{Email: "owner@example.com", KYCStatus: KYCStatusApproved},
		},
		{
			name:    "missing email",
			account: Account{},
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "invalid status",
			account: Account{Email: "owner@example.com", KYCStatus: "verified"},
			wantErr: ErrInvalidKYCStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.account.BeforeCreate(nil)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, tt.account.ID)
			assert.Equal(t, "owner@example.com", tt.account.Email)
			assert.True(t, IsValidKYCStatus(tt.account.KYCStatus))
		})
	}
}

func TestAccount_IsKYCApproved(t *testing.T) {
	assert.True(t, (&Account{KYCStatus: KYCStatusApproved}).IsKYCApproved())
	assert.False(t, (&Account{KYCStatus: KYCStatusPending}).IsKYCApproved())
	assert.False(t, (&Account{KYCStatus: KYCStatusNotStarted}).IsKYCApproved())
}

func TestLinkedAccount_BeforeCreate(t *testing.T) {
	linked := &LinkedAccount{AccountID: uuid.New(), CountryCode: "DE"}
	require.NoError(t, linked.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, linked.ID)

	assert.ErrorIs(t, (&LinkedAccount{AccountID: uuid.New(), CountryCode: "DEU"}).BeforeCreate(nil), ErrInvalidCountryCode)
	assert.Error(t, (&LinkedAccount{CountryCode: "DE"}).BeforeCreate(nil))
}

func TestKYCSubmission_BeforeCreate(t *testing.T) {
	submission := &KYCSubmission{
		AccountID:    uuid.New(),
		Status:       KYCStatusPending,
		DocumentType: DocumentTypePassport,
		CountryCode:  "US",
	}
	require.NoError(t, submission.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, submission.ID)
	assert.False(t, submission.SubmittedAt.IsZero())

	notStarted := &KYCSubmission{AccountID: uuid.New(), Status: KYCStatusNotStarted}
	assert.ErrorIs(t, notStarted.BeforeCreate(nil), ErrInvalidKYCStatus)

	submission.SetReasons([]string{"document blurry", "name mismatch"})
	assert.Equal(t, "document blurry; name mismatch", submission.Reasons)

	assert.True(t, IsValidDocumentType(DocumentTypeDriversLicense))
	assert.False(t, IsValidDocumentType("library_card"))
}
