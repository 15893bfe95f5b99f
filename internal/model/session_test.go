package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyDerivesContactFields(t *testing.T) {
	s := NewFormState("sess-1", "cc_lead_1")
	s.Apply(Update{Contact: &ContactInfo{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Phone:     "(212) 555-1234",
		ZipCode:   "75001",
	}})

	assert.Equal(t, "Jane Doe", s.ClaimantName)
	assert.Equal(t, "jane@example.com", s.ClaimantEmail)
	assert.Equal(t, "2125551234", s.CallerID)
	assert.Equal(t, "TX", s.IncidentState)
}

func TestApplyKeepsExistingIncidentState(t *testing.T) {
	s := NewFormState("sess-1", "cc_lead_1")
	s.IncidentState = "CA"
	s.Apply(Update{Contact: &ContactInfo{ZipCode: "75001"}})
	assert.Equal(t, "CA", s.IncidentState)
}

func TestApplyPartialUpdate(t *testing.T) {
	s := NewFormState("sess-1", "cc_lead_1")
	cert := "https://cert.trustedform.com/abc"
	pub := "pub-77"
	s.Apply(Update{TrustedFormCertURL: &cert})
	s.Apply(Update{PubID: &pub})

	assert.Equal(t, cert, s.TrustedFormCertURL)
	assert.Equal(t, pub, s.PubID)
	assert.Empty(t, s.ClaimantName)
}
