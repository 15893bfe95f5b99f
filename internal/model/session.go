package model

import (
	"time"

	"claimconnect/internal/geo"
)

// FormState is the full server-side snapshot of one visitor's funnel
// progress. It round-trips through the session cache as JSON.
type FormState struct {
	SessionID   string      `json:"sessionId"`
	SourceID    string      `json:"sourceId"`
	CurrentStep int         `json:"currentStep"`
	Answers     AnswerSet   `json:"answers"`
	Qualified   *bool       `json:"qualified"`
	Submitted   bool        `json:"submitted"`
	Contact     ContactInfo `json:"contact"`

	// Derived and enrichment fields
	ClaimantName       string `json:"claimantName,omitempty"`
	ClaimantEmail      string `json:"claimantEmail,omitempty"`
	CallerID           string `json:"callerId,omitempty"`
	IncidentState      string `json:"incidentState,omitempty"`
	TrustedFormCertURL string `json:"trustedFormCertUrl,omitempty"`
	PubID              string `json:"pubId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Update carries a partial state change. Nil fields are left untouched.
type Update struct {
	Contact            *ContactInfo `json:"contact,omitempty"`
	IncidentState      *string      `json:"incidentState,omitempty"`
	TrustedFormCertURL *string      `json:"trustedFormCertUrl,omitempty"`
	PubID              *string      `json:"pubId,omitempty"`
}

// NewFormState returns an empty snapshot for a fresh session
func NewFormState(sessionID, sourceID string) *FormState {
	now := time.Now().UTC()
	return &FormState{
		SessionID: sessionID,
		SourceID:  sourceID,
		Answers:   AnswerSet{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Apply merges an update into the state and recomputes derived fields
func (s *FormState) Apply(u Update) {
	if u.Contact != nil {
		s.Contact = *u.Contact
	}
	if u.IncidentState != nil {
		s.IncidentState = *u.IncidentState
	}
	if u.TrustedFormCertURL != nil {
		s.TrustedFormCertURL = *u.TrustedFormCertURL
	}
	if u.PubID != nil {
		s.PubID = *u.PubID
	}
	s.derive()
	s.UpdatedAt = time.Now().UTC()
}

// derive recomputes fields that are functions of the contact info. The
// incident state is only inferred from the ZIP when nothing upstream
// (geolocation, enrichment) set it already.
func (s *FormState) derive() {
	if name := s.Contact.FullName(); name != "" {
		s.ClaimantName = name
	}
	if s.Contact.Email != "" {
		s.ClaimantEmail = s.Contact.Email
	}
	if digits := DigitsOnly(s.Contact.Phone); digits != "" {
		s.CallerID = digits
	}
	if s.IncidentState == "" && s.Contact.ZipCode != "" {
		if st := geo.StateFromZip(s.Contact.ZipCode); st != "" {
			s.IncidentState = st
		}
	}
}
