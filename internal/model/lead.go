package model

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"claimconnect/internal/geo"
)

// LeadRecord is the flattened payload handed to the buyer network. Field
// names follow the network's form-encoded contract.
type LeadRecord struct {
	LeadID        string `json:"lead_id"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Mobile        string `json:"mobile"`
	Email         string `json:"email"`
	IncidentState string `json:"incident_state"`
	IncidentDate  string `json:"incident_date,omitempty"`
	SourceID      string `json:"source_id"`
	IsTest        bool   `json:"is_test"`

	TrustedFormCertURL string `json:"trusted_form_cert_url,omitempty"`
	PubID              string `json:"pub_id,omitempty"`
}

// Lead is the persisted form of an accepted lead
type Lead struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	LeadID        string             `bson:"lead_id" json:"leadId"`
	FirstName     string             `bson:"first_name" json:"firstName"`
	LastName      string             `bson:"last_name" json:"lastName"`
	Mobile        string             `bson:"mobile" json:"mobile"`
	Email         string             `bson:"email" json:"email"`
	IncidentState string             `bson:"incident_state" json:"incidentState"`
	IncidentDate  string             `bson:"incident_date,omitempty" json:"incidentDate,omitempty"`
	SourceID      string             `bson:"source_id" json:"sourceId"`
	IsTest        bool               `bson:"is_test" json:"isTest"`
	CertURL       string             `bson:"cert_url,omitempty" json:"certUrl,omitempty"`
	CertClaimed   bool               `bson:"cert_claimed" json:"certClaimed"`
	Forwarded     bool               `bson:"forwarded" json:"forwarded"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
}

// APIResult is the normalized outcome of a vendor call. Status is one of
// "success", "error" or "skipped"; vendor calls never surface transport
// errors past this type.
type APIResult struct {
	Status  string         `json:"status"`
	Data    map[string]any `json:"data,omitempty"`
	Message string         `json:"message,omitempty"`
}

// LeadID extracts the vendor-assigned lead identifier when present
func (r APIResult) LeadID() string {
	if r.Data == nil {
		return ""
	}
	if id, ok := r.Data["leadId"].(string); ok {
		return id
	}
	return ""
}

// RelayResult is the relay endpoint's acknowledgement
type RelayResult struct {
	Message string `json:"message"`
	LeadID  string `json:"leadId"`
}

// EngagementEvent is a visitor interaction forwarded to the analytics
// collector
type EngagementEvent struct {
	PartnerID   string `json:"partnerId"`
	StateCode   string `json:"stateCode"`
	Action      string `json:"action"`
	ContentType string `json:"contentType,omitempty"`
	Timestamp   string `json:"timestamp"`
	Referrer    string `json:"referrer,omitempty"`
	UserAgent   string `json:"userAgent,omitempty"`
	Platform    string `json:"platform,omitempty"`
	Pathname    string `json:"pathname,omitempty"`
	Hostname    string `json:"hostname,omitempty"`
}

// FormatIncidentDate converts an ISO date (2006-01-02) to the MM/DD/YYYY
// form the buyer network expects. Unparseable input passes through as-is.
func FormatIncidentDate(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return t.Format("01/02/2006")
}

// NewLeadID mints an internal lead identifier
func NewLeadID() string {
	return fmt.Sprintf("CL-%d", time.Now().UnixMilli())
}

// BuildLeadRecord assembles the buyer payload from a session snapshot.
// The incident state is resolved in precedence order: state derived from
// the contact ZIP, then the funnel's resolved state, then the default
// jurisdiction.
func BuildLeadRecord(s *FormState, isTest bool) LeadRecord {
	state := ""
	if s.Contact.ZipCode != "" {
		state = geo.StateFromZip(s.Contact.ZipCode)
	}
	if state == "" {
		state = s.IncidentState
	}
	if state == "" {
		state = geo.DefaultState
	}

	rec := LeadRecord{
		LeadID:             NewLeadID(),
		FirstName:          s.Contact.FirstName,
		LastName:           s.Contact.LastName,
		Mobile:             DigitsOnly(s.Contact.Phone),
		Email:              s.Contact.Email,
		IncidentState:      state,
		SourceID:           s.SourceID,
		IsTest:             isTest,
		TrustedFormCertURL: s.TrustedFormCertURL,
		PubID:              s.PubID,
	}
	if d := s.Answers.Date("accidentDate"); d != "" {
		rec.IncidentDate = FormatIncidentDate(d)
	}
	return rec
}
