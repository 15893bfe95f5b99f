package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"claimconnect/internal/config"
	"claimconnect/internal/model"
)

func pingtreeConfig(baseURL string) config.PingtreeConfig {
	return config.PingtreeConfig{
		BaseURL:         baseURL,
		PartnerID:       "P123",
		SubscriptionKey: "sub-key",
		CreativeID:      "CT1",
		BearerToken:     "token-abc",
		Channel:         "Website",
	}
}

func testLeadRecord() model.LeadRecord {
	return model.LeadRecord{
		LeadID:        "CL-1",
		FirstName:     "Jane",
		LastName:      "Doe",
		Mobile:        "2125551234",
		Email:         "jane@example.com",
		IncidentState: "TX",
		SourceID:      "cc_lead_1",
		IsTest:        true,
	}
}

func TestSubmitLeadSendsFormFields(t *testing.T) {
	var gotAuth, gotContentType, gotPath string
	var gotForm map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		gotPath = r.URL.Path
		require.NoError(t, r.ParseForm())
		gotForm = map[string]string{}
		for k := range r.PostForm {
			gotForm[k] = r.PostForm.Get(k)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"leadId":"PT-99","status":"accepted"}`))
	}))
	defer srv.Close()

	c := NewPingtreeClient(pingtreeConfig(srv.URL))
	result := c.SubmitLead(context.Background(), testLeadRecord())

	assert.Equal(t, "success", result.Status)
	assert.Equal(t, "PT-99", result.LeadID())
	assert.Equal(t, "/api/lead/add/P123", gotPath)
	assert.Equal(t, "Bearer token-abc", gotAuth)
	assert.Equal(t, "application/x-www-form-urlencoded", gotContentType)
	assert.Equal(t, "Jane", gotForm["first_name"])
	assert.Equal(t, "Doe", gotForm["last_name"])
	assert.Equal(t, "2125551234", gotForm["mobile"])
	assert.Equal(t, "jane@example.com", gotForm["email"])
	assert.Equal(t, "TX", gotForm["incident_state"])
	assert.Equal(t, "CT1", gotForm["crid"])
	assert.Equal(t, "Website", gotForm["channel"])
	assert.Equal(t, "sub-key", gotForm["subscription_key"])
	assert.Equal(t, "cc_lead_1", gotForm["source_id"])
	assert.Equal(t, "1", gotForm["is_test"])
}

func TestSubmitLeadAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad lead", http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	c := NewPingtreeClient(pingtreeConfig(srv.URL))
	result := c.SubmitLead(context.Background(), testLeadRecord())

	assert.Equal(t, "error", result.Status)
	assert.Contains(t, result.Message, "422")
}

func TestSubmitLeadTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	c := NewPingtreeClient(pingtreeConfig(srv.URL))
	result := c.SubmitLead(context.Background(), testLeadRecord())
	assert.Equal(t, "error", result.Status)
}
