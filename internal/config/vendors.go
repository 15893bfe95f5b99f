package config

import "os"

// PingtreeConfig holds lead-marketplace API settings
type PingtreeConfig struct {
	BaseURL         string `json:"baseUrl"`
	PartnerID       string `json:"partnerId"`
	SubscriptionKey string `json:"-"` // Never serialize
	CreativeID      string `json:"creativeId"`
	BearerToken     string `json:"-"` // Never serialize
	Channel         string `json:"channel"`
}

// LeadEndpoint returns the full lead-add endpoint for the configured partner
func (c *PingtreeConfig) LeadEndpoint() string {
	return c.BaseURL + "/api/lead/add/" + c.PartnerID
}

// IsEnabled returns true if the bearer token is configured
func (c *PingtreeConfig) IsEnabled() bool {
	return c.BearerToken != ""
}

// RingbaConfig holds call-routing enrichment settings
type RingbaConfig struct {
	EnrichURL string `json:"enrichUrl"`
	TimeoutMS int    `json:"timeoutMs"`
}

// TrustedFormConfig holds form-certification vendor settings
type TrustedFormConfig struct {
	CertPrefix  string `json:"certPrefix"`
	APIKey      string `json:"-"` // Never serialize
	PollSeconds int    `json:"pollSeconds"`
	MaxAttempts int    `json:"maxAttempts"`
	DevCertURL  string `json:"devCertUrl"`
}

// IsEnabled returns true if the claim API key is configured
func (c *TrustedFormConfig) IsEnabled() bool {
	return c.APIKey != ""
}

// AnalyticsConfig holds engagement-tracking endpoint settings
type AnalyticsConfig struct {
	Endpoint  string `json:"endpoint"`
	PartnerID string `json:"partnerId"`
	TimeoutMS int    `json:"timeoutMs"`
}

// GeoIPConfig holds the IP-geolocation lookup settings
type GeoIPConfig struct {
	Endpoint  string `json:"endpoint"`
	TimeoutMS int    `json:"timeoutMs"`
}

// VendorConfig groups all third-party integration settings
type VendorConfig struct {
	Pingtree    PingtreeConfig    `json:"pingtree"`
	Ringba      RingbaConfig      `json:"ringba"`
	TrustedForm TrustedFormConfig `json:"trustedForm"`
	Analytics   AnalyticsConfig   `json:"analytics"`
	GeoIP       GeoIPConfig       `json:"geoip"`
	CallCenter  string            `json:"callCenter"`
}

// DefaultVendorConfig returns vendor configuration with environment overrides
func DefaultVendorConfig() *VendorConfig {
	return &VendorConfig{
		Pingtree: PingtreeConfig{
			BaseURL:         getEnv("PINGTREE_BASE_URL", "https://api.pingtree.com"),
			PartnerID:       getEnv("PINGTREE_PARTNER_ID", "B40i8"),
			SubscriptionKey: os.Getenv("PINGTREE_SUBSCRIPTION_KEY"),
			CreativeID:      getEnv("PINGTREE_CREATIVE_ID", "CT1234"),
			BearerToken:     os.Getenv("PINGTREE_TOKEN"),
			Channel:         getEnv("PINGTREE_CHANNEL", "Website"),
		},
		Ringba: RingbaConfig{
			EnrichURL: getEnv("RINGBA_ENRICH_URL", "https://display.ringba.com/enrich/2633440120270751643"),
			TimeoutMS: 5000,
		},
		TrustedForm: TrustedFormConfig{
			CertPrefix:  getEnv("TRUSTEDFORM_CERT_PREFIX", "https://cert.trustedform.com/"),
			APIKey:      os.Getenv("TRUSTEDFORM_API_KEY"),
			PollSeconds: 1,
			MaxAttempts: 30,
			DevCertURL:  "https://cert.trustedform.com/development/test123",
		},
		Analytics: AnalyticsConfig{
			Endpoint:  getEnv("ANALYTICS_ENDPOINT", "https://api.claimconnectors.com/api/analytics"),
			PartnerID: getEnv("ANALYTICS_PARTNER_ID", "B40i8"),
			TimeoutMS: 3000,
		},
		GeoIP: GeoIPConfig{
			Endpoint:  getEnv("GEOIP_ENDPOINT", "https://ipapi.co/json/"),
			TimeoutMS: 5000,
		},
		CallCenter: getEnv("CALL_CENTER_NUMBER", "8337156010"),
	}
}
