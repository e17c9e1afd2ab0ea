package models

// ProviderConfig is the union of provider-specific settings supplied when a
// sync provider is selected. Only the fields relevant to the chosen provider
// are read; the whole struct is serialized into the settings area so the
// last-used provider can be restored on the next run.
type ProviderConfig struct {
	// API-server provider.
	BaseURL string `json:"base_url,omitempty"`

	// PostgREST provider.
	URL    string `json:"url,omitempty"`
	APIKey string `json:"api_key,omitempty"`
	DBURI  string `json:"db_uri,omitempty"`

	// Drive provider.
	ClientID     string `json:"client_id,omitempty"`
	ClientSecret string `json:"client_secret,omitempty"`
	RedirectURI  string `json:"redirect_uri,omitempty"`

	// TimeoutSeconds applies to the provider's HTTP client. Zero keeps the
	// provider default.
	TimeoutSeconds int `json:"timeout_seconds,omitempty"`
}
