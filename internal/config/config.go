package config

import "time"

// Config is the top-level configuration container for apivault. It is
// populated by merging values from environment variables and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type Config struct {
	// App holds client-side application settings.
	App App `envPrefix:"APP_" json:"app,omitempty"`

	// Storage holds local persistence settings.
	Storage Storage `envPrefix:"STORAGE_" json:"storage,omitempty"`

	// Server holds settings for the bundled reference API server.
	Server Server `envPrefix:"SERVER_" json:"server,omitempty"`

	// JSONFilePath is the optional path to a JSON configuration file,
	// merged on top of environment values when non-empty.
	// Env: CONFIG
	JSONFilePath string `env:"CONFIG" json:"-"`
}

// App holds client-side application settings.
type App struct {
	// RequestTimeout bounds outbound request execution and provider
	// transport calls (e.g. "30s").
	// Env: APP_REQUEST_TIMEOUT
	RequestTimeout Duration `env:"REQUEST_TIMEOUT" json:"request_timeout,omitempty"`
}

// Storage holds local persistence settings.
type Storage struct {
	// DBPath is the SQLite database file backing the local workspace.
	// Env: STORAGE_DB_PATH
	DBPath string `env:"DB_PATH" json:"db_path,omitempty"`
}

// Server holds settings for the bundled reference API server.
type Server struct {
	// Address is the TCP listen address in "host:port" form.
	// Env: SERVER_ADDRESS
	Address string `env:"ADDRESS" json:"address,omitempty"`

	// TokenSignKey signs and verifies the JWT access tokens issued to
	// clients. Must be kept confidential.
	// Env: SERVER_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY" json:"token_sign_key,omitempty"`

	// TokenIssuer is the "iss" claim on issued tokens.
	// Env: SERVER_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER" json:"token_issuer,omitempty"`

	// TokenDuration is how long issued tokens stay valid (e.g. "1h").
	// Env: SERVER_TOKEN_DURATION
	TokenDuration Duration `env:"TOKEN_DURATION" json:"token_duration,omitempty"`
}

// Defaults applied by New when neither environment nor JSON supplies a
// value.
const (
	defaultDBPath         = "apivault.db"
	defaultRequestTimeout = Duration(30 * time.Second)
	defaultServerAddress  = ":8080"
	defaultTokenIssuer    = "apivault"
	defaultTokenDuration  = Duration(time.Hour)
)

func (c *Config) applyDefaults() {
	if c.App.RequestTimeout <= 0 {
		c.App.RequestTimeout = defaultRequestTimeout
	}
	if c.Storage.DBPath == "" {
		c.Storage.DBPath = defaultDBPath
	}
	if c.Server.Address == "" {
		c.Server.Address = defaultServerAddress
	}
	if c.Server.TokenIssuer == "" {
		c.Server.TokenIssuer = defaultTokenIssuer
	}
	if c.Server.TokenDuration <= 0 {
		c.Server.TokenDuration = defaultTokenDuration
	}
}

// New loads configuration from the environment and, when CONFIG points at a
// file, from JSON, then applies defaults.
func New() (*Config, error) {
	return newConfigBuilder().
		withEnv().
		withJSON().
		build()
}
