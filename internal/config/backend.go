package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/Veraticus/contractor-evaluation/internal/common"
	"github.com/Veraticus/contractor-evaluation/internal/salesforce"
	"github.com/spf13/viper"
)

// Backend kinds.
const (
	BackendSalesforce = "salesforce"
	BackendLocal      = "local"
)

// DefaultDatabasePath is where the local backend keeps its data.
const DefaultDatabasePath = "~/.local/share/evalform/evaluations.db"

// BackendConfig selects and configures the evaluation backend.
type BackendConfig struct {
	Kind         string
	DatabasePath string
	Salesforce   salesforce.Config
}

// LoadBackendConfig loads backend configuration from Viper and environment variables.
// It follows this precedence:
// 1. Viper configuration (from config file or EVALFORM_ env vars)
// 2. Direct environment variables (SF_*)
// 3. Default values
func LoadBackendConfig() (*BackendConfig, error) {
	cfg := &BackendConfig{
		Kind:         BackendLocal,
		DatabasePath: DatabasePath(),
		Salesforce:   salesforce.DefaultConfig(),
	}

	if v := viper.GetString("backend.kind"); v != "" {
		cfg.Kind = strings.ToLower(strings.TrimSpace(v))
	}
	sf := &cfg.Salesforce
	if v := viper.GetString("salesforce.instance_url"); v != "" {
		sf.InstanceURL = v
	}
	if v := viper.GetString("salesforce.resource_path"); v != "" {
		sf.ResourcePath = v
	}
	if v := viper.GetString("salesforce.client_id"); v != "" {
		sf.ClientID = v
	}
	if v := viper.GetString("salesforce.client_secret"); v != "" {
		sf.ClientSecret = v
	}
	if v := viper.GetString("salesforce.access_token"); v != "" {
		sf.AccessToken = v
	}
	if v := viper.GetString("salesforce.token_url"); v != "" {
		sf.TokenURL = v
	}
	if v := viper.GetDuration("backend.timeout"); v != 0 {
		sf.Timeout = v
	}

	if sf.InstanceURL == "" {
		sf.InstanceURL = os.Getenv("SF_INSTANCE_URL")
	}
	if sf.ClientID == "" {
		sf.ClientID = os.Getenv("SF_CLIENT_ID")
	}
	if sf.ClientSecret == "" {
		sf.ClientSecret = os.Getenv("SF_CLIENT_SECRET")
	}
	if sf.AccessToken == "" {
		sf.AccessToken = os.Getenv("SF_ACCESS_TOKEN")
	}
	if sf.TokenURL == "" {
		sf.TokenURL = os.Getenv("SF_TOKEN_URL")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DatabasePath returns the expanded local database path.
func DatabasePath() string {
	if v := viper.GetString("database.path"); v != "" {
		return ExpandPath(v)
	}
	return ExpandPath(DefaultDatabasePath)
}

// Validate checks the settings required by the selected backend.
func (c *BackendConfig) Validate() error {
	switch c.Kind {
	case BackendLocal:
		if c.DatabasePath == "" {
			return fmt.Errorf("%w: database path is required for the local backend", common.ErrMissingConfig)
		}
		return nil
	case BackendSalesforce:
		return c.Salesforce.Validate()
	default:
		return fmt.Errorf("%w: unknown backend kind %q", common.ErrInvalidConfig, c.Kind)
	}
}
