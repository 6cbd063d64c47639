package salesforce

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/Veraticus/contractor-evaluation/internal/common"
)

// Config holds the connection settings for the evaluation REST resource.
type Config struct {
	InstanceURL  string
	ResourcePath string
	ClientID     string
	ClientSecret string
	AccessToken  string
	TokenURL     string
	Timeout      time.Duration
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() Config {
	return Config{
		ResourcePath: "ContractorEvaluation",
		Timeout:      30 * time.Second,
	}
}

// Validate checks that the configuration can produce a working client.
func (c Config) Validate() error {
	if c.InstanceURL == "" {
		return fmt.Errorf("%w: instance URL is required", common.ErrMissingConfig)
	}
	u, err := url.Parse(c.InstanceURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: instance URL %q is not an absolute URL", common.ErrInvalidConfig, c.InstanceURL)
	}
	if strings.Trim(c.ResourcePath, "/") == "" {
		return fmt.Errorf("%w: resource path is required", common.ErrMissingConfig)
	}
	if c.AccessToken == "" && (c.ClientID == "" || c.ClientSecret == "") {
		return fmt.Errorf("%w: either an access token or client credentials are required", common.ErrMissingConfig)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%w: timeout must not be negative", common.ErrInvalidConfig)
	}
	return nil
}

// tokenURL returns the OAuth token endpoint, defaulting to the instance's.
func (c Config) tokenURL() string {
	if c.TokenURL != "" {
		return c.TokenURL
	}
	return strings.TrimRight(c.InstanceURL, "/") + "/services/oauth2/token"
}

// resourceURL returns the base URL of the Apex REST resource.
func (c Config) resourceURL() string {
	return strings.TrimRight(c.InstanceURL, "/") + "/services/apexrest/" + strings.Trim(c.ResourcePath, "/")
}
