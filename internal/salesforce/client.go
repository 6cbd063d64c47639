// Package salesforce implements the evaluation backend on top of the Apex
// REST resource exposed by the CRM org.
package salesforce

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/Veraticus/contractor-evaluation/internal/common"
	"github.com/Veraticus/contractor-evaluation/internal/model"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// maxErrorBody bounds how much of an error response is read.
const maxErrorBody = 64 << 10

// Client implements service.Backend over HTTPS.
type Client struct {
	httpClient  *http.Client
	resourceURL string
}

// Option configures a Client.
type Option func(*clientOptions)

type clientOptions struct {
	transport http.RoundTripper
}

// WithTransport sets the base transport under the auth and logging layers.
func WithTransport(rt http.RoundTripper) Option {
	return func(o *clientOptions) {
		o.transport = rt
	}
}

// NewClient creates a client. ctx is used for token refreshes when client
// credentials are configured.
func NewClient(ctx context.Context, cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var o clientOptions
	for _, opt := range opts {
		opt(&o)
	}

	base := NewLoggingRoundTripper(o.transport)

	var source oauth2.TokenSource
	if cfg.AccessToken != "" {
		source = oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: cfg.AccessToken,
			TokenType:   "Bearer",
		})
	} else {
		cc := clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     cfg.tokenURL(),
			AuthStyle:    oauth2.AuthStyleInParams,
		}
		tokenCtx := context.WithValue(ctx, oauth2.HTTPClient, &http.Client{
			Transport: base,
			Timeout:   cfg.Timeout,
		})
		source = cc.TokenSource(tokenCtx)
	}

	return &Client{
		httpClient: &http.Client{
			Transport: &oauth2.Transport{Source: source, Base: base},
			Timeout:   cfg.Timeout,
		},
		resourceURL: cfg.resourceURL(),
	}, nil
}

// FetchProject implements service.Backend.
func (c *Client) FetchProject(ctx context.Context, projectID string) (*model.ProjectSnapshot, error) {
	endpoint := c.resourceURL + "/projects/" + url.PathEscape(projectID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	var record projectRecord
	if err := c.do(req, &record); err != nil {
		return nil, err
	}
	if record.ID == "" {
		record.ID = projectID
	}

	return record.toModel(), nil
}

// SubmitEvaluation implements service.Backend.
func (c *Client) SubmitEvaluation(ctx context.Context, payload model.SubmissionPayload) (*model.SubmissionResult, error) {
	if err := payload.Validate(); err != nil {
		return nil, fmt.Errorf("invalid evaluation payload: %w", err)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.resourceURL+"/evaluations", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	// A 2xx with no body comes from a void Apex method.
	resp := submitResponse{Success: true}
	if err := c.do(req, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, &common.BackendError{Message: resp.Message}
	}

	return &model.SubmissionResult{
		ID:          resp.ID,
		Success:     resp.Success,
		SubmittedAt: time.Now(),
	}, nil
}

// do sends req and decodes a successful JSON response into out. An empty
// success body leaves out untouched.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach backend: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			slog.Warn("Failed to close response body", "error", closeErr)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		apiErr := decodeAPIError(body)
		return &common.BackendError{
			StatusCode: resp.StatusCode,
			Code:       apiErr.ErrorCode,
			Message:    apiErr.Message,
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if len(bytes.TrimSpace(body)) == 0 || bytes.Equal(bytes.TrimSpace(body), []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
