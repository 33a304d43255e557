// Package client provides the HTTP client for the SkipEngine identity lookup API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"skiptrace/internal/skiptrace/transport"
	"skiptrace/platform/apperr"
	"skiptrace/platform/config"
	"skiptrace/platform/logger"
)

const (
	apiKeyHeader   = "x-api-key"
	testKeyPrefix  = "test-"
	maxBodyBytes   = 4 << 20
	defaultTimeout = 30 * time.Second
	opSend         = "skipengine.send"
)

// Client is the HTTP client for SkipEngine.
type Client struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
	log        *logger.Logger
}

// New creates a new SkipEngine client from config.
func New(cfg config.SkipTraceConfig, log *logger.Logger) *Client {
	timeout := cfg.GetSkipEngineTimeout()
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	apiKey := cfg.GetSkipEngineAPIKey()
	if cfg.UseSkipEngineTestKey() {
		apiKey = testKeyPrefix + apiKey
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   cfg.GetSkipEngineEndpoint(),
		apiKey:     apiKey,
		log:        log,
	}
}

// Endpoint returns the URL requests are posted to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Send posts one lookup request. Non-success outcomes come back as
// *apperr.Error with kind NotFound, Unauthorized, Upstream, Transport or
// BadResponse.
func (c *Client) Send(ctx context.Context, lookup transport.LookupRequest) (*transport.LookupResponse, error) {
	payload, err := json.Marshal(lookup)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, "encode request", err).WithOp(opSend)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, "create request", err).WithOp(opSend)
	}
	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	log := c.log.WithContext(ctx)
	log.LookupSent(c.endpoint, lookup.State, lookup.Zip)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("skipengine request failed", "error", err)
		return nil, apperr.Wrap(apperr.KindTransport, "http request", err).WithOp(opSend)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		log.Error("skipengine read failed", "error", err, "status", resp.StatusCode)
		return nil, apperr.Wrap(apperr.KindTransport, "read response", err).WithOp(opSend).WithStatus(resp.StatusCode)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// Success - continue to decode
	case resp.StatusCode == http.StatusNotFound:
		log.Warn("skipengine endpoint or record not found", "status", resp.StatusCode)
		return nil, apperr.NotFound("no record").WithOp(opSend).WithStatus(resp.StatusCode)
	case resp.StatusCode == http.StatusUnauthorized:
		log.Error("skipengine unauthorized, check API key", "status", resp.StatusCode)
		return nil, apperr.Unauthorized("invalid API key").WithOp(opSend).WithStatus(resp.StatusCode)
	default:
		log.Error("skipengine upstream error", "status", resp.StatusCode, "body", truncate(body, 512))
		return nil, apperr.New(apperr.FromHTTPStatus(resp.StatusCode), fmt.Sprintf("upstream status %d", resp.StatusCode)).
			WithOp(opSend).WithStatus(resp.StatusCode)
	}

	log.Debug("skipengine response", "status", resp.StatusCode, "bytes", len(body), "body", truncate(body, 8192))

	decoded, err := transport.DecodeLookupResponse(body)
	if err != nil {
		log.Error("skipengine decode failed", "error", err)
		return nil, apperr.Wrap(apperr.KindBadResponse, "decode response", err).WithOp(opSend).WithStatus(resp.StatusCode)
	}

	return decoded, nil
}

func truncate(body []byte, limit int) string {
	if len(body) <= limit {
		return string(body)
	}
	return string(body[:limit]) + "..."
}
