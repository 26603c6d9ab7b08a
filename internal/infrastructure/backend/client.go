package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"smart-clinic-gateway/config"
	"smart-clinic-gateway/internal/infrastructure/metrics"

	"github.com/sirupsen/logrus"
)

const maxErrorBody = 64 << 10

// Client talks to the remote clinic REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logrus.Logger
	metrics    *metrics.GatewayMetrics
}

func NewClient(cfg config.BackendConfig, log *logrus.Logger, m *metrics.GatewayMetrics) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
		metrics:    m,
	}
}

// BaseURL returns the API root without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do sends one request. A nil out discards the body of a successful reply.
func (c *Client) do(ctx context.Context, op, method, path, token string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", op, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build %s request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.ObserveBackendRequest(op, "error", time.Since(start).Seconds())
		c.log.Warnf("Backend %s %s failed: %+v", method, path, err)
		return fmt.Errorf("%w: %s: %v", ErrNetwork, op, err)
	}
	defer resp.Body.Close()
	c.metrics.ObserveBackendRequest(op, strconv.Itoa(resp.StatusCode), time.Since(start).Seconds())

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.log.Warnf("Backend %s %s returned %d", method, path, resp.StatusCode)
		return errorFromResponse(resp.StatusCode, raw)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read %s response: %v", ErrNetwork, op, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s response: %w", op, err)
	}
	return nil
}

// decodeList accepts both a bare JSON array and a paginated {"results": [...]} envelope.
func decodeList(raw json.RawMessage, out interface{}) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return json.Unmarshal(trimmed, out)
	}

	var page struct {
		Results json.RawMessage `json:"results"`
	}
	if err := json.Unmarshal(trimmed, &page); err != nil {
		return err
	}
	if len(page.Results) == 0 {
		return nil
	}
	return json.Unmarshal(page.Results, out)
}

// ResolveMediaURL turns a profile picture reference into an absolute URL under the API root.
// Absolute URLs on the API host missing the API path prefix get it inserted.
func (c *Client) ResolveMediaURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		media, err := url.Parse(raw)
		if err != nil {
			return raw
		}
		base, err := url.Parse(c.baseURL)
		if err != nil || base.Host != media.Host {
			return raw
		}
		prefix := strings.TrimRight(base.Path, "/")
		if prefix == "" || strings.HasPrefix(media.Path, prefix+"/") {
			return raw
		}
		media.Path = prefix + "/" + strings.TrimLeft(media.Path, "/")
		return media.String()
	}

	if strings.HasPrefix(raw, "/") {
		return c.baseURL + raw
	}
	return c.baseURL + "/" + raw
}
