package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"bank-portal/metrics"
)

const maxBodyBytes = 4 << 20

// restClient is the JSON plumbing shared by every service client.
type restClient struct {
	service string
	baseURL string
	http    *http.Client
}

func newRESTClient(service, baseURL string, httpClient *http.Client) *restClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &restClient{
		service: service,
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// do sends in as JSON when non-nil, decodes a successful body into out when
// non-nil and returns the cookies set by the service.
func (c *restClient) do(ctx context.Context, method, path string, cookies []*http.Cookie, in, out any) ([]*http.Cookie, error) {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("%s: encode request: %w", c.service, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", c.service, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.UpstreamDuration.WithLabelValues(c.service, method).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamRequests.WithLabelValues(c.service, method, metrics.StatusClass(0)).Inc()
		slog.Warn("upstream call failed", "service", c.service, "method", method, "path", path, "error", err)
		return nil, fmt.Errorf("%s %s %s: %w", c.service, method, path, err)
	}
	defer resp.Body.Close()
	metrics.UpstreamRequests.WithLabelValues(c.service, method, metrics.StatusClass(resp.StatusCode)).Inc()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%s: read response: %w", c.service, err)
	}

	if resp.StatusCode/100 != 2 {
		apiErr := &APIError{
			Service: c.service,
			Method:  method,
			Path:    path,
			Status:  resp.StatusCode,
			Message: extractMessage(raw),
		}
		slog.Debug("upstream returned error", "service", c.service, "method", method, "path", path,
			"status", resp.StatusCode, "message", apiErr.Message)
		return resp.Cookies(), apiErr
	}

	if out != nil && len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return nil, fmt.Errorf("%s: decode response: %w", c.service, err)
		}
	}
	return resp.Cookies(), nil
}

func (c *restClient) get(ctx context.Context, path string, out any) error {
	_, err := c.do(ctx, http.MethodGet, path, nil, nil, out)
	return err
}

func (c *restClient) send(ctx context.Context, method, path string, in, out any) error {
	_, err := c.do(ctx, method, path, nil, in, out)
	return err
}

func seg(s string) string {
	return "/" + url.PathEscape(s)
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// withoutField re-encodes v as a JSON object minus one key.
func withoutField(v any, field string) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	delete(m, field)
	return m, nil
}
