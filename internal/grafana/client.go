package grafana

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/rfrancotechnologies/egrafana/internal/config"
	"github.com/rfrancotechnologies/egrafana/internal/logging"
)

// Document is an opaque Grafana JSON object. Bodies are not interpreted
// beyond the few fields needed for file naming and import dispatch.
type Document = map[string]any

// Client wraps authenticated HTTP calls to the Grafana REST API.
type Client struct {
	settings *config.Settings
	http     *http.Client
}

// NewClient builds a client from settings. The underlying http.Client
// carries the configured timeout; requests are never retried.
func NewClient(settings *config.Settings) *Client {
	return &Client{
		settings: settings,
		http:     &http.Client{Timeout: settings.HTTPTimeout},
	}
}

// get performs a GET against an API path and decodes the response into out.
func (c *Client) get(path string, out any) error {
	url := c.settings.ServerURL + path
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	c.setHeaders(req, false)

	logging.Logger.Debug("GET", "url", url)
	resp, err := c.http.Do(req)
	if err != nil {
		return &ConnectionError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp, false); err != nil {
		return err
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, c.settings.HTTPMaxBodySize)).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", url, err)
	}
	return nil
}

// post sends body as JSON to an API path. The response body is discarded on
// success and surfaced in the returned error otherwise.
func (c *Client) post(path string, body any) error {
	url := c.settings.ServerURL + path
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	c.setHeaders(req, true)

	logging.Logger.Debug("POST", "url", url)
	resp, err := c.http.Do(req)
	if err != nil {
		return &ConnectionError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	return c.checkStatus(resp, true)
}

func (c *Client) setHeaders(req *http.Request, write bool) {
	if write {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.settings.Bearer != "" {
		req.Header.Set("Authorization", "Bearer "+c.settings.Bearer)
	}
}

// checkStatus maps non-2xx responses onto the error taxonomy. Conflict
// detection only applies to create calls.
func (c *Client) checkStatus(resp *http.Response, create bool) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body := c.readErrorBody(resp)
	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return &AuthError{Status: resp.Status}
	case create && (resp.StatusCode == http.StatusConflict || resp.StatusCode == http.StatusPreconditionFailed):
		return &ConflictError{Status: resp.Status, Body: body}
	}
	return &APIError{Status: resp.Status, Body: body}
}

func (c *Client) readErrorBody(resp *http.Response) string {
	b, err := io.ReadAll(io.LimitReader(resp.Body, c.settings.HTTPMaxBodySize))
	if err != nil {
		return fmt.Sprintf("(failed to read response body: %v)", err)
	}
	return string(bytes.TrimSpace(b))
}
