package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"controlsync/models"
)

// ReportServerClient implements models.ReportClient over the report server's
// repository REST surface with per-organization basic auth.
type ReportServerClient struct {
	baseURL string
	orgs    map[string]models.Org
	http    *http.Client
}

// NewReportServerClient creates a client for the server at baseURL using the
// credentials of the given organizations.
func NewReportServerClient(baseURL string, orgs []models.Org) *ReportServerClient {
	byID := make(map[string]models.Org, len(orgs))
	for _, org := range orgs {
		byID[org.Org] = org
	}
	return &ReportServerClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		orgs:    byID,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// inputControlList mirrors the server's input-controls listing response.
type inputControlList struct {
	InputControl []struct {
		Label string `json:"label"`
		State struct {
			Options []struct {
				Value string `json:"value"`
			} `json:"options"`
		} `json:"state"`
	} `json:"inputControl"`
}

// ListInputControls fetches the legal-value domain for a view.
func (c *ReportServerClient) ListInputControls(ctx context.Context, org, viewPath string) (models.Domain, error) {
	url := c.baseURL + "/orgs/" + org + "/views" + viewPath + "/inputControls"
	body, err := c.roundTrip(ctx, org, http.MethodGet, url, nil, "")
	if err != nil {
		return nil, &models.TransportError{Op: "list input controls", Path: viewPath, Err: err}
	}

	var listing inputControlList
	if err := json.Unmarshal(body, &listing); err != nil {
		return nil, &models.TransportError{Op: "list input controls", Path: viewPath, Err: errors.Wrap(err, "decode response")}
	}

	domain := make(models.Domain, len(listing.InputControl))
	for _, control := range listing.InputControl {
		options := make([]string, 0, len(control.State.Options))
		for _, option := range control.State.Options {
			options = append(options, option.Value)
		}
		domain[control.Label] = options
	}
	return domain, nil
}

// FetchResource returns the raw XML bytes of a repository resource.
func (c *ReportServerClient) FetchResource(ctx context.Context, org, path string) ([]byte, error) {
	url := c.baseURL + "/orgs/" + org + "/resources" + path
	body, err := c.roundTrip(ctx, org, http.MethodGet, url, nil, "")
	if err != nil {
		return nil, &models.TransportError{Op: "fetch", Path: path, Err: err}
	}
	return body, nil
}

// PutResource overwrites a repository resource.
func (c *ReportServerClient) PutResource(ctx context.Context, org, path string, body []byte, contentType string) error {
	url := c.baseURL + "/orgs/" + org + "/resources" + path
	if _, err := c.roundTrip(ctx, org, http.MethodPut, url, body, contentType); err != nil {
		return &models.TransportError{Op: "put", Path: path, Err: err}
	}
	return nil
}

// roundTrip issues one request with org credentials and a correlation ID and
// returns the response body. Any non-2xx status is an error carrying a
// snippet of the response.
func (c *ReportServerClient) roundTrip(ctx context.Context, org, method, url string, body []byte, contentType string) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("X-Request-ID", uuid.New().String())
	if cred, ok := c.orgs[org]; ok && cred.Username != "" {
		req.SetBasicAuth(cred.Username, cred.Password)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, errors.Wrap(err, "read response")
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Errorf("unexpected status %d: %s", resp.StatusCode, snippet(respBody))
	}
	return respBody, nil
}

func snippet(body []byte) string {
	const max = 200
	s := strings.TrimSpace(string(body))
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
