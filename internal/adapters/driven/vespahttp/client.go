// Package vespahttp talks to a running search cluster over HTTP: the
// config server's control plane on one port and the application's query
// and document APIs on another.
package vespahttp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/goodhamgupta/ex-vespa/internal/core/domain"
	"github.com/goodhamgupta/ex-vespa/internal/core/ports/driven"
)

// Ensure Client implements the cluster-facing ports.
var (
	_ driven.ConfigServer = (*Client)(nil)
	_ driven.QueryAPI     = (*Client)(nil)
	_ driven.DocumentAPI  = (*Client)(nil)
)

// Client is the HTTP adapter for all cluster endpoints.
type Client struct {
	// configURL is the config server base, e.g. "http://localhost:19071".
	configURL string

	// appURL is the application base, e.g. "http://localhost:8080".
	appURL string

	http *http.Client
}

// NewClient creates a cluster client. Base URLs must not end in a slash.
func NewClient(configURL, appURL string) *Client {
	return &Client{
		configURL: configURL,
		appURL:    appURL,
		http:      &http.Client{Timeout: 60 * time.Second},
	}
}

// Ready probes GET {config}/ApplicationStatus. Connection failures are
// reported as not-ready with the transport error attached; the caller's
// polling loop decides what to do with them.
func (c *Client) Ready(ctx context.Context) (bool, error) {
	return c.probe(ctx, c.configURL+"/ApplicationStatus")
}

// ApplicationUp probes GET {app}/ApplicationStatus.
func (c *Client) ApplicationUp(ctx context.Context) (bool, error) {
	return c.probe(ctx, c.appURL+"/ApplicationStatus")
}

func (c *Client) probe(ctx context.Context, statusURL string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, statusURL, nil)
	if err != nil {
		return false, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return false, fmt.Errorf("%w: %v", domain.ErrTransportFailure, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	return resp.StatusCode == http.StatusOK, nil
}

// PrepareAndActivate uploads the archive to the config server's
// prepare-and-activate endpoint. Non-success responses are fatal and
// carry the response body.
func (c *Client) PrepareAndActivate(ctx context.Context, archive []byte) (string, error) {
	endpoint := c.configURL + "/application/v2/tenant/default/prepareandactivate"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(archive))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/zip")
	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrTransportFailure, err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: prepare and activate returned %d: %s",
			domain.ErrUpstreamFailure, resp.StatusCode, string(body))
	}
	return string(body), nil
}

// Query posts a JSON body to the application's search endpoint.
func (c *Client) Query(ctx context.Context, body map[string]any) (driven.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return driven.Response{}, fmt.Errorf("%w: encode query: %v", domain.ErrInvalidArgument, err)
	}
	return c.do(ctx, http.MethodPost, c.appURL+"/search/", payload, "application/json")
}

// EvaluateModel calls the stateless model-evaluation endpoint.
func (c *Client) EvaluateModel(ctx context.Context, modelID string) (driven.Response, error) {
	endpoint := c.appURL + "/model-evaluation/v1/"
	if modelID != "" {
		endpoint += url.PathEscape(modelID)
	}
	return c.do(ctx, http.MethodGet, endpoint, nil, "")
}

// Feed writes a document with PUT.
func (c *Client) Feed(ctx context.Context, namespace, schema, id string, fields map[string]any) (driven.Response, error) {
	payload, err := json.Marshal(map[string]any{"fields": fields})
	if err != nil {
		return driven.Response{}, fmt.Errorf("%w: encode fields: %v", domain.ErrInvalidArgument, err)
	}
	return c.do(ctx, http.MethodPut, c.documentURL(namespace, schema, id), payload, "application/json")
}

// Get fetches a document.
func (c *Client) Get(ctx context.Context, namespace, schema, id string) (driven.Response, error) {
	return c.do(ctx, http.MethodGet, c.documentURL(namespace, schema, id), nil, "")
}

// Remove deletes a document.
func (c *Client) Remove(ctx context.Context, namespace, schema, id string) (driven.Response, error) {
	return c.do(ctx, http.MethodDelete, c.documentURL(namespace, schema, id), nil, "")
}

// RemoveAll deletes every document of the schema in the content cluster
// through a selection delete.
func (c *Client) RemoveAll(ctx context.Context, namespace, schema, cluster string) error {
	endpoint := fmt.Sprintf("%s/document/v1/%s/%s/docid/?cluster=%s&selection=true",
		c.appURL, url.PathEscape(namespace), url.PathEscape(schema), url.QueryEscape(cluster))
	_, err := c.do(ctx, http.MethodDelete, endpoint, nil, "")
	return err
}

// documentURL builds {app}/document/v1/[{namespace}/]{schema}/docid/{id}.
// The namespace segment is omitted when empty.
func (c *Client) documentURL(namespace, schema, id string) string {
	if namespace == "" {
		return fmt.Sprintf("%s/document/v1/%s/docid/%s",
			c.appURL, url.PathEscape(schema), url.PathEscape(id))
	}
	return fmt.Sprintf("%s/document/v1/%s/%s/docid/%s",
		c.appURL, url.PathEscape(namespace), url.PathEscape(schema), url.PathEscape(id))
}

func (c *Client) do(ctx context.Context, method, endpoint string, payload []byte, contentType string) (driven.Response, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return driven.Response{}, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return driven.Response{}, fmt.Errorf("%w: %v", domain.ErrTransportFailure, err)
	}
	defer resp.Body.Close()
	data, _ := io.ReadAll(resp.Body)
	out := driven.Response{Status: resp.StatusCode, Body: data}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return out, fmt.Errorf("%w: %s %s returned %d: %s",
			domain.ErrUpstreamFailure, method, endpoint, resp.StatusCode, string(data))
	}
	return out, nil
}
