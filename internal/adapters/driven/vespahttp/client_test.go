package vespahttp

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goodhamgupta/ex-vespa/internal/core/domain"
)

// recordingServer captures the last request it served.
type recordingServer struct {
	*httptest.Server
	method string
	path   string
	query  string
	header http.Header
	body   []byte
}

func newRecordingServer(t *testing.T, status int, response string) *recordingServer {
	t.Helper()
	rs := &recordingServer{}
	rs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rs.method = r.Method
		rs.path = r.URL.Path
		rs.query = r.URL.RawQuery
		rs.header = r.Header.Clone()
		rs.body, _ = io.ReadAll(r.Body)
		w.WriteHeader(status)
		io.WriteString(w, response)
	}))
	t.Cleanup(rs.Server.Close)
	return rs
}

// TestClient_Ready tests the config server readiness probe
func TestClient_Ready(t *testing.T) {
	srv := newRecordingServer(t, http.StatusOK, "{}")
	c := NewClient(srv.URL, srv.URL)

	ok, err := c.Ready(context.Background())

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "/ApplicationStatus", srv.path)
}

// TestClient_ReadyNotYet tests a 5xx probe result
func TestClient_ReadyNotYet(t *testing.T) {
	srv := newRecordingServer(t, http.StatusServiceUnavailable, "")
	c := NewClient(srv.URL, srv.URL)

	ok, err := c.Ready(context.Background())

	require.NoError(t, err)
	assert.False(t, ok)
}

// TestClient_ReadyTransportFailure tests a refused connection
func TestClient_ReadyTransportFailure(t *testing.T) {
	srv := newRecordingServer(t, http.StatusOK, "")
	srv.Close()
	c := NewClient(srv.URL, srv.URL)

	ok, err := c.Ready(context.Background())

	assert.False(t, ok)
	assert.ErrorIs(t, err, domain.ErrTransportFailure)
}

// TestClient_PrepareAndActivate tests the package upload
func TestClient_PrepareAndActivate(t *testing.T) {
	srv := newRecordingServer(t, http.StatusOK, `{"message":"activated"}`)
	c := NewClient(srv.URL, srv.URL)

	msg, err := c.PrepareAndActivate(context.Background(), []byte("archive-bytes"))

	require.NoError(t, err)
	assert.Equal(t, `{"message":"activated"}`, msg)
	assert.Equal(t, http.MethodPost, srv.method)
	assert.Equal(t, "/application/v2/tenant/default/prepareandactivate", srv.path)
	assert.Equal(t, "application/zip", srv.header.Get("Content-Type"))
	assert.Equal(t, []byte("archive-bytes"), srv.body)
}

// TestClient_PrepareAndActivateRejected tests that the config server's
// error body is surfaced
func TestClient_PrepareAndActivateRejected(t *testing.T) {
	srv := newRecordingServer(t, http.StatusBadRequest, `{"error":"invalid services.xml"}`)
	c := NewClient(srv.URL, srv.URL)

	_, err := c.PrepareAndActivate(context.Background(), []byte("archive"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstreamFailure)
	assert.Contains(t, err.Error(), "invalid services.xml")
	assert.Contains(t, err.Error(), "400")
}

// TestClient_Query tests the search endpoint call
func TestClient_Query(t *testing.T) {
	srv := newRecordingServer(t, http.StatusOK, `{"root":{}}`)
	c := NewClient(srv.URL, srv.URL)

	resp, err := c.Query(context.Background(), map[string]any{"yql": "select * from product where true"})

	require.NoError(t, err)
	assert.Equal(t, 200, resp.Status)
	assert.Equal(t, `{"root":{}}`, string(resp.Body))
	assert.Equal(t, http.MethodPost, srv.method)
	assert.Equal(t, "/search/", srv.path)
	assert.Equal(t, "application/json", srv.header.Get("Content-Type"))

	var sent map[string]any
	require.NoError(t, json.Unmarshal(srv.body, &sent))
	assert.Equal(t, "select * from product where true", sent["yql"])
}

// TestClient_EvaluateModel tests the model evaluation endpoint paths
func TestClient_EvaluateModel(t *testing.T) {
	srv := newRecordingServer(t, http.StatusOK, "{}")
	c := NewClient(srv.URL, srv.URL)

	_, err := c.EvaluateModel(context.Background(), "ranker")
	require.NoError(t, err)
	assert.Equal(t, "/model-evaluation/v1/ranker", srv.path)

	_, err = c.EvaluateModel(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "/model-evaluation/v1/", srv.path)
}

// TestClient_Feed tests the document write
func TestClient_Feed(t *testing.T) {
	srv := newRecordingServer(t, http.StatusOK, `{"id":"id:ns:product::doc-1"}`)
	c := NewClient(srv.URL, srv.URL)

	resp, err := c.Feed(context.Background(), "ns", "product", "doc-1", map[string]any{"title": "hello"})

	require.NoError(t, err)
	assert.Equal(t, 200, resp.Status)
	assert.Equal(t, http.MethodPut, srv.method)
	assert.Equal(t, "/document/v1/ns/product/docid/doc-1", srv.path)

	var sent map[string]any
	require.NoError(t, json.Unmarshal(srv.body, &sent))
	assert.Equal(t, map[string]any{"title": "hello"}, sent["fields"])
}

// TestClient_DocumentURLWithoutNamespace tests that the namespace
// segment is omitted when empty
func TestClient_DocumentURLWithoutNamespace(t *testing.T) {
	srv := newRecordingServer(t, http.StatusOK, "{}")
	c := NewClient(srv.URL, srv.URL)

	_, err := c.Get(context.Background(), "", "product", "doc-1")

	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, srv.method)
	assert.Equal(t, "/document/v1/product/docid/doc-1", srv.path)
}

// TestClient_Remove tests document deletion
func TestClient_Remove(t *testing.T) {
	srv := newRecordingServer(t, http.StatusOK, "{}")
	c := NewClient(srv.URL, srv.URL)

	_, err := c.Remove(context.Background(), "ns", "product", "doc-1")

	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, srv.method)
	assert.Equal(t, "/document/v1/ns/product/docid/doc-1", srv.path)
}

// TestClient_RemoveAll tests the selection delete parameters
func TestClient_RemoveAll(t *testing.T) {
	srv := newRecordingServer(t, http.StatusOK, "{}")
	c := NewClient(srv.URL, srv.URL)

	err := c.RemoveAll(context.Background(), "ns", "product", "myapp_content")

	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, srv.method)
	assert.Equal(t, "/document/v1/ns/product/docid/", srv.path)
	assert.Equal(t, "cluster=myapp_content&selection=true", srv.query)
}

// TestClient_GetUpstreamFailure tests that a non-2xx document read is
// wrapped but still carries the response
func TestClient_GetUpstreamFailure(t *testing.T) {
	srv := newRecordingServer(t, http.StatusNotFound, `{"message":"not found"}`)
	c := NewClient(srv.URL, srv.URL)

	resp, err := c.Get(context.Background(), "ns", "product", "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstreamFailure)
	assert.Equal(t, 404, resp.Status)
	assert.Equal(t, `{"message":"not found"}`, string(resp.Body))
}
