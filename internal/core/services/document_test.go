package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goodhamgupta/ex-vespa/internal/core/ports/driven"
)

// fakeDocumentAPI records the last call made against it.
type fakeDocumentAPI struct {
	namespace string
	schema    string
	id        string
	fields    map[string]any
	cluster   string
	removed   bool
}

func (f *fakeDocumentAPI) Feed(_ context.Context, namespace, schema, id string, fields map[string]any) (driven.Response, error) {
	f.namespace, f.schema, f.id, f.fields = namespace, schema, id, fields
	return driven.Response{Status: 200}, nil
}

func (f *fakeDocumentAPI) Get(_ context.Context, namespace, schema, id string) (driven.Response, error) {
	f.namespace, f.schema, f.id = namespace, schema, id
	return driven.Response{Status: 200, Body: []byte(`{"fields":{}}`)}, nil
}

func (f *fakeDocumentAPI) Remove(_ context.Context, namespace, schema, id string) (driven.Response, error) {
	f.namespace, f.schema, f.id = namespace, schema, id
	return driven.Response{Status: 200}, nil
}

func (f *fakeDocumentAPI) RemoveAll(_ context.Context, namespace, schema, cluster string) error {
	f.namespace, f.schema, f.cluster = namespace, schema, cluster
	f.removed = true
	return nil
}

// TestDocumentService_FeedKeepsExplicitID tests that a caller-supplied
// id is used verbatim
func TestDocumentService_FeedKeepsExplicitID(t *testing.T) {
	api := &fakeDocumentAPI{}
	svc := NewDocumentService(api)

	id, resp, err := svc.Feed(context.Background(), "ns", "product", "doc-1", map[string]any{"title": "t"})

	require.NoError(t, err)
	assert.Equal(t, "doc-1", id)
	assert.Equal(t, "doc-1", api.id)
	assert.Equal(t, 200, resp.Status)
	assert.Equal(t, map[string]any{"title": "t"}, api.fields)
}

// TestDocumentService_FeedGeneratesID tests uuid generation for an
// empty id
func TestDocumentService_FeedGeneratesID(t *testing.T) {
	api := &fakeDocumentAPI{}
	svc := NewDocumentService(api)

	id, _, err := svc.Feed(context.Background(), "ns", "product", "", map[string]any{"title": "t"})

	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, id, api.id)
	_, parseErr := uuid.Parse(id)
	assert.NoError(t, parseErr)
}

// TestDocumentService_GetRemove tests id-addressed operations
func TestDocumentService_GetRemove(t *testing.T) {
	api := &fakeDocumentAPI{}
	svc := NewDocumentService(api)

	resp, err := svc.Get(context.Background(), "ns", "product", "doc-1")
	require.NoError(t, err)
	assert.Equal(t, 200, resp.Status)
	assert.Equal(t, "product", api.schema)

	_, err = svc.Remove(context.Background(), "ns", "product", "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "doc-1", api.id)
}

// TestDocumentService_RemoveAll tests cluster-wide deletion routing
func TestDocumentService_RemoveAll(t *testing.T) {
	api := &fakeDocumentAPI{}
	svc := NewDocumentService(api)

	err := svc.RemoveAll(context.Background(), "ns", "product", "myapp_content")

	require.NoError(t, err)
	assert.True(t, api.removed)
	assert.Equal(t, "myapp_content", api.cluster)
}
