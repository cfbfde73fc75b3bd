package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/goodhamgupta/ex-vespa/internal/core/ports/driven"
	"github.com/goodhamgupta/ex-vespa/internal/logger"
)

// DocumentService provides document CRUD against the running cluster.
type DocumentService struct {
	api driven.DocumentAPI
}

// NewDocumentService creates a document service.
func NewDocumentService(api driven.DocumentAPI) *DocumentService {
	return &DocumentService{api: api}
}

// Feed writes a document. When id is empty a fresh uuid is generated so
// callers can feed without inventing identifiers. Returns the id used.
func (s *DocumentService) Feed(
	ctx context.Context, namespace, schema, id string, fields map[string]any,
) (string, driven.Response, error) {
	if id == "" {
		id = uuid.NewString()
		logger.Debug("Generated document id %s", id)
	}
	resp, err := s.api.Feed(ctx, namespace, schema, id, fields)
	return id, resp, err
}

// Get fetches a document by id.
func (s *DocumentService) Get(ctx context.Context, namespace, schema, id string) (driven.Response, error) {
	return s.api.Get(ctx, namespace, schema, id)
}

// Remove deletes a document by id.
func (s *DocumentService) Remove(ctx context.Context, namespace, schema, id string) (driven.Response, error) {
	return s.api.Remove(ctx, namespace, schema, id)
}

// RemoveAll deletes every document of the schema in the given content
// cluster.
func (s *DocumentService) RemoveAll(ctx context.Context, namespace, schema, cluster string) error {
	logger.Warn("Removing all %s documents in cluster %s", schema, cluster)
	return s.api.RemoveAll(ctx, namespace, schema, cluster)
}
