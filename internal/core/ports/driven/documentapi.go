package driven

import "context"

// DocumentAPI is the document CRUD surface of the running cluster.
type DocumentAPI interface {
	// Feed writes a document's fields under the given id.
	Feed(ctx context.Context, namespace, schema, id string, fields map[string]any) (Response, error)

	// Get fetches a document by id.
	Get(ctx context.Context, namespace, schema, id string) (Response, error)

	// Remove deletes a document by id.
	Remove(ctx context.Context, namespace, schema, id string) (Response, error)

	// RemoveAll deletes every document of the schema in the given
	// content cluster.
	RemoveAll(ctx context.Context, namespace, schema, cluster string) error
}
