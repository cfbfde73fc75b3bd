package driven

import "context"

// Response is the raw outcome of one cluster HTTP operation.
type Response struct {
	// Status is the HTTP status code.
	Status int

	// Body is the raw response payload.
	Body []byte
}

// QueryAPI is the query surface of the running cluster.
type QueryAPI interface {
	// Query posts a JSON query body to the search endpoint.
	Query(ctx context.Context, body map[string]any) (Response, error)

	// ApplicationUp probes the application's status endpoint.
	ApplicationUp(ctx context.Context) (bool, error)

	// EvaluateModel calls the stateless model-evaluation endpoint.
	// An empty modelID lists the available models.
	EvaluateModel(ctx context.Context, modelID string) (Response, error)
}
