package services

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/goodhamgupta/ex-vespa/internal/core/ports/driven"
	"github.com/goodhamgupta/ex-vespa/internal/logger"
)

// QueryOutcome is the per-input result of a batch query. Exactly one of
// Response and Err is meaningful.
type QueryOutcome struct {
	// Response is the cluster's answer when the query succeeded.
	Response driven.Response

	// Err is the failure for this input, nil on success.
	Err error
}

// QueryService runs queries against the cluster's search endpoint.
type QueryService struct {
	api     driven.QueryAPI
	limiter *rate.Limiter
}

// NewQueryService creates a query service. queriesPerSecond bounds the
// batch operation's request rate; a non-positive value disables
// throttling.
func NewQueryService(api driven.QueryAPI, queriesPerSecond float64) *QueryService {
	var limiter *rate.Limiter
	if queriesPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(queriesPerSecond), 1)
	}
	return &QueryService{api: api, limiter: limiter}
}

// Query posts one JSON query body to the search endpoint.
func (s *QueryService) Query(ctx context.Context, body map[string]any) (driven.Response, error) {
	return s.api.Query(ctx, body)
}

// QueryMany applies Query to every body independently and collects all
// outcomes: one per input, input order preserved, per-item errors. A
// failing item never aborts the batch; only context cancellation stops
// it early, marking the remaining items with the context's error.
func (s *QueryService) QueryMany(ctx context.Context, bodies []map[string]any) []QueryOutcome {
	outcomes := make([]QueryOutcome, len(bodies))
	for i, body := range bodies {
		if s.limiter != nil {
			if err := s.limiter.Wait(ctx); err != nil {
				for j := i; j < len(bodies); j++ {
					outcomes[j] = QueryOutcome{Err: err}
				}
				return outcomes
			}
		}
		resp, err := s.api.Query(ctx, body)
		if err != nil {
			logger.Debug("Query %d/%d failed: %v", i+1, len(bodies), err)
		}
		outcomes[i] = QueryOutcome{Response: resp, Err: err}
	}
	return outcomes
}
