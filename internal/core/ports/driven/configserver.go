package driven

import "context"

// ConfigServer is the cluster control-plane endpoint that accepts and
// activates a packaged application configuration.
type ConfigServer interface {
	// Ready probes the config server's status endpoint. A false result
	// with a non-nil error means the probe itself failed (connection
	// refused is normal while the server is starting).
	Ready(ctx context.Context) (bool, error)

	// PrepareAndActivate uploads a packaged application archive and
	// activates it. A non-success response is returned as an error
	// wrapping domain.ErrUpstreamFailure and carrying the response
	// body.
	PrepareAndActivate(ctx context.Context, archive []byte) (string, error)
}
