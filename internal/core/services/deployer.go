package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodhamgupta/ex-vespa/internal/core/domain"
	"github.com/goodhamgupta/ex-vespa/internal/core/ports/driven"
	"github.com/goodhamgupta/ex-vespa/internal/logger"
)

// DeployState is the orchestrator's position in the deployment protocol.
type DeployState int

const (
	StateContainerAbsent DeployState = iota
	StateContainerStarting
	StateContainerRunning
	StateConfigServerUnready
	StateConfigServerReady
	StatePackageUploaded
	StateActivated
	StateFailed
)

// String returns the state's protocol name.
func (s DeployState) String() string {
	switch s {
	case StateContainerAbsent:
		return "ContainerAbsent"
	case StateContainerStarting:
		return "ContainerStarting"
	case StateContainerRunning:
		return "ContainerRunning"
	case StateConfigServerUnready:
		return "ConfigServerUnready"
	case StateConfigServerReady:
		return "ConfigServerReady"
	case StatePackageUploaded:
		return "PackageUploaded"
	case StateActivated:
		return "Activated"
	case StateFailed:
		return "Failed"
	}
	return fmt.Sprintf("DeployState(%d)", int(s))
}

// Deployment protocol defaults.
const (
	DefaultPollInterval = 5 * time.Second
	DefaultMaxWait      = 300 * time.Second
	DefaultImage        = "vespaengine/vespa"
	DefaultConfigPort   = 19071
	DefaultAppPort      = 8080
)

// DeployConfig parametrises the deployment protocol.
type DeployConfig struct {
	// ContainerName is the runtime container adopted or created.
	ContainerName string

	// Image is the engine image used when the container must be created.
	Image string

	// MemoryBytes is the container memory limit. Zero means unlimited.
	MemoryBytes int64

	// ConfigPort and AppPort are published on the host under the same
	// numbers.
	ConfigPort int
	AppPort    int

	// PollInterval is the fixed readiness polling interval. Polling is
	// fixed-interval, not exponential backoff.
	PollInterval time.Duration

	// MaxWait is the hard readiness deadline.
	MaxWait time.Duration

	// WaitForApplication also waits for the application endpoint after
	// activation.
	WaitForApplication bool
}

// withDefaults fills in unset protocol parameters.
func (c DeployConfig) withDefaults() DeployConfig {
	if c.Image == "" {
		c.Image = DefaultImage
	}
	if c.ConfigPort == 0 {
		c.ConfigPort = DefaultConfigPort
	}
	if c.AppPort == 0 {
		c.AppPort = DefaultAppPort
	}
	if c.PollInterval <= 0 {
		c.PollInterval = DefaultPollInterval
	}
	if c.MaxWait <= 0 {
		c.MaxWait = DefaultMaxWait
	}
	return c
}

// Deployer drives a cluster from "not running" to "serving the new
// configuration": ensure the container, wait for the control plane,
// upload the package and activate it. Each step's precondition is the
// previous step's postcondition, so the protocol is strictly sequential.
type Deployer struct {
	runtime      driven.ContainerRuntime
	configServer driven.ConfigServer
	queryAPI     driven.QueryAPI
	cfg          DeployConfig
}

// NewDeployer creates a deployment orchestrator. The queryAPI may be nil
// when WaitForApplication is off.
func NewDeployer(
	runtime driven.ContainerRuntime,
	configServer driven.ConfigServer,
	queryAPI driven.QueryAPI,
	cfg DeployConfig,
) (*Deployer, error) {
	if cfg.ContainerName == "" {
		return nil, fmt.Errorf("%w: container name is required", domain.ErrInvalidArgument)
	}
	return &Deployer{
		runtime:      runtime,
		configServer: configServer,
		queryAPI:     queryAPI,
		cfg:          cfg.withDefaults(),
	}, nil
}

// Deploy runs the full protocol with the packaged archive. Re-running
// against an already activated package succeeds; activation is
// last-write-wins on the cluster side.
func (d *Deployer) Deploy(ctx context.Context, archive []byte) error {
	if _, err := d.EnsureContainer(ctx); err != nil {
		return err
	}
	if err := d.WaitUntilReady(ctx); err != nil {
		return err
	}
	logger.Section("Prepare and activate")
	msg, err := d.configServer.PrepareAndActivate(ctx, archive)
	if err != nil {
		return err
	}
	logger.Info("Activated: %s", msg)
	if d.cfg.WaitForApplication {
		if err := d.waitFor(ctx, "application", d.queryAPI.ApplicationUp); err != nil {
			return err
		}
	}
	return nil
}

// EnsureContainer adopts the named container if it exists, starting it
// when stopped, and creates one otherwise. Idempotent: re-invoking it
// never creates a duplicate.
func (d *Deployer) EnsureContainer(ctx context.Context) (driven.ContainerInfo, error) {
	logger.Section("Ensure container")
	info, err := d.runtime.FindByName(ctx, d.cfg.ContainerName)
	switch {
	case err == nil:
		logger.Debug("Adopting container %s (%s)", info.Name, info.ID)
		if !info.Running {
			if err := d.runtime.Start(ctx, info.ID); err != nil {
				return driven.ContainerInfo{}, err
			}
			return d.runtime.Inspect(ctx, info.ID)
		}
		return info, nil
	case errors.Is(err, domain.ErrNotFound):
		logger.Debug("Creating container %s from %s", d.cfg.ContainerName, d.cfg.Image)
		return d.runtime.CreateAndStart(ctx, driven.ContainerSpec{
			Name:        d.cfg.ContainerName,
			Image:       d.cfg.Image,
			MemoryBytes: d.cfg.MemoryBytes,
			Ports: []driven.PortBinding{
				{ContainerPort: d.cfg.AppPort, HostPort: d.cfg.AppPort},
				{ContainerPort: d.cfg.ConfigPort, HostPort: d.cfg.ConfigPort},
			},
		})
	default:
		return driven.ContainerInfo{}, err
	}
}

// WaitUntilReady polls the config server's status endpoint on the fixed
// interval until it reports healthy or the deadline elapses.
func (d *Deployer) WaitUntilReady(ctx context.Context) error {
	logger.Section("Wait for config server")
	return d.waitFor(ctx, "config server", d.configServer.Ready)
}

// waitFor is the protocol's only retry loop: fixed-interval polling with
// a hard deadline. Context cancellation reports a distinct outcome from
// a timeout.
func (d *Deployer) waitFor(ctx context.Context, what string, probe func(context.Context) (bool, error)) error {
	start := time.Now()
	for attempt := 1; ; attempt++ {
		ok, err := probe(ctx)
		if ok {
			logger.Debug("%s ready after %d checks", what, attempt)
			return nil
		}
		if err != nil {
			logger.Debug("%s not ready (attempt %d): %v", what, attempt, err)
		} else {
			logger.Debug("%s not ready (attempt %d)", what, attempt)
		}
		if time.Since(start)+d.cfg.PollInterval > d.cfg.MaxWait {
			return fmt.Errorf("%s not ready after waiting %s: %w", what, d.cfg.MaxWait, domain.ErrTimeout)
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("waiting for %s: %w", what, domain.ErrCancelled)
		case <-time.After(d.cfg.PollInterval):
		}
	}
}

// Status probes the cluster and reports the protocol state it is in.
func (d *Deployer) Status(ctx context.Context) (DeployState, error) {
	info, err := d.runtime.FindByName(ctx, d.cfg.ContainerName)
	if errors.Is(err, domain.ErrNotFound) {
		return StateContainerAbsent, nil
	}
	if err != nil {
		return StateFailed, err
	}
	if !info.Running {
		return StateContainerAbsent, nil
	}
	if ok, _ := d.configServer.Ready(ctx); !ok {
		return StateConfigServerUnready, nil
	}
	if d.queryAPI != nil {
		if up, _ := d.queryAPI.ApplicationUp(ctx); up {
			return StateActivated, nil
		}
	}
	return StateConfigServerReady, nil
}

// Destroy stops the named container. Missing containers are not an
// error; destroy is idempotent.
func (d *Deployer) Destroy(ctx context.Context) error {
	info, err := d.runtime.FindByName(ctx, d.cfg.ContainerName)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	logger.Info("Stopping container %s", info.Name)
	return d.runtime.Stop(ctx, info.ID)
}
