// Package docker implements the container-runtime port against a local
// Docker engine.
package docker

import (
	"context"
	"fmt"
	"strconv"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/client"
	"github.com/docker/go-connections/nat"

	"github.com/goodhamgupta/ex-vespa/internal/core/domain"
	"github.com/goodhamgupta/ex-vespa/internal/core/ports/driven"
	"github.com/goodhamgupta/ex-vespa/internal/logger"
)

// Ensure Runtime implements the interface.
var _ driven.ContainerRuntime = (*Runtime)(nil)

// Runtime talks to the Docker engine through its Go client.
type Runtime struct {
	cli *client.Client
}

// NewRuntime creates a runtime adapter from the environment's Docker
// configuration (DOCKER_HOST and friends).
func NewRuntime() (*Runtime, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("%w: docker client: %v", domain.ErrTransportFailure, err)
	}
	return &Runtime{cli: cli}, nil
}

// FindByName looks a container up by exact name, running or not.
func (r *Runtime) FindByName(ctx context.Context, name string) (driven.ContainerInfo, error) {
	containers, err := r.cli.ContainerList(ctx, container.ListOptions{
		All:     true,
		Filters: filters.NewArgs(filters.Arg("name", name)),
	})
	if err != nil {
		return driven.ContainerInfo{}, fmt.Errorf("list containers: %w", err)
	}
	// The name filter matches substrings; require the exact name.
	for _, c := range containers {
		for _, n := range c.Names {
			if n == "/"+name {
				return r.Inspect(ctx, c.ID)
			}
		}
	}
	return driven.ContainerInfo{}, fmt.Errorf("container %q: %w", name, domain.ErrNotFound)
}

// CreateAndStart creates the container described by spec and starts it.
func (r *Runtime) CreateAndStart(ctx context.Context, spec driven.ContainerSpec) (driven.ContainerInfo, error) {
	exposed, bindings := portMaps(spec.Ports)
	created, err := r.cli.ContainerCreate(ctx,
		&container.Config{
			Image:        spec.Image,
			ExposedPorts: exposed,
		},
		&container.HostConfig{
			PortBindings: bindings,
			Resources:    container.Resources{Memory: spec.MemoryBytes},
		},
		nil, nil, spec.Name)
	if err != nil {
		return driven.ContainerInfo{}, fmt.Errorf("create container %s: %w", spec.Name, err)
	}
	logger.Debug("Created container %s (%s)", spec.Name, created.ID)
	if err := r.Start(ctx, created.ID); err != nil {
		return driven.ContainerInfo{}, err
	}
	return r.Inspect(ctx, created.ID)
}

// Start starts an existing container.
func (r *Runtime) Start(ctx context.Context, id string) error {
	if err := r.cli.ContainerStart(ctx, id, container.StartOptions{}); err != nil {
		return fmt.Errorf("start container %s: %w", id, err)
	}
	return nil
}

// Inspect reads the container's current state, memory limit, internal
// address and bound host ports.
func (r *Runtime) Inspect(ctx context.Context, id string) (driven.ContainerInfo, error) {
	detail, err := r.cli.ContainerInspect(ctx, id)
	if err != nil {
		return driven.ContainerInfo{}, fmt.Errorf("inspect container %s: %w", id, err)
	}
	return containerInfo(detail), nil
}

// Stop stops a running container with the engine's default grace period.
func (r *Runtime) Stop(ctx context.Context, id string) error {
	if err := r.cli.ContainerStop(ctx, id, container.StopOptions{}); err != nil {
		return fmt.Errorf("stop container %s: %w", id, err)
	}
	return nil
}

// portMaps converts the port bindings of a spec into the engine's
// exposed-port set and binding map.
func portMaps(ports []driven.PortBinding) (nat.PortSet, nat.PortMap) {
	exposed := nat.PortSet{}
	bindings := nat.PortMap{}
	for _, p := range ports {
		port := nat.Port(strconv.Itoa(p.ContainerPort) + "/tcp")
		exposed[port] = struct{}{}
		bindings[port] = []nat.PortBinding{{
			HostIP:   "0.0.0.0",
			HostPort: strconv.Itoa(p.HostPort),
		}}
	}
	return exposed, bindings
}

// containerInfo flattens the engine's inspect result into the port's
// shape.
func containerInfo(detail types.ContainerJSON) driven.ContainerInfo {
	info := driven.ContainerInfo{
		ID:        detail.ID,
		HostPorts: map[int]int{},
	}
	if detail.Name != "" {
		info.Name = detail.Name[1:] // strip the engine's leading slash
	}
	if detail.State != nil {
		info.Running = detail.State.Running
	}
	if detail.HostConfig != nil {
		info.MemoryBytes = detail.HostConfig.Memory
	}
	if detail.NetworkSettings != nil {
		info.InternalIP = detail.NetworkSettings.IPAddress
		for port, bindings := range detail.NetworkSettings.Ports {
			if len(bindings) == 0 {
				continue
			}
			hostPort, err := strconv.Atoi(bindings[0].HostPort)
			if err != nil {
				continue
			}
			info.HostPorts[port.Int()] = hostPort
		}
	}
	return info
}
