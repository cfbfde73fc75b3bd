package driven

import "context"

// PortBinding maps a container port to a host port.
type PortBinding struct {
	// ContainerPort is the port inside the container.
	ContainerPort int

	// HostPort is the port bound on the host.
	HostPort int
}

// ContainerSpec describes the container the runtime should create.
type ContainerSpec struct {
	// Name is the container name, used for find-by-name adoption.
	Name string

	// Image is the engine image reference.
	Image string

	// MemoryBytes is the container memory limit. Zero means unlimited.
	MemoryBytes int64

	// Ports are the requested port bindings.
	Ports []PortBinding
}

// ContainerInfo describes an existing container.
type ContainerInfo struct {
	// ID is the runtime's container identifier.
	ID string

	// Name is the container name.
	Name string

	// Running reports whether the container is currently running.
	Running bool

	// MemoryBytes is the configured memory limit.
	MemoryBytes int64

	// InternalIP is the container's address on the runtime network.
	InternalIP string

	// HostPorts maps container ports to their bound host ports.
	HostPorts map[int]int
}

// ContainerRuntime provides the narrow slice of a container runtime the
// deployment orchestrator needs.
type ContainerRuntime interface {
	// FindByName looks up a container by name. Returns an error
	// wrapping domain.ErrNotFound when no such container exists.
	FindByName(ctx context.Context, name string) (ContainerInfo, error)

	// CreateAndStart creates a container from spec and starts it.
	CreateAndStart(ctx context.Context, spec ContainerSpec) (ContainerInfo, error)

	// Start starts an existing, stopped container.
	Start(ctx context.Context, id string) error

	// Inspect refreshes the info for an existing container.
	Inspect(ctx context.Context, id string) (ContainerInfo, error)

	// Stop stops a running container.
	Stop(ctx context.Context, id string) error
}
