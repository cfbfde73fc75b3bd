package docker

import (
	"testing"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goodhamgupta/ex-vespa/internal/core/ports/driven"
)

// TestPortMaps tests conversion of port bindings into the engine's maps
func TestPortMaps(t *testing.T) {
	exposed, bindings := portMaps([]driven.PortBinding{
		{ContainerPort: 8080, HostPort: 8080},
		{ContainerPort: 19071, HostPort: 19071},
	})

	require.Len(t, exposed, 2)
	assert.Contains(t, exposed, nat.Port("8080/tcp"))
	assert.Contains(t, exposed, nat.Port("19071/tcp"))

	require.Len(t, bindings, 2)
	assert.Equal(t, []nat.PortBinding{{HostIP: "0.0.0.0", HostPort: "8080"}}, bindings["8080/tcp"])
	assert.Equal(t, []nat.PortBinding{{HostIP: "0.0.0.0", HostPort: "19071"}}, bindings["19071/tcp"])
}

// TestPortMaps_Empty tests that no bindings produce empty maps
func TestPortMaps_Empty(t *testing.T) {
	exposed, bindings := portMaps(nil)

	assert.Empty(t, exposed)
	assert.Empty(t, bindings)
}

// TestContainerInfo tests flattening of the engine's inspect result
func TestContainerInfo(t *testing.T) {
	detail := types.ContainerJSON{
		ContainerJSONBase: &types.ContainerJSONBase{
			ID:   "abc123",
			Name: "/exvespa",
			State: &types.ContainerState{
				Running: true,
			},
			HostConfig: &container.HostConfig{
				Resources: container.Resources{Memory: 4 << 30},
			},
		},
		NetworkSettings: &types.NetworkSettings{
			DefaultNetworkSettings: types.DefaultNetworkSettings{
				IPAddress: "172.17.0.2",
			},
			NetworkSettingsBase: types.NetworkSettingsBase{
				Ports: nat.PortMap{
					"8080/tcp":  []nat.PortBinding{{HostIP: "0.0.0.0", HostPort: "8080"}},
					"19071/tcp": []nat.PortBinding{{HostIP: "0.0.0.0", HostPort: "19071"}},
					"19050/tcp": nil, // exposed but unbound
				},
			},
		},
	}

	info := containerInfo(detail)

	assert.Equal(t, "abc123", info.ID)
	assert.Equal(t, "exvespa", info.Name)
	assert.True(t, info.Running)
	assert.Equal(t, int64(4<<30), info.MemoryBytes)
	assert.Equal(t, "172.17.0.2", info.InternalIP)
	assert.Equal(t, map[int]int{8080: 8080, 19071: 19071}, info.HostPorts)
}

// TestContainerInfo_Sparse tests an inspect result with nil sections
func TestContainerInfo_Sparse(t *testing.T) {
	info := containerInfo(types.ContainerJSON{
		ContainerJSONBase: &types.ContainerJSONBase{ID: "abc123"},
	})

	assert.Equal(t, "abc123", info.ID)
	assert.Empty(t, info.Name)
	assert.False(t, info.Running)
	assert.Empty(t, info.HostPorts)
}
