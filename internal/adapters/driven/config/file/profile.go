package file

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Profile holds the deployment settings the CLI reads on every run:
// where the cluster is, which container serves it and how patient the
// readiness wait should be.
type Profile struct {
	// ContainerName is the engine container adopted or created.
	ContainerName string `toml:"container_name"`

	// Image is the engine image used when the container is created.
	Image string `toml:"image"`

	// MemoryBytes limits the container's memory. Zero means unlimited.
	MemoryBytes int64 `toml:"memory_bytes"`

	// ConfigPort and AppPort are published on the host.
	ConfigPort int `toml:"config_port"`
	AppPort    int `toml:"app_port"`

	// ConfigURL and AppURL override the endpoints derived from the
	// ports. Empty means localhost with the ports above.
	ConfigURL string `toml:"config_url"`
	AppURL    string `toml:"app_url"`

	// PollIntervalSeconds and MaxWaitSeconds tune the readiness loop.
	PollIntervalSeconds int `toml:"poll_interval_seconds"`
	MaxWaitSeconds      int `toml:"max_wait_seconds"`
}

// DefaultProfile returns the profile used when no file exists.
func DefaultProfile() Profile {
	return Profile{
		ContainerName:       "exvespa",
		Image:               "vespaengine/vespa",
		ConfigPort:          19071,
		AppPort:             8080,
		PollIntervalSeconds: 5,
		MaxWaitSeconds:      300,
	}
}

// PollInterval returns the poll interval as a duration.
func (p Profile) PollInterval() time.Duration {
	return time.Duration(p.PollIntervalSeconds) * time.Second
}

// MaxWait returns the readiness deadline as a duration.
func (p Profile) MaxWait() time.Duration {
	return time.Duration(p.MaxWaitSeconds) * time.Second
}

// ResolvedConfigURL returns the config server endpoint, deriving a
// localhost URL from the config port when no override is set.
func (p Profile) ResolvedConfigURL() string {
	if p.ConfigURL != "" {
		return p.ConfigURL
	}
	return fmt.Sprintf("http://localhost:%d", p.ConfigPort)
}

// ResolvedAppURL returns the application endpoint, deriving a localhost
// URL from the application port when no override is set.
func (p Profile) ResolvedAppURL() string {
	if p.AppURL != "" {
		return p.AppURL
	}
	return fmt.Sprintf("http://localhost:%d", p.AppPort)
}

// ProfileStore loads and saves the deployment profile.
type ProfileStore struct {
	filePath string
}

// NewProfileStore creates a store rooted at configDir. If configDir is
// empty, defaults to ~/.exvespa.
func NewProfileStore(configDir string) (*ProfileStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".exvespa")
	}

	// Ensure directory exists
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	return &ProfileStore{filePath: filepath.Join(configDir, "config.toml")}, nil
}

// Load reads the profile, returning DefaultProfile when no file exists.
// Fields absent from the file keep their default values.
func (s *ProfileStore) Load() (Profile, error) {
	p := DefaultProfile()
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return p, nil
		}
		return Profile{}, err
	}
	if err := toml.Unmarshal(data, &p); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Save persists the profile to disk.
func (s *ProfileStore) Save(p Profile) error {
	data, err := toml.Marshal(p)
	if err != nil {
		return err
	}

	// Write with restricted permissions
	return os.WriteFile(s.filePath, data, 0600)
}
