// Package file provides the file-based deployment profile store.
// The profile is persisted as TOML in the exvespa config directory.
package file
