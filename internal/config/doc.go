// Package config provides user configuration management for flexscan.
//
// This package manages a YAML-based configuration file that stores
// user-defined metadata for FlexRadio transceivers seen on the network
// (nicknames, last known address and status) together with application
// preferences. The discovery core itself is persistence-free; only the
// CLI layer reads and writes this file.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/flexscan/config.yaml or $HOME/.config/flexscan/config.yaml
//   - macOS: $HOME/.config/flexscan/config.yaml
//   - Windows: %LOCALAPPDATA%\flexscan\config.yaml
//
// # Usage Example
//
//	// Load the global registry
//	registry, err := config.LoadRegistry()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Record a sighting from a decoded announcement
//	registry.RecordSighting("1234-5678", config.Sighting{
//	    IP:     "192.168.1.44",
//	    Status: "Available",
//	    Model:  "FLEX-6600",
//	})
//
//	// Save changes atomically
//	if err := registry.Save(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Thread Safety
//
// The global registry uses sync.Once for safe initialization across goroutines.
// File operations are protected by a mutex to ensure atomic writes.
package config
