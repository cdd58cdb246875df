// Package config loads engine configuration from environment variables or
// from a YAML validation profile.
//
// Load parses environment variables into a tagged struct, loading a .env
// file first when one exists. LoadFile reads a YAML profile, which is how
// desks pin per-venue settings (tolerances, market windows) to a file kept
// next to the trade logs.
//
// # Usage
//
//	var cfg check.Config
//	if err := config.Load(&cfg); err != nil {
//	    // handle error
//	}
//
//	// or from a profile file:
//	if err := config.LoadFile("profile.yaml", &cfg); err != nil {
//	    // handle error
//	}
package config
