// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// The package ships the four preset filter regions and allows region
// selection by name with a documented fallback.
package config
