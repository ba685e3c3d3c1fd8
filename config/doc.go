// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// Unset fields fall back to the defaults of the guidance engine: a strike
// limit of 3, vertex snapping, edge-triggered reroute and local thresholds.
package config
