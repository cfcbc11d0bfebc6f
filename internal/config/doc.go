// Package config provides the configuration of a report run: destination,
// page geometry, PDF options and where the render history is kept.
package config
