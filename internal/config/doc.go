// Package config loads, normalizes, and validates filezen configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads the TOML file, and honours the FILEZEN_CONFIG
// environment override. Always obtain settings through this package so
// downstream code receives sanitized paths, canonical log formats, and
// clear validation errors.
package config
