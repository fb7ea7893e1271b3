// Package config loads, normalizes, and validates kotoba configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// KOTOBA_DATA_DIR. The Config type centralizes every knob the CLI, the local
// API and the playback watcher need, so caption languages, alignment mode and
// storage locations are discovered in one pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
