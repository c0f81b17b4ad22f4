// Package config loads, normalizes, and validates tickgen configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the TICKGEN_OUTPUT_DIR environment
// fallback. The Config type centralizes every knob the generator and CLI
// need: tick rendering, engine slot count, generated routine names, the
// placeholder cue instruction, output locations, run history, and logging.
//
// Always obtain settings through this package so downstream code receives
// expanded paths, canonical enum values, and clear validation errors.
package config
