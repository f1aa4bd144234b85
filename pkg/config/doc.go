// Package config loads the engine's configuration (ingestion defaults and
// logging) from TABULAR_* environment variables overlaid by an optional
// YAML file, and builds slog loggers from the logging section.
package config
