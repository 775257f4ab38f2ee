// Package config loads gochunk settings from defaults, an optional YAML file,
// .env files and GOCHUNK_* environment variables, and validates them.
package config
