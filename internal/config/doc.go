// Package config loads and merges fsched configuration from multiple sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (FSCHED_SCHEDULE_PREFIX, FSCHED_LOG_LEVEL, etc.)
//  3. Config file ($XDG_CONFIG_HOME/fsched/config.json)
//  4. Built-in defaults
//
// Use [Load] to obtain a merged [Config], [Save] to write the config file,
// and [SetField] to update a single key.
package config
