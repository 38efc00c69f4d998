// Package config handles configuration management for doksnet.
// It merges, in order of increasing precedence, the embedded defaults, the
// user config file, the project .doksnet.toml and DOKSNET_* environment
// variables.
package config
