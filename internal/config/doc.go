// Package config provides configuration loading, merging, and validation
// for the bookman binaries.
//
// Values are collected from three sources and merged in priority order
// (earlier sources win for non-zero fields): environment variables
// (including an optional .env file), command-line flags, and an optional
// JSON configuration file whose path is itself resolved from the first
// two sources.
package config
