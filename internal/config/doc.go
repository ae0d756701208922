// Package config provides configuration loading, merging, and validation
// facilities for the relay.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. .env file (only for variables not already present in the environment)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// Defaults are filled in after merging, and the result is validated before
// it is returned by [GetStructuredConfig].
package config
