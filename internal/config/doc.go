// Package config provides configuration loading, merging, and validation
// facilities for the client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. JSON or YAML config file
//  4. Command-line flags
//
// The main entry point is [GetClientConfig], which returns the validated,
// client-specific view of the merged [StructuredConfig].
package config
