// Package config provides configuration loading, merging, and validation
// for the upload client and the development server.
//
// Configuration is assembled from several sources. For every field the first
// source that sets a non-zero value wins, in this order:
//  1. Command-line flags
//  2. Environment variables
//  3. JSON config file
//  4. Built-in defaults
//
// The entry points are [GetClientConfig] and [GetServerConfig]; both return a
// role-specific view of the merged [StructuredConfig].
package config
