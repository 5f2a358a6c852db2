// Package config provides configuration loading, merging, and validation
// facilities for the smoke client and the stub server.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables, with .env.local loaded beforehand
//  2. Command-line flags
//  3. JSON config file
//
// The main entry points are [GetClientConfig] for the smoke client and
// [GetServerConfig] for the stub server; both are views over the merged
// [StructuredConfig].
package config
