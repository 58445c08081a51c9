// Package config provides configuration loading, merging, and validation
// facilities for the receitas client.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. JSON config file (path taken from the CONFIG environment variable)
//  3. Built-in defaults
//
// With nothing configured the client talks to http://localhost:3000/api and
// uses the HTTP library's default timeout. The main entry point is
// [GetClientConfig].
package config
