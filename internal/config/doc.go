// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (the first source that sets a field wins):
//  1. Environment variables, optionally seeded from a .env file
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the API server and
// [GetDashboardConfig] for the terminal dashboard.
package config
