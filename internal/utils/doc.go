// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// the JSON response envelope, outbound HTTP client construction,
// JWT token generation and validation, and identifier generation.
package utils
