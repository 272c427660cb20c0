// Package tracker accounts third-party API calls, enforces per-service
// minute, hour and day quotas and raises alerts when usage or error rates
// cross their thresholds.
//
// Counters live in a [CounterStore]: process memory by default or Redis when
// several instances share one quota. Outbound calls are usually wrapped with
// [Execute], which checks the quota, tracks every attempt, retries transient
// failures with exponential backoff and finally falls back.
package tracker
