// Package workers runs the periodic background jobs of the server on a cron
// schedule.
package workers

import "context"

// Worker is a single unit of background work. Run is invoked once per
// schedule tick and must return when ctx is done.
type Worker interface {
	Run(ctx context.Context) error
}

// HealthSyncer refreshes externally visible health statuses.
type HealthSyncer interface {
	SyncHealth(ctx context.Context) error
}
