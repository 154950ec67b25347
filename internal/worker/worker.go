package worker

import "context"

// Worker is a long-running background task.
type Worker interface {
	// Start runs the worker until ctx is done or Stop is called
	Start(ctx context.Context) error

	// Stop signals the worker to finish
	Stop() error

	// Name identifies the worker in logs
	Name() string
}
