// Package workers runs the development server's background jobs.
//
// It defines the Worker interface and a Workers aggregate that runs every
// registered worker until the context is cancelled.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is cancelled or the job
// fails; a cancelled context is not reported as an error.
type Worker interface {
	Run(ctx context.Context) error
}
