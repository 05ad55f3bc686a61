package server

import "context"

// Server defines the lifecycle contract of the development server.
//
// Run blocks until ctx is cancelled, a stop signal arrives, or a component
// fails. A graceful stop returns nil.
type Server interface {
	Run(ctx context.Context) error
}
