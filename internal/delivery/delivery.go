// Package delivery holds the transports that expose the use cases: the public API, the push worker and the scheduler.
package delivery

import "context"

// Delivery is a long-running transport started by a cmd binary.
type Delivery interface {
	// Serve blocks until the transport stops. A graceful stop returns nil.
	Serve(ctx context.Context) error
}
