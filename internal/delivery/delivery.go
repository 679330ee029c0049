// Package delivery defines the long-running entry points started by the binaries.
package delivery

import "context"

// Delivery is a server that blocks in Serve until it is stopped.
type Delivery interface {
	Serve(ctx context.Context) error
}
