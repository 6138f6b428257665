// Package delivery defines the contract every transport server implements.
package delivery

import "context"

// Delivery is a running transport (HTTP, worker, ...) started by the
// entrypoint. Serve blocks until the server stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
