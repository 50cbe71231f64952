// Package delivery defines the contract every transport entry point
// (HTTP, workers) exposes to the application bootstrap.
package delivery

import "context"

// Delivery is a long-running transport serving requests until its
// lifecycle hook shuts it down.
type Delivery interface {
	Serve(ctx context.Context) error
}
