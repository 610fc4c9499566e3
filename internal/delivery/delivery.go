// Package delivery defines the contract every transport front end satisfies.
package delivery

import "context"

// Delivery is a serving surface started by the composition root. Serve
// blocks until the server stops; shutdown is handled through lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
