// Package lifecycle holds shared constants for fx lifecycle hooks.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown hooks (pings, graceful stops).
const DefaultTimeout = 10 * time.Second
