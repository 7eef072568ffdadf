// Package lifecycle holds shared lifecycle constants for graceful startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds how long start and stop hooks may take before being abandoned.
const DefaultTimeout = 10 * time.Second
