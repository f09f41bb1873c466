// Package lifecycle holds shared constants for component start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds how long start and stop hooks may take.
const DefaultTimeout = 10 * time.Second
