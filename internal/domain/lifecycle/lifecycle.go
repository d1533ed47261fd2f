// Package lifecycle holds process-wide timing constants shared by servers and infrastructure hooks.
package lifecycle

import "time"

// DefaultTimeout bounds start-up pings and graceful shutdown of servers and clients.
const DefaultTimeout = 10 * time.Second
