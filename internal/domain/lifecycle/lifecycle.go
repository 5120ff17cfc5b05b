// Package lifecycle holds shared start/stop constants for long-lived components.
package lifecycle

import "time"

// DefaultTimeout bounds start hooks (pings, migrations) and graceful shutdown.
const DefaultTimeout = 10 * time.Second
