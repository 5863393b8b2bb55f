// Package timeouts defines shared timeout constants used by dicetrace
// commands.
package timeouts

import "time"

// TelemetryShutdown caps how long a command waits for pending spans to be
// flushed before exiting.
const TelemetryShutdown = 5 * time.Second
