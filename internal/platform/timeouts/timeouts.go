// Package timeouts defines the durations shared by explorer startup and
// HTTP serving.
package timeouts

import "time"

// DataLoad bounds how long startup may spend reading and deriving the
// dashboard tables.
const DataLoad = 30 * time.Second

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second
