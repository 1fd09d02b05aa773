// Package constants holds cross-cutting literals shared by the config loader
// and the HTTP layer.
package constants

const (
	ConfigName   = "config"
	ConfigFormat = "yaml"

	// CenterHeader carries the acting center's id on every API request.
	CenterHeader = "X-Center-Id"

	// RequestIDHeader echoes the per-request correlation id.
	RequestIDHeader = "X-Request-Id"

	// TraceIDHeader carries the distributed trace id; requests without one
	// start a new root trace.
	TraceIDHeader = "X-Trace-Id"
)
