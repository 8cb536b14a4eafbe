// Package observability wires structured logging, OpenTelemetry tracing,
// and metrics for figgen. With no OTLP endpoint configured, tracing and
// metrics fall back to no-op providers with zero export overhead.
package observability

import (
	"log/slog"
	"strings"
)

// AppMode tags telemetry with the surface the process is serving.
type AppMode string

// Application modes.
const (
	ModeCLI AppMode = "cli"
	ModeMCP AppMode = "mcp"
)

// defaultShutdownTimeoutSec bounds telemetry flush on shutdown.
const defaultShutdownTimeoutSec = 5

// Config controls observability initialization.
type Config struct {
	// ServiceName identifies the service in telemetry resources.
	ServiceName string

	// ServiceVersion is attached to telemetry resources when set.
	ServiceVersion string

	// Mode tags telemetry and log records with the serving surface.
	Mode AppMode

	// OTLPEndpoint enables OTLP export when non-empty (host:port).
	OTLPEndpoint string

	// OTLPHeaders are extra headers sent with OTLP exports.
	OTLPHeaders map[string]string

	// OTLPInsecure disables TLS on the OTLP connection.
	OTLPInsecure bool

	// LogLevel is the minimum level emitted.
	LogLevel slog.Level

	// LogJSON switches the log handler to JSON output. The MCP surface
	// always logs JSON to stderr to keep stdout clean for the protocol.
	LogJSON bool

	// ShutdownTimeoutSec bounds the telemetry flush on shutdown.
	ShutdownTimeoutSec int
}

// DefaultConfig returns the baseline configuration for the CLI surface.
func DefaultConfig() Config {
	return Config{
		ServiceName:        "figgen",
		Mode:               ModeCLI,
		LogLevel:           slog.LevelInfo,
		ShutdownTimeoutSec: defaultShutdownTimeoutSec,
	}
}

// ParseOTLPHeaders parses a comma-separated key=value list, the format of
// OTEL_EXPORTER_OTLP_HEADERS. Malformed entries are skipped.
func ParseOTLPHeaders(raw string) map[string]string {
	if raw == "" {
		return nil
	}

	headers := make(map[string]string)

	for _, pair := range strings.Split(raw, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok || key == "" {
			continue
		}

		headers[key] = value
	}

	if len(headers) == 0 {
		return nil
	}

	return headers
}
