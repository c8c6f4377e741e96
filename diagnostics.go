package xfermode

import "log/slog"

// Diagnostic categories reported by a Resolver.
const (
	// CategoryUnsupportedMode is reported when a mode has no Porter-Duff
	// rule and the operator falls back to SRC_OVER.
	CategoryUnsupportedMode = "unsupported-blend-mode"

	// CategoryUnknownMode is reported when a native code names no mode.
	CategoryUnknownMode = "unknown-blend-mode"
)

// Diagnostic is a structured fidelity warning.
type Diagnostic struct {
	Category string
	Mode     string
}

// DiagnosticSink receives fidelity warnings from a Resolver.
//
// Warn is called synchronously, at most once per degraded resolution,
// and may be called from multiple goroutines at once.
type DiagnosticSink interface {
	Warn(d Diagnostic)
}

// DiagnosticFunc adapts a function to a DiagnosticSink.
type DiagnosticFunc func(d Diagnostic)

// Warn calls f(d).
func (f DiagnosticFunc) Warn(d Diagnostic) { f(d) }

// logSink reports diagnostics through the package logger.
type logSink struct{}

func (logSink) Warn(d Diagnostic) {
	Logger().Warn("xfermode: blend mode degraded",
		slog.String("category", d.Category),
		slog.String("mode", d.Mode))
}

// discardSink drops all diagnostics.
type discardSink struct{}

func (discardSink) Warn(Diagnostic) {}
