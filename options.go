package xfermode

// Option configures a Resolver during creation.
//
// Example:
//
//	// Default: diagnostics go to the package logger
//	r := xfermode.NewResolver()
//
//	// Collect diagnostics instead
//	r := xfermode.NewResolver(xfermode.WithDiagnostics(sink))
type Option func(*resolverOptions)

// resolverOptions holds optional configuration for Resolver creation.
type resolverOptions struct {
	sink DiagnosticSink
}

// defaultOptions returns the default resolver options.
func defaultOptions() resolverOptions {
	return resolverOptions{
		sink: logSink{},
	}
}

// WithDiagnostics sets the sink that receives fallback warnings.
// Pass nil to discard them.
func WithDiagnostics(sink DiagnosticSink) Option {
	return func(o *resolverOptions) {
		if sink == nil {
			sink = discardSink{}
		}
		o.sink = sink
	}
}
