package xfermode

import "strconv"

// Operator is a Porter-Duff rule bound to a global opacity.
//
// Operators are immutable values; they are safe to copy, compare with ==
// and share between goroutines. The zero Operator is SRC_OVER at opacity 0,
// so drawing with it leaves the destination untouched.
type Operator struct {
	rule    Rule
	opacity float32
}

// Rule returns the operator's compositing rule. It never returns
// RuleUnsupported.
func (op Operator) Rule() Rule {
	if op.rule == RuleUnsupported {
		return RuleSrcOver
	}
	return op.rule
}

// Opacity returns the operator's opacity in [0, 1].
func (op Operator) Opacity() float32 { return op.opacity }

// Opacity8 returns the opacity rescaled to 0..255.
// An opacity of exactly 1 maps to 255.
func (op Operator) Opacity8() byte {
	if op.opacity >= 1 {
		return 255
	}
	if op.opacity <= 0 {
		return 0
	}
	return byte(op.opacity*255 + 0.5)
}

func (op Operator) String() string {
	return op.Rule().String() + "@" + strconv.FormatFloat(float64(op.opacity), 'g', 4, 32)
}

// Resolver maps blend modes to compositing operators.
// The zero value reports diagnostics through the package logger.
//
// A Resolver holds no mutable state; one value may serve any number of
// goroutines provided its DiagnosticSink is safe for concurrent use.
type Resolver struct {
	sink DiagnosticSink
}

// NewResolver creates a Resolver.
// Without options, fallback warnings go to the package logger.
func NewResolver(opts ...Option) *Resolver {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Resolver{sink: o.sink}
}

var defaultResolver = NewResolver()

// ResolveRule returns the Porter-Duff rule for mode. See [ResolveRule].
func (r *Resolver) ResolveRule(mode Mode) Rule {
	return ResolveRule(mode)
}

// NormalizeAlpha converts an 8-bit alpha to an opacity. See [NormalizeAlpha].
func (r *Resolver) NormalizeAlpha(alpha int) float32 {
	return NormalizeAlpha(alpha)
}

// BuildOperator returns the operator for mode at the given 8-bit alpha.
//
// Modes without a Porter-Duff rule degrade to SRC_OVER and report one
// Diagnostic with CategoryUnsupportedMode. Alpha outside [0, 255] panics.
func (r *Resolver) BuildOperator(mode Mode, alpha int) Operator {
	opacity := NormalizeAlpha(alpha)
	rule := ResolveRule(mode)
	if rule == RuleUnsupported {
		r.warn(Diagnostic{Category: CategoryUnsupportedMode, Mode: mode.String()})
		rule = RuleSrcOver
	}
	return Operator{rule: rule, opacity: opacity}
}

// ModeFromNative returns the mode with the given native code.
// Unknown codes yield ModeSrcOver and report one Diagnostic with
// CategoryUnknownMode.
func (r *Resolver) ModeFromNative(code int) Mode {
	m, ok := LookupNative(code)
	if !ok {
		r.warn(Diagnostic{Category: CategoryUnknownMode, Mode: strconv.Itoa(code)})
	}
	return m
}

func (r *Resolver) warn(d Diagnostic) {
	if r.sink == nil {
		logSink{}.Warn(d)
		return
	}
	r.sink.Warn(d)
}

// BuildOperator returns the operator for mode at the given 8-bit alpha,
// logging a warning through [Logger] when the mode falls back to SRC_OVER.
func BuildOperator(mode Mode, alpha int) Operator {
	return defaultResolver.BuildOperator(mode, alpha)
}

// ModeFromNative returns the mode with the given native code, logging a
// warning through [Logger] and returning ModeSrcOver for unknown codes.
func ModeFromNative(code int) Mode {
	return defaultResolver.ModeFromNative(code)
}
