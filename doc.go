// Package xfermode resolves symbolic blend modes into Porter-Duff
// compositing operators.
//
// # Overview
//
// A [Mode] is the user-facing name of a compositing behavior (SRC_OVER,
// MULTIPLY, ...). Only twelve modes correspond to a rule of the
// Porter-Duff algebra; [ResolveRule] returns that [Rule], or
// [RuleUnsupported] for the rest.
//
// [BuildOperator] binds a rule to an opacity derived from an 8-bit alpha.
// It never fails for a valid mode: modes without a rule fall back to
// SRC_OVER and a [Diagnostic] is reported.
//
//	op := xfermode.BuildOperator(xfermode.ModeSrcIn, 128)
//	op.Draw(dst, dst.Bounds(), src, image.Point{})
//
// # Diagnostics
//
// The package-level [BuildOperator] logs fallbacks at warn level through
// [Logger], which is silent until [SetLogger] is called. Use
// [NewResolver] with [WithDiagnostics] to receive them directly.
//
// # Backends
//
// [Operator.Draw] composites premultiplied 8-bit pixels on the CPU and
// satisfies golang.org/x/image/draw.Drawer. [Rule.BlendState] describes
// the same rule as a WebGPU fixed-function blend state.
//
// # Concurrency
//
// Modes, rules, operators and resolvers are immutable; every function in
// this package may be called from any goroutine.
package xfermode
