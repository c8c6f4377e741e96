// Package blend implements the Porter-Duff compositing kernels.
//
// All operations work with premultiplied alpha values in the range 0-255.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// Mode selects one of the twelve Porter-Duff operators.
type Mode uint8

const (
	ModeClear   Mode = iota // Result: 0
	ModeSrc                 // Result: S
	ModeDst                 // Result: D
	ModeSrcOver             // Result: S + D*(1-Sa)
	ModeDstOver             // Result: S*(1-Da) + D
	ModeSrcIn               // Result: S*Da
	ModeDstIn               // Result: D*Sa
	ModeSrcOut              // Result: S*(1-Da)
	ModeDstOut              // Result: D*(1-Sa)
	ModeSrcAtop             // Result: S*Da + D*(1-Sa)
	ModeDstAtop             // Result: S*(1-Da) + D*Sa
	ModeXor                 // Result: S*(1-Da) + D*(1-Sa)
)

// Func is the signature for a compositing kernel.
// All values are premultiplied alpha, 0-255.
type Func func(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte)

// factor is one Porter-Duff coefficient, evaluated per pixel from the
// source and destination alpha.
type factor uint8

const (
	fZero factor = iota
	fOne
	fSrcAlpha
	fDstAlpha
	fInvSrcAlpha
	fInvDstAlpha
)

func (f factor) eval(sa, da byte) byte {
	switch f {
	case fOne:
		return 255
	case fSrcAlpha:
		return sa
	case fDstAlpha:
		return da
	case fInvSrcAlpha:
		return inv255(sa)
	case fInvDstAlpha:
		return inv255(da)
	}
	return 0
}

// factors holds Fs and Fd for each mode; every channel, alpha included,
// is S*Fs + D*Fd.
var factors = [...][2]factor{
	ModeClear:   {fZero, fZero},
	ModeSrc:     {fOne, fZero},
	ModeDst:     {fZero, fOne},
	ModeSrcOver: {fOne, fInvSrcAlpha},
	ModeDstOver: {fInvDstAlpha, fOne},
	ModeSrcIn:   {fDstAlpha, fZero},
	ModeDstIn:   {fZero, fSrcAlpha},
	ModeSrcOut:  {fInvDstAlpha, fZero},
	ModeDstOut:  {fZero, fInvSrcAlpha},
	ModeSrcAtop: {fDstAlpha, fInvSrcAlpha},
	ModeDstAtop: {fInvDstAlpha, fSrcAlpha},
	ModeXor:     {fInvDstAlpha, fInvSrcAlpha},
}

var funcs [len(factors)]Func

func init() {
	for m, f := range factors {
		funcs[m] = kernel(f[0], f[1])
	}
}

// kernel builds the compositing function for the factor pair fs, fd.
func kernel(fs, fd factor) Func {
	return func(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
		ks, kd := fs.eval(sa, da), fd.eval(sa, da)
		return term(sr, ks, dr, kd), term(sg, ks, dg, kd), term(sb, ks, db, kd), term(sa, ks, da, kd)
	}
}

// term computes s*ks + d*kd on the 0-255 scale, clamped to 255.
func term(s, ks, d, kd byte) byte {
	return addClamp(mulDiv255(s, ks), mulDiv255(d, kd))
}

// FuncFor returns the kernel for the given mode.
// Returns the SrcOver kernel for unknown modes.
func FuncFor(mode Mode) Func {
	if int(mode) < len(funcs) {
		return funcs[mode]
	}
	return funcs[ModeSrcOver]
}
