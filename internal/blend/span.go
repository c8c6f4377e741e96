package blend

// ScaleAlpha multiplies a premultiplied color by an 8-bit opacity.
// Opacity 255 returns the color unchanged.
func ScaleAlpha(r, g, b, a, opacity byte) (byte, byte, byte, byte) {
	if opacity == 255 {
		return r, g, b, a
	}
	return mulDiv255(r, opacity), mulDiv255(g, opacity), mulDiv255(b, opacity), mulDiv255(a, opacity)
}

// Pixel composites one premultiplied source pixel onto a destination pixel.
// The source is scaled by opacity before the kernel runs.
func Pixel(mode Mode, opacity byte, sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	sr, sg, sb, sa = ScaleAlpha(sr, sg, sb, sa, opacity)
	return FuncFor(mode)(sr, sg, sb, sa, dr, dg, db, da)
}

// Span composites len(dst)/4 premultiplied RGBA pixels from src onto dst in place.
// src must hold at least len(dst) bytes.
func Span(dst, src []byte, mode Mode, opacity byte) {
	f := FuncFor(mode)
	n := len(dst) &^ 3
	src = src[:n]
	for i := 0; i < n; i += 4 {
		sr, sg, sb, sa := ScaleAlpha(src[i], src[i+1], src[i+2], src[i+3], opacity)
		dst[i], dst[i+1], dst[i+2], dst[i+3] = f(sr, sg, sb, sa, dst[i], dst[i+1], dst[i+2], dst[i+3])
	}
}
