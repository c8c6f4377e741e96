package xfermode

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/gogpu/xfermode/internal/blend"
)

var _ draw.Drawer = Operator{}

// Draw composites src onto dst inside r using the operator's rule and opacity.
// The source pixel at sp lands on r.Min.
//
// r is clipped to dst's bounds and to the translated source bounds;
// destination pixels outside the clipped rectangle are left untouched.
// Draw satisfies [draw.Drawer].
func (op Operator) Draw(dst draw.Image, r image.Rectangle, src image.Image, sp image.Point) {
	r, sp = clip(dst, r, src, sp)
	if r.Empty() {
		return
	}

	mode := op.Rule().kernel()
	opacity := op.Opacity8()
	srcRect := image.Rectangle{Min: sp, Max: sp.Add(r.Size())}

	if d, ok := dst.(*image.RGBA); ok {
		if s, ok := src.(*image.RGBA); ok {
			if sharesPix(d.Pix, s.Pix) {
				s = cloneRect(s, srcRect)
			}
			drawRGBA(d, r, s, sp, mode, opacity)
			return
		}
	}

	// Any other pair may alias through SubImage or a custom Image, so the
	// source is read into a private buffer before dst is written.
	snap := image.NewRGBA(srcRect)
	draw.Draw(snap, srcRect, src, sp, draw.Src)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		sy := sp.Y + y - r.Min.Y
		for x := r.Min.X; x < r.Max.X; x++ {
			sc := snap.RGBAAt(sp.X+x-r.Min.X, sy)
			dc := color.RGBAModel.Convert(dst.At(x, y)).(color.RGBA)
			dst.Set(x, y, compositePixel(mode, opacity, sc, dc))
		}
	}
}

// sharesPix reports whether a and b are views of the same backing array.
// Slices of one array share the element at the end of their capacity,
// which covers SubImage and images built over a common buffer.
func sharesPix(a, b []byte) bool {
	if cap(a) == 0 || cap(b) == 0 {
		return false
	}
	a, b = a[:cap(a)], b[:cap(b)]
	return &a[len(a)-1] == &b[len(b)-1]
}

// Composite returns the result of compositing one source color onto one
// destination color.
func (op Operator) Composite(src, dst color.Color) color.RGBA {
	sc := color.RGBAModel.Convert(src).(color.RGBA)
	dc := color.RGBAModel.Convert(dst).(color.RGBA)
	return compositePixel(op.Rule().kernel(), op.Opacity8(), sc, dc)
}

func compositePixel(mode blend.Mode, opacity byte, s, d color.RGBA) color.RGBA {
	r, g, b, a := blend.Pixel(mode, opacity, s.R, s.G, s.B, s.A, d.R, d.G, d.B, d.A)
	return color.RGBA{R: r, G: g, B: b, A: a}
}

func drawRGBA(dst *image.RGBA, r image.Rectangle, src *image.RGBA, sp image.Point, mode blend.Mode, opacity byte) {
	n := r.Dx() * 4
	for y := r.Min.Y; y < r.Max.Y; y++ {
		di := dst.PixOffset(r.Min.X, y)
		si := src.PixOffset(sp.X, sp.Y+y-r.Min.Y)
		blend.Span(dst.Pix[di:di+n], src.Pix[si:si+n], mode, opacity)
	}
}

// clip intersects r with dst's bounds and with src's bounds translated so
// that sp aligns with r.Min, adjusting sp by the same amount.
func clip(dst draw.Image, r image.Rectangle, src image.Image, sp image.Point) (image.Rectangle, image.Point) {
	orig := r.Min
	r = r.Intersect(dst.Bounds())
	r = r.Intersect(src.Bounds().Add(orig.Sub(sp)))
	return r, sp.Add(r.Min.Sub(orig))
}

// cloneRect copies the part of img inside rect, keeping its coordinates.
func cloneRect(img *image.RGBA, rect image.Rectangle) *image.RGBA {
	out := image.NewRGBA(rect)
	n := rect.Dx() * 4
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		copy(out.Pix[out.PixOffset(rect.Min.X, y):][:n], img.Pix[img.PixOffset(rect.Min.X, y):][:n])
	}
	return out
}
