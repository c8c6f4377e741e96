package xfermode

import "fmt"

// NormalizeAlpha converts an 8-bit alpha to an opacity in [0, 1].
//
// 255 maps to exactly 1.0; other values are alpha/255.
// Alpha outside [0, 255] is a caller bug and panics.
func NormalizeAlpha(alpha int) float32 {
	if alpha < 0 || alpha > 255 {
		panic(fmt.Sprintf("xfermode: alpha %d out of range [0, 255]", alpha))
	}
	if alpha == 255 {
		return 1
	}
	return float32(alpha) / 255
}
