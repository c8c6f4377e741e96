package xfermode

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrUnknownMode is returned when a blend mode name is not recognized.
var ErrUnknownMode = errors.New("xfermode: unknown blend mode")

// Mode is a symbolic blend mode.
//
// The numeric value of each mode is its native code in the host graphics API,
// so the twelve Porter-Duff modes come first and the separable blend modes
// (which have no Porter-Duff equivalent) follow.
type Mode uint8

const (
	ModeClear    Mode = iota // CLEAR
	ModeSrc                  // SRC
	ModeDst                  // DST
	ModeSrcOver              // SRC_OVER
	ModeDstOver              // DST_OVER
	ModeSrcIn                // SRC_IN
	ModeDstIn                // DST_IN
	ModeSrcOut               // SRC_OUT
	ModeDstOut               // DST_OUT
	ModeSrcAtop              // SRC_ATOP
	ModeDstAtop              // DST_ATOP
	ModeXor                  // XOR
	ModeAdd                  // ADD
	ModeMultiply             // MULTIPLY
	ModeScreen               // SCREEN
	ModeOverlay              // OVERLAY
	ModeDarken               // DARKEN
	ModeLighten              // LIGHTEN

	modeCount
)

var modeNames = [modeCount]string{
	ModeClear:    "CLEAR",
	ModeSrc:      "SRC",
	ModeDst:      "DST",
	ModeSrcOver:  "SRC_OVER",
	ModeDstOver:  "DST_OVER",
	ModeSrcIn:    "SRC_IN",
	ModeDstIn:    "DST_IN",
	ModeSrcOut:   "SRC_OUT",
	ModeDstOut:   "DST_OUT",
	ModeSrcAtop:  "SRC_ATOP",
	ModeDstAtop:  "DST_ATOP",
	ModeXor:      "XOR",
	ModeAdd:      "ADD",
	ModeMultiply: "MULTIPLY",
	ModeScreen:   "SCREEN",
	ModeOverlay:  "OVERLAY",
	ModeDarken:   "DARKEN",
	ModeLighten:  "LIGHTEN",
}

// String returns the canonical name of the mode, e.g. "SRC_OVER".
func (m Mode) String() string {
	if m < modeCount {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// Native returns the mode's integer code in the host graphics API.
func (m Mode) Native() int {
	return int(m)
}

// Valid reports whether m is one of the enumerated modes.
func (m Mode) Valid() bool {
	return m < modeCount
}

// Supported reports whether the mode has a direct Porter-Duff rule.
// Unsupported modes still composite, falling back to SRC_OVER.
func (m Mode) Supported() bool {
	return ResolveRule(m) != RuleUnsupported
}

// Modes returns every blend mode in native-code order.
func Modes() []Mode {
	modes := make([]Mode, modeCount)
	for i := range modes {
		modes[i] = Mode(i)
	}
	return modes
}

// LookupNative returns the mode with the given native code.
// It reports false for codes outside the enumeration.
func LookupNative(code int) (Mode, bool) {
	if code < 0 || code >= int(modeCount) {
		return ModeSrcOver, false
	}
	return Mode(code), true
}

var nameSeparators = strings.NewReplacer("-", "_", " ", "_")

// ParseMode returns the mode with the given name.
// Matching ignores case and accepts '-' or ' ' in place of '_',
// so "SRC_OVER", "src-over" and "Src Over" are equivalent.
func ParseMode(name string) (Mode, error) {
	key := cases.Upper(language.Und).String(nameSeparators.Replace(strings.TrimSpace(name)))
	for m, n := range modeNames {
		if n == key {
			return Mode(m), nil
		}
	}
	return ModeSrcOver, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}
