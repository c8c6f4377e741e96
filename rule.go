package xfermode

import (
	"fmt"

	"github.com/gogpu/xfermode/internal/blend"
)

// Rule is a Porter-Duff compositing rule.
//
// The zero value, RuleUnsupported, marks a blend mode with no direct
// equivalent in the Porter-Duff algebra.
type Rule uint8

const (
	RuleUnsupported Rule = iota // no Porter-Duff equivalent
	RuleClear                   // 0
	RuleSrc                     // S
	RuleDst                     // D
	RuleSrcOver                 // S + D*(1-Sa)
	RuleDstOver                 // S*(1-Da) + D
	RuleSrcIn                   // S*Da
	RuleDstIn                   // D*Sa
	RuleSrcOut                  // S*(1-Da)
	RuleDstOut                  // D*(1-Sa)
	RuleSrcAtop                 // S*Da + D*(1-Sa)
	RuleDstAtop                 // S*(1-Da) + D*Sa
	RuleXor                     // S*(1-Da) + D*(1-Sa)

	ruleCount
)

var ruleNames = [ruleCount]string{
	RuleUnsupported: "UNSUPPORTED",
	RuleClear:       "CLEAR",
	RuleSrc:         "SRC",
	RuleDst:         "DST",
	RuleSrcOver:     "SRC_OVER",
	RuleDstOver:     "DST_OVER",
	RuleSrcIn:       "SRC_IN",
	RuleDstIn:       "DST_IN",
	RuleSrcOut:      "SRC_OUT",
	RuleDstOut:      "DST_OUT",
	RuleSrcAtop:     "SRC_ATOP",
	RuleDstAtop:     "DST_ATOP",
	RuleXor:         "XOR",
}

func (r Rule) String() string {
	if r < ruleCount {
		return ruleNames[r]
	}
	return fmt.Sprintf("Rule(%d)", uint8(r))
}

// modeRules maps each blend mode to its rule. Modes absent from the
// table (ADD, MULTIPLY, SCREEN, OVERLAY, DARKEN, LIGHTEN) resolve to
// RuleUnsupported.
var modeRules = [modeCount]Rule{
	ModeClear:   RuleClear,
	ModeSrc:     RuleSrc,
	ModeDst:     RuleDst,
	ModeSrcOver: RuleSrcOver,
	ModeDstOver: RuleDstOver,
	ModeSrcIn:   RuleSrcIn,
	ModeDstIn:   RuleDstIn,
	ModeSrcOut:  RuleSrcOut,
	ModeDstOut:  RuleDstOut,
	ModeSrcAtop: RuleSrcAtop,
	ModeDstAtop: RuleDstAtop,
	ModeXor:     RuleXor,
}

// ResolveRule returns the Porter-Duff rule for mode, or RuleUnsupported if
// the mode has no equivalent. It is pure and total: values outside the
// Mode enumeration also resolve to RuleUnsupported.
func ResolveRule(mode Mode) Rule {
	if mode < modeCount {
		return modeRules[mode]
	}
	return RuleUnsupported
}

// kernel returns the backend kernel for r. RuleUnsupported uses SRC_OVER.
func (r Rule) kernel() blend.Mode {
	switch r {
	case RuleClear:
		return blend.ModeClear
	case RuleSrc:
		return blend.ModeSrc
	case RuleDst:
		return blend.ModeDst
	case RuleDstOver:
		return blend.ModeDstOver
	case RuleSrcIn:
		return blend.ModeSrcIn
	case RuleDstIn:
		return blend.ModeDstIn
	case RuleSrcOut:
		return blend.ModeSrcOut
	case RuleDstOut:
		return blend.ModeDstOut
	case RuleSrcAtop:
		return blend.ModeSrcAtop
	case RuleDstAtop:
		return blend.ModeDstAtop
	case RuleXor:
		return blend.ModeXor
	default:
		return blend.ModeSrcOver
	}
}
