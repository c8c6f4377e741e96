package xfermode

import "github.com/gogpu/gputypes"

// Porter-Duff factors for premultiplied colors: result = S*Fs + D*Fd.
var ruleFactors = [ruleCount][2]gputypes.BlendFactor{
	RuleUnsupported: {gputypes.BlendFactorOne, gputypes.BlendFactorOneMinusSrcAlpha},
	RuleClear:       {gputypes.BlendFactorZero, gputypes.BlendFactorZero},
	RuleSrc:         {gputypes.BlendFactorOne, gputypes.BlendFactorZero},
	RuleDst:         {gputypes.BlendFactorZero, gputypes.BlendFactorOne},
	RuleSrcOver:     {gputypes.BlendFactorOne, gputypes.BlendFactorOneMinusSrcAlpha},
	RuleDstOver:     {gputypes.BlendFactorOneMinusDstAlpha, gputypes.BlendFactorOne},
	RuleSrcIn:       {gputypes.BlendFactorDstAlpha, gputypes.BlendFactorZero},
	RuleDstIn:       {gputypes.BlendFactorZero, gputypes.BlendFactorSrcAlpha},
	RuleSrcOut:      {gputypes.BlendFactorOneMinusDstAlpha, gputypes.BlendFactorZero},
	RuleDstOut:      {gputypes.BlendFactorZero, gputypes.BlendFactorOneMinusSrcAlpha},
	RuleSrcAtop:     {gputypes.BlendFactorDstAlpha, gputypes.BlendFactorOneMinusSrcAlpha},
	RuleDstAtop:     {gputypes.BlendFactorOneMinusDstAlpha, gputypes.BlendFactorSrcAlpha},
	RuleXor:         {gputypes.BlendFactorOneMinusDstAlpha, gputypes.BlendFactorOneMinusSrcAlpha},
}

// BlendState returns the fixed-function blend state that implements r on
// premultiplied render targets. The same factors apply to color and alpha.
// RuleUnsupported and out-of-range rules yield the SRC_OVER state.
func (r Rule) BlendState() gputypes.BlendState {
	if r >= ruleCount {
		r = RuleSrcOver
	}
	f := ruleFactors[r]
	c := gputypes.BlendComponent{
		SrcFactor: f[0],
		DstFactor: f[1],
		Operation: gputypes.BlendOperationAdd,
	}
	return gputypes.BlendState{Color: c, Alpha: c}
}

// BlendState returns the blend state for the operator's rule.
// Opacity is not part of the blend state: the fragment shader must
// multiply its premultiplied output by Opacity.
func (op Operator) BlendState() gputypes.BlendState {
	return op.Rule().BlendState()
}
