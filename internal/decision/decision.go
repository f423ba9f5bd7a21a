// Package decision converts showdown probabilities into expected value and
// expected utility for the three available actions: fold, call, raise. It
// is pure and stateless; it never touches cards.
package decision

import (
	"errors"
	"fmt"
	"math"
)

// Action is one of the three available decisions
type Action int

const (
	Fold Action = iota
	Call
	Raise
)

// String returns the action name
func (a Action) String() string {
	switch a {
	case Fold:
		return "fold"
	case Call:
		return "call"
	case Raise:
		return "raise"
	default:
		return "unknown"
	}
}

const (
	// MinRiskStyle and MaxRiskStyle bound the risk slider. Negative is
	// risk-seeking, zero risk-neutral, positive risk-averse.
	MinRiskStyle = -5.0
	MaxRiskStyle = 5.0

	// riskExponentScale keeps the utility exponent within (0.5, 1.5)
	// across the whole risk range
	riskExponentScale = 0.5

	// MinOpponents and MaxOpponents bound the field size
	MinOpponents = 1
	MaxOpponents = 9
)

// ErrInvalidParameter is returned for out-of-range inputs. Inputs are
// rejected, never clamped.
var ErrInvalidParameter = errors.New("invalid parameter")

// Input carries everything the engine needs for one decision
type Input struct {
	Pot   float64 // current pot in chips, includes bets already made
	Call  float64 // chips required to call
	Raise float64 // chips committed by raising

	WinProb float64 // probability of winning at showdown
	TieProb float64 // probability of chopping

	FoldProb  float64 // probability all opponents fold to the raise
	RiskStyle float64 // [-5,5]; see Utility
	Opponents int     // number of opponents still in the hand

	// ExpectedCallers scales the raise payout when called in a multiway
	// pot. Zero means 1 (heads-up showdown over the enlarged pot).
	ExpectedCallers float64
}

// Output holds expected values in chips and expected utilities under the
// risk transform, plus the recommended action. Recomputed per query,
// never cached.
type Output struct {
	EVFold  float64
	EVCall  float64
	EVRaise float64

	EUFold  float64
	EUCall  float64
	EURaise float64

	Recommended Action
}

func (in Input) validate() error {
	switch {
	case in.Pot < 0 || in.Call < 0 || in.Raise < 0:
		return fmt.Errorf("%w: chip amounts must be non-negative", ErrInvalidParameter)
	case in.WinProb < 0 || in.WinProb > 1:
		return fmt.Errorf("%w: win probability %v outside [0,1]", ErrInvalidParameter, in.WinProb)
	case in.TieProb < 0 || in.TieProb > 1:
		return fmt.Errorf("%w: tie probability %v outside [0,1]", ErrInvalidParameter, in.TieProb)
	case in.WinProb+in.TieProb > 1+1e-9:
		return fmt.Errorf("%w: win+tie probability %v exceeds 1", ErrInvalidParameter, in.WinProb+in.TieProb)
	case in.FoldProb < 0 || in.FoldProb > 1:
		return fmt.Errorf("%w: fold probability %v outside [0,1]", ErrInvalidParameter, in.FoldProb)
	case in.RiskStyle < MinRiskStyle || in.RiskStyle > MaxRiskStyle:
		return fmt.Errorf("%w: risk style %v outside [%v,%v]", ErrInvalidParameter, in.RiskStyle, MinRiskStyle, MaxRiskStyle)
	case in.Opponents < MinOpponents || in.Opponents > MaxOpponents:
		return fmt.Errorf("%w: opponent count %d outside [%d,%d]", ErrInvalidParameter, in.Opponents, MinOpponents, MaxOpponents)
	case in.ExpectedCallers < 0 || (in.ExpectedCallers > 0 && in.ExpectedCallers < 1):
		return fmt.Errorf("%w: expected callers %v must be at least 1", ErrInvalidParameter, in.ExpectedCallers)
	}
	return nil
}

// Utility maps a chip delta to utility under the given risk style.
// Identity when risk is 0, zero at zero for every risk, convex (upside
// amplified) for risk < 0, concave (upside dampened) for risk > 0, with
// the curvature scaling in |risk|.
//
// The transform is sign(x)*|x|^(1 - risk/5 * 0.5), keeping the exponent
// inside [0.5, 1.5] across the full risk range.
func Utility(x, risk float64) float64 {
	if x == 0 {
		return 0
	}
	exponent := 1 - risk/MaxRiskStyle*riskExponentScale
	return math.Copysign(math.Pow(math.Abs(x), exponent), x)
}

// Decide computes EV and EU for fold, call and raise, and the recommended
// action (highest EU, ties broken toward the less committal action).
func Decide(in Input) (Output, error) {
	if err := in.validate(); err != nil {
		return Output{}, err
	}

	callers := in.ExpectedCallers
	if callers == 0 {
		callers = 1
	}

	// Folding forfeits nothing beyond chips already committed, which are
	// counted in the pot, so its net is zero.
	evFold := 0.0

	// Calling: win claims the pot, tie splits it, the call amount is
	// committed either way.
	evCall := in.WinProb*in.Pot + in.TieProb*(in.Pot/2) - in.Call

	// Raising: opponents fold and the pot is ours outright, or showdown
	// happens over the pot enlarged by the called raise.
	raisePot := in.Pot + callers*in.Raise
	evShowdown := in.WinProb*raisePot + in.TieProb*raisePot/2 - in.Raise
	evRaise := in.FoldProb*in.Pot + (1-in.FoldProb)*evShowdown

	out := Output{
		EVFold:  evFold,
		EVCall:  evCall,
		EVRaise: evRaise,
		EUFold:  Utility(evFold, in.RiskStyle),
		EUCall:  Utility(evCall, in.RiskStyle),
		EURaise: Utility(evRaise, in.RiskStyle),
	}
	out.Recommended = recommend(out.EUFold, out.EUCall, out.EURaise)
	return out, nil
}

// recommend picks the highest utility, preferring fold over call over
// raise on exact ties
func recommend(euFold, euCall, euRaise float64) Action {
	if euFold >= euCall && euFold >= euRaise {
		return Fold
	}
	if euCall >= euRaise {
		return Call
	}
	return Raise
}

// Rounded returns a copy of the output with every figure rounded to the
// requested number of decimal places, for display.
func (o Output) Rounded(places int) Output {
	scale := math.Pow(10, float64(places))
	round := func(x float64) float64 { return math.Round(x*scale) / scale }
	return Output{
		EVFold:      round(o.EVFold),
		EVCall:      round(o.EVCall),
		EVRaise:     round(o.EVRaise),
		EUFold:      round(o.EUFold),
		EUCall:      round(o.EUCall),
		EURaise:     round(o.EURaise),
		Recommended: o.Recommended,
	}
}
