package quadrature

import "fmt"

// Step is the fixed strip width used by all bundled integration rules.
const Step = 0.001

// Rule numerically evaluates definite integrals. Implementations are
// stateless and deterministic: the same function and bounds always produce
// the same result.
type Rule interface {
	// Name returns the identifier under which the rule is registered.
	Name() string
	// Integrate evaluates the definite integral of f from lower to upper.
	Integrate(f Function, lower, upper float64) float64
}

// Rule names accepted by NewRule.
const (
	RectangleIntegration string = "rectangle"
	TrapezoidIntegration string = "trapezoid"
)

// Compile-time assertions that the bundled rules implement the Rule interface.
var (
	_ Rule = (*RectangleRule)(nil)
	_ Rule = (*TrapezoidRule)(nil)
)

// RectangleRule is a left-endpoint Riemann sum with the fixed Step width.
//
// Its contract is deliberately literal: when lower >= upper the loop body
// never runs and the result is 0 rather than a signed integral, the strip
// starting below upper always contributes a full Step even when it extends
// past the bound, and the accumulation drift of repeatedly adding Step to the
// loop variable is accepted. Callers that need the corrected behaviour select
// TrapezoidRule instead.
type RectangleRule struct{}

// NewRectangleRule creates a rectangle rule.
func NewRectangleRule() *RectangleRule {
	return &RectangleRule{}
}

// Name returns the identifier of the rectangle rule.
func (r *RectangleRule) Name() string {
	return RectangleIntegration
}

// Integrate sums f(x)*Step for x = lower, lower+Step, ... while x < upper.
func (r *RectangleRule) Integrate(f Function, lower, upper float64) float64 {
	result := 0.0
	for x := lower; x < upper; x += Step {
		result += f.Evaluate(x) * Step
	}
	return result
}

// TrapezoidRule is the corrected counterpart of RectangleRule, registered
// under its own name so the literal rectangle behaviour stays untouched. It
// averages the integrand at both ends of each strip, clamps the final strip
// to the upper bound instead of overrunning it, and treats reversed bounds as
// the negated integral over the swapped interval.
type TrapezoidRule struct{}

// NewTrapezoidRule creates a trapezoid rule.
func NewTrapezoidRule() *TrapezoidRule {
	return &TrapezoidRule{}
}

// Name returns the identifier of the trapezoid rule.
func (r *TrapezoidRule) Name() string {
	return TrapezoidIntegration
}

// Integrate sums (f(x)+f(next))*(next-x)/2 over strips of Step width, with
// the last strip cut at upper.
func (r *TrapezoidRule) Integrate(f Function, lower, upper float64) float64 {
	if lower == upper {
		return 0
	}
	if lower > upper {
		return -r.Integrate(f, upper, lower)
	}

	result := 0.0
	for x := lower; x < upper; {
		next := x + Step
		if next > upper {
			next = upper
		}
		result += (f.Evaluate(x) + f.Evaluate(next)) * (next - x) / 2
		x = next
	}
	return result
}

// NewRule creates the integration rule registered under name, keeping callers
// decoupled from the concrete types.
func NewRule(name string) (Rule, error) {
	switch name {
	case RectangleIntegration:
		return NewRectangleRule(), nil
	case TrapezoidIntegration:
		return NewTrapezoidRule(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRule, name)
	}
}

// RuleNames lists the rule names NewRule accepts, in stable order.
func RuleNames() []string {
	return []string{RectangleIntegration, TrapezoidIntegration}
}
