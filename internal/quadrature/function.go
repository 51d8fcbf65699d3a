package quadrature

import (
	"fmt"
	"math"
)

// Function is a real-valued function of one real variable.
type Function interface {
	// Evaluate returns the value of the function at x.
	Evaluate(x float64) float64
}

// Function kinds accepted by NewFunction.
const (
	PolynomialFunction string = "polynomial"
	SinusoidFunction   string = "sinusoid"
)

// Compile-time assertions that the bundled functions implement the Function interface.
var (
	_ Function = (*Polynomial)(nil)
	_ Function = (*Sinusoid)(nil)
)

// Polynomial evaluates c0 + c1*x + c2*x^2 + ... for a fixed coefficient list.
type Polynomial struct {
	coefficients []float64
}

// NewPolynomial creates a polynomial from coefficients given in ascending
// order of power. No coefficients yields the identically-zero function and a
// single coefficient yields a constant. The slice is copied, so later changes
// by the caller do not affect the polynomial.
func NewPolynomial(coefficients ...float64) *Polynomial {
	coeffs := make([]float64, len(coefficients))
	copy(coeffs, coefficients)
	return &Polynomial{coefficients: coeffs}
}

// Evaluate computes the polynomial value at x by direct summation of the
// terms in ascending order of power.
func (p *Polynomial) Evaluate(x float64) float64 {
	result := 0.0
	power := 1.0
	for _, c := range p.coefficients {
		result += c * power
		power *= x
	}
	return result
}

// Sinusoid evaluates amplitude * sin(angularFrequency*x + phase).
type Sinusoid struct {
	amplitude        float64
	angularFrequency float64
	phase            float64
}

// NewSinusoid creates a sinusoid with the given amplitude, angular frequency
// and phase.
func NewSinusoid(amplitude, angularFrequency, phase float64) *Sinusoid {
	return &Sinusoid{
		amplitude:        amplitude,
		angularFrequency: angularFrequency,
		phase:            phase,
	}
}

// Evaluate returns the sinusoid value at x.
func (s *Sinusoid) Evaluate(x float64) float64 {
	return s.amplitude * math.Sin(s.angularFrequency*x+s.phase)
}

// NewFunction creates a Function of the given kind from its parameter list,
// keeping callers decoupled from the concrete types. For PolynomialFunction
// the parameters are the coefficients in ascending order of power. For
// SinusoidFunction they are amplitude, angular frequency and phase, in that
// order; omitted ones default to 1, 1 and 0.
func NewFunction(kind string, params ...float64) (Function, error) {
	switch kind {
	case PolynomialFunction:
		return NewPolynomial(params...), nil
	case SinusoidFunction:
		amplitude, angularFrequency, phase := 1.0, 1.0, 0.0
		if len(params) > 0 {
			amplitude = params[0]
		}
		if len(params) > 1 {
			angularFrequency = params[1]
		}
		if len(params) > 2 {
			phase = params[2]
		}
		return NewSinusoid(amplitude, angularFrequency, phase), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFunction, kind)
	}
}
