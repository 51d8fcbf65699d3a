package quadrature

import "errors"

var (
	// ErrRuleNotSet is returned by Calculator.Calculate while no integration
	// rule has been installed.
	ErrRuleNotSet = errors.New("integration strategy is not set")

	ErrUnknownFunction = errors.New("unknown function kind")
	ErrUnknownRule     = errors.New("unknown integration rule")
)
