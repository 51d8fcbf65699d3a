// Package quadrature evaluates definite integrals of real-valued functions.
//
// Functions and integration rules are small interfaces with interchangeable implementations; a Calculator pairs one rule with a list of observers and broadcasts every result it produces.
package quadrature
