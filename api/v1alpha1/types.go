package v1alpha1

import (
	"time"

	"github.com/google/uuid"
)

// Function kinds understood by the service.
const (
	FunctionKindPolynomial string = "polynomial"
	FunctionKindSinusoid   string = "sinusoid"
)

// Integration rule names understood by the service.
const (
	RuleRectangle string = "rectangle"
	RuleTrapezoid string = "trapezoid"
)

// FunctionSpec describes the integrand of a calculation. For polynomial
// functions Parameters holds the coefficients in ascending order of power and
// may be empty. For sinusoid functions it holds amplitude, angular frequency
// and phase.
type FunctionSpec struct {
	Kind       string    `json:"kind" validate:"required,functionKind"`
	Parameters []float64 `json:"parameters,omitempty" validate:"dive,finite"`
}

// CalculationCreate is the request body for creating a calculation.
type CalculationCreate struct {
	Function FunctionSpec `json:"function" validate:"required"`
	Lower    float64      `json:"lower" validate:"finite"`
	Upper    float64      `json:"upper" validate:"finite"`
	Rule     string       `json:"rule,omitempty" validate:"omitempty,ruleName"`
}

// Calculation is a stored calculation result.
type Calculation struct {
	Id        uuid.UUID    `json:"id"`
	Function  FunctionSpec `json:"function"`
	Lower     float64      `json:"lower"`
	Upper     float64      `json:"upper"`
	Rule      string       `json:"rule"`
	Result    float64      `json:"result"`
	CreatedAt time.Time    `json:"createdAt"`
}

type CalculationList []Calculation

// RuleList enumerates the integration rules the service accepts.
type RuleList struct {
	Rules   []string `json:"rules"`
	Default string   `json:"default"`
}

// Info reports the version of the running service.
type Info struct {
	GitCommit   string `json:"gitCommit"`
	VersionName string `json:"versionName"`
}

// Error is the body returned with every non-2xx response.
type Error struct {
	Message   string  `json:"message"`
	RequestId *string `json:"requestId,omitempty"`
}
