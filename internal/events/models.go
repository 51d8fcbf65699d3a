package events

// CalculationEvent is the payload emitted after every stored calculation.
type CalculationEvent struct {
	CalculationID string    `json:"calculation_id"`
	FunctionKind  string    `json:"function_kind"`
	Parameters    []float64 `json:"parameters"`
	Lower         float64   `json:"lower"`
	Upper         float64   `json:"upper"`
	Rule          string    `json:"rule"`
	Result        float64   `json:"result"`
}
