package model

// CalculationStats aggregates stored calculations for reporting.
type CalculationStats struct {
	// Total is the total number of stored calculations.
	Total int
	// TotalByRule is the number of calculations per integration rule.
	TotalByRule map[string]int
	// TotalByFunction is the number of calculations per function kind.
	TotalByFunction map[string]int
}

func NewCalculationStats(calculations []Calculation) CalculationStats {
	stats := CalculationStats{
		TotalByRule:     make(map[string]int),
		TotalByFunction: make(map[string]int),
	}

	for i := range calculations {
		stats.Total++
		stats.TotalByRule[calculations[i].Rule]++
		stats.TotalByFunction[calculations[i].FunctionKind]++
	}

	return stats
}
