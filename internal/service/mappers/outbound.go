package mappers

import (
	"encoding/json"

	api "github.com/dx3mirror/IntegralCalculator/api/v1alpha1"
	"github.com/dx3mirror/IntegralCalculator/internal/store/model"
)

func CalculationToApi(c model.Calculation) api.Calculation {
	var params []float64
	_ = json.Unmarshal(c.Parameters, &params)

	return api.Calculation{
		Id: c.ID,
		Function: api.FunctionSpec{
			Kind:       c.FunctionKind,
			Parameters: params,
		},
		Lower:     c.Lower,
		Upper:     c.Upper,
		Rule:      c.Rule,
		Result:    c.Result,
		CreatedAt: c.CreatedAt,
	}
}

func CalculationListToApi(calculations model.CalculationList) api.CalculationList {
	calculationList := make(api.CalculationList, 0, len(calculations))
	for _, c := range calculations {
		calculationList = append(calculationList, CalculationToApi(c))
	}
	return calculationList
}
