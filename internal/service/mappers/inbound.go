package mappers

import (
	"encoding/json"

	"github.com/google/uuid"

	api "github.com/dx3mirror/IntegralCalculator/api/v1alpha1"
	"github.com/dx3mirror/IntegralCalculator/internal/store/model"
)

// CalculationCreateForm carries a validated create request into the service
// layer. Rule may be empty, in which case the service picks the default.
type CalculationCreateForm struct {
	FunctionKind string
	Parameters   []float64
	Lower        float64
	Upper        float64
	Rule         string
}

func CalculationFormFromApi(resource api.CalculationCreate) CalculationCreateForm {
	return CalculationCreateForm{
		FunctionKind: resource.Function.Kind,
		Parameters:   resource.Function.Parameters,
		Lower:        resource.Lower,
		Upper:        resource.Upper,
		Rule:         resource.Rule,
	}
}

func (f CalculationCreateForm) ToModel() model.Calculation {
	params, _ := json.Marshal(f.Parameters)
	return model.Calculation{
		ID:           uuid.New(),
		FunctionKind: f.FunctionKind,
		Parameters:   params,
		Lower:        f.Lower,
		Upper:        f.Upper,
		Rule:         f.Rule,
	}
}
