package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dx3mirror/IntegralCalculator/internal/events"
	"github.com/dx3mirror/IntegralCalculator/internal/quadrature"
	"github.com/dx3mirror/IntegralCalculator/internal/service/mappers"
	"github.com/dx3mirror/IntegralCalculator/internal/store"
	"github.com/dx3mirror/IntegralCalculator/internal/store/model"
	"github.com/dx3mirror/IntegralCalculator/pkg/metrics"
)

// CalculationService orchestrates the calculation workflow. It evaluates the
// integral with the quadrature package, persists the outcome and emits a
// calculation event.
type CalculationService struct {
	store       store.Store
	eventWriter *events.EventProducer
	calculators map[string]*quadrature.Calculator
}

func NewCalculationService(store store.Store, ew *events.EventProducer) *CalculationService {
	// One shared calculator per rule. Requests pick theirs by name, so a
	// calculation never observes another request's rule swap.
	calculators := make(map[string]*quadrature.Calculator, len(quadrature.RuleNames()))
	for _, name := range quadrature.RuleNames() {
		rule, err := quadrature.NewRule(name)
		if err != nil {
			continue
		}

		calculator := quadrature.NewCalculator()
		calculator.SetRule(rule)
		calculator.Subscribe(func(result float64) {
			zap.S().Named("calculation_service").Debugw("integral evaluated", "rule", name, "result", result)
		})
		calculators[name] = calculator
	}

	return &CalculationService{
		store:       store,
		eventWriter: ew,
		calculators: calculators,
	}
}

// Compute evaluates the integral described by form, stores it and returns the
// stored calculation. An empty rule selects the default rectangle rule.
func (s *CalculationService) Compute(ctx context.Context, form mappers.CalculationCreateForm) (model.Calculation, error) {
	if form.Rule == "" {
		form.Rule = quadrature.RectangleIntegration
	}

	f, err := quadrature.NewFunction(form.FunctionKind, form.Parameters...)
	if err != nil {
		return model.Calculation{}, NewErrInvalidCalculation("%s", err)
	}

	calculator, ok := s.calculators[form.Rule]
	if !ok {
		return model.Calculation{}, NewErrInvalidCalculation("%s: %q", quadrature.ErrUnknownRule, form.Rule)
	}

	start := time.Now()
	result, err := calculator.Calculate(f, form.Lower, form.Upper)
	metrics.ObserveCalculationDurationMetric(form.Rule, time.Since(start))
	if err != nil {
		metrics.IncreaseCalculationsTotalMetric(form.Rule, metrics.CalculationStatusFailed)
		return model.Calculation{}, err
	}
	metrics.IncreaseCalculationsTotalMetric(form.Rule, metrics.CalculationStatusSucceeded)

	calculation := form.ToModel()
	calculation.Result = result

	created, err := s.store.Calculation().Create(ctx, calculation)
	if err != nil {
		return model.Calculation{}, err
	}

	s.emitCalculationEvent(ctx, *created)

	return *created, nil
}

func (s *CalculationService) ListCalculations(ctx context.Context, filter *CalculationFilter) (model.CalculationList, error) {
	storeFilter := store.NewCalculationQueryFilter()
	opts := store.NewCalculationQueryOptions().WithSortOrder(store.SortByCreatedTimeDesc)

	if filter != nil && filter.Rule != "" {
		storeFilter = storeFilter.ByRule(filter.Rule)
	}

	return s.store.Calculation().List(ctx, storeFilter, opts)
}

func (s *CalculationService) GetCalculation(ctx context.Context, id uuid.UUID) (*model.Calculation, error) {
	calculation, err := s.store.Calculation().Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrCalculationNotFound(id)
		}
		return nil, err
	}

	return calculation, nil
}

func (s *CalculationService) DeleteCalculation(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetCalculation(ctx, id); err != nil {
		return err
	}

	return s.store.Calculation().Delete(ctx, id)
}

// Rules lists the integration rules Compute accepts, together with the rule
// used when a request does not name one.
func (s *CalculationService) Rules() (rules []string, defaultRule string) {
	return quadrature.RuleNames(), quadrature.RectangleIntegration
}

func (s *CalculationService) emitCalculationEvent(ctx context.Context, calculation model.Calculation) {
	if s.eventWriter == nil {
		return
	}

	var params []float64
	_ = json.Unmarshal(calculation.Parameters, &params)

	event := events.CalculationEvent{
		CalculationID: calculation.ID.String(),
		FunctionKind:  calculation.FunctionKind,
		Parameters:    params,
		Lower:         calculation.Lower,
		Upper:         calculation.Upper,
		Rule:          calculation.Rule,
		Result:        calculation.Result,
	}

	data, err := json.Marshal(event)
	if err != nil {
		return
	}

	if err := s.eventWriter.Write(ctx, events.CalculationMessageKind, bytes.NewBuffer(data)); err != nil {
		zap.S().Named("calculation_service").Errorw("failed to write event", "error", err, "event_kind", events.CalculationMessageKind)
	}
}

type CalculationFilterFunc func(f *CalculationFilter)

type CalculationFilter struct {
	Rule string
}

func NewCalculationFilter(filters ...CalculationFilterFunc) *CalculationFilter {
	f := &CalculationFilter{}
	for _, fn := range filters {
		fn(f)
	}
	return f
}

func WithRule(rule string) CalculationFilterFunc {
	return func(f *CalculationFilter) {
		f.Rule = rule
	}
}
