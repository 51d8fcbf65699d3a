package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thoas/go-funk"
	"sigs.k8s.io/yaml"

	"github.com/dx3mirror/IntegralCalculator/internal/quadrature"
)

type CalculateOptions struct {
	Function     string
	Coefficients string
	Params       string
	Lower        float64
	Upper        float64
	Rule         string
	Output       string

	parameters []float64
}

func DefaultCalculateOptions() *CalculateOptions {
	return &CalculateOptions{
		Function: quadrature.PolynomialFunction,
		Rule:     quadrature.RectangleIntegration,
	}
}

func NewCmdCalculate() *cobra.Command {
	o := DefaultCalculateOptions()
	cmd := &cobra.Command{
		Use:     "calculate",
		Short:   "Compute a definite integral locally.",
		Example: "calculate --coefficients 0,3 --lower 0 --upper 2 --rule trapezoid",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := o.Validate(args); err != nil {
				return err
			}
			return o.Run(cmd.Context(), args)
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *CalculateOptions) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.Function, "function", "f", o.Function, "Function kind to integrate. One of: (polynomial, sinusoid).")
	fs.StringVar(&o.Coefficients, "coefficients", o.Coefficients, "Polynomial coefficients in ascending order of power, comma separated.")
	fs.StringVar(&o.Params, "params", o.Params, "Sinusoid amplitude, angular frequency and phase, comma separated.")
	fs.Float64Var(&o.Lower, "lower", o.Lower, "Lower bound of integration.")
	fs.Float64Var(&o.Upper, "upper", o.Upper, "Upper bound of integration.")
	fs.StringVarP(&o.Rule, "rule", "r", o.Rule, "Integration rule to apply.")
	fs.StringVarP(&o.Output, "output", "o", o.Output, fmt.Sprintf("Output format. One of: (%s).", strings.Join(legalOutputTypes, ", ")))
}

func (o *CalculateOptions) Complete(cmd *cobra.Command, args []string) error {
	switch o.Function {
	case quadrature.PolynomialFunction:
		if o.Params != "" {
			return fmt.Errorf("--params applies to sinusoid functions, use --coefficients")
		}
		values, err := parseFloatList(o.Coefficients)
		if err != nil {
			return err
		}
		o.parameters = values
	case quadrature.SinusoidFunction:
		if o.Coefficients != "" {
			return fmt.Errorf("--coefficients applies to polynomial functions, use --params")
		}
		values, err := parseFloatList(o.Params)
		if err != nil {
			return err
		}
		o.parameters = values
	}
	// unknown function kinds are rejected by the factory in Run
	return nil
}

func (o *CalculateOptions) Validate(args []string) error {
	if len(o.Output) > 0 && !funk.Contains(legalOutputTypes, o.Output) {
		return fmt.Errorf("output format must be one of %s", strings.Join(legalOutputTypes, ", "))
	}
	return nil
}

type calculationOutput struct {
	Function   string    `json:"function"`
	Parameters []float64 `json:"parameters,omitempty"`
	Lower      float64   `json:"lower"`
	Upper      float64   `json:"upper"`
	Rule       string    `json:"rule"`
	Result     float64   `json:"result"`
}

func (o *CalculateOptions) Run(ctx context.Context, args []string) error {
	f, err := quadrature.NewFunction(o.Function, o.parameters...)
	if err != nil {
		return err
	}

	rule, err := quadrature.NewRule(o.Rule)
	if err != nil {
		return err
	}

	calculator := quadrature.NewCalculator()
	calculator.SetRule(rule)

	output := calculationOutput{
		Function:   o.Function,
		Parameters: o.parameters,
		Lower:      o.Lower,
		Upper:      o.Upper,
		Rule:       rule.Name(),
	}
	calculator.Subscribe(func(result float64) {
		output.Result = result
	})

	if _, err := calculator.Calculate(f, o.Lower, o.Upper); err != nil {
		return err
	}

	switch o.Output {
	case jsonFormat:
		marshalled, err := json.Marshal(output)
		if err != nil {
			return fmt.Errorf("marshalling result: %w", err)
		}
		fmt.Printf("%s\n", string(marshalled))
	case yamlFormat:
		marshalled, err := yaml.Marshal(output)
		if err != nil {
			return fmt.Errorf("marshalling result: %w", err)
		}
		fmt.Printf("%s", string(marshalled))
	default:
		fmt.Printf("%g\n", output.Result)
	}

	return nil
}
