package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thoas/go-funk"
	"sigs.k8s.io/yaml"

	api "github.com/dx3mirror/IntegralCalculator/api/v1alpha1"
)

const (
	jsonFormat = "json"
	yamlFormat = "yaml"
)

var (
	legalOutputTypes = []string{jsonFormat, yamlFormat}
)

type GetOptions struct {
	GlobalOptions

	Output string
	Rule   string
}

func DefaultGetOptions() *GetOptions {
	return &GetOptions{
		GlobalOptions: DefaultGlobalOptions(),
	}
}

func NewCmdGet() *cobra.Command {
	o := DefaultGetOptions()
	cmd := &cobra.Command{
		Use:   "get (TYPE | TYPE/ID)",
		Short: "Display one or many resources.",
		Args:  cobra.ExactArgs(1),
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

func (o *GetOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.StringVarP(&o.Output, "output", "o", o.Output, fmt.Sprintf("Output format. One of: (%s).", strings.Join(legalOutputTypes, ", ")))
	fs.StringVarP(&o.Rule, "rule", "r", o.Rule, "List only calculations computed with this rule.")
}

func (o *GetOptions) Complete(cmd *cobra.Command, args []string) error {
	if err := o.GlobalOptions.Complete(cmd, args); err != nil {
		return err
	}
	return nil
}

func (o *GetOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}

	_, _, err := parseAndValidateKindId(args[0])
	if err != nil {
		return err
	}

	if len(o.Output) > 0 && !funk.Contains(legalOutputTypes, o.Output) {
		return fmt.Errorf("output format must be one of %s", strings.Join(legalOutputTypes, ", "))
	}

	return nil
}

func (o *GetOptions) Run(ctx context.Context, args []string) error {
	c := o.Client()

	kind, id, err := parseAndValidateKindId(args[0])
	if err != nil {
		return err
	}

	var response interface{}

	switch {
	case kind == CalculationKind && id != nil:
		response, err = c.GetCalculation(ctx, *id)
	case kind == CalculationKind && id == nil:
		response, err = c.ListCalculations(ctx, o.Rule)
	case kind == RuleKind && id == nil:
		response, err = c.ListRules(ctx)
	default:
		return fmt.Errorf("unsupported resource kind: %s", kind)
	}

	errorPrefix := fmt.Sprintf("reading %s/%s", kind, id)
	if id == nil {
		errorPrefix = fmt.Sprintf("listing %s", plural(kind))
	}
	if err != nil {
		return fmt.Errorf(errorPrefix+": %w", err)
	}

	switch o.Output {
	case jsonFormat:
		marshalled, err := json.Marshal(response)
		if err != nil {
			return fmt.Errorf("marshalling resource: %w", err)
		}
		fmt.Printf("%s\n", string(marshalled))
		return nil
	case yamlFormat:
		marshalled, err := yaml.Marshal(response)
		if err != nil {
			return fmt.Errorf("marshalling resource: %w", err)
		}
		fmt.Printf("%s", string(marshalled))
		return nil
	default:
		return printTable(response)
	}
}

func printTable(response interface{}) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 1, '\t', 0)
	switch v := response.(type) {
	case *api.Calculation:
		printCalculationsTable(w, *v)
	case api.CalculationList:
		printCalculationsTable(w, v...)
	case *api.RuleList:
		printRulesTable(w, v)
	default:
		return fmt.Errorf("unknown resource type %T", response)
	}
	w.Flush()
	return nil
}

func printCalculationsTable(w *tabwriter.Writer, calculations ...api.Calculation) {
	fmt.Fprintln(w, "ID\tFUNCTION\tRULE\tRESULT")
	for _, c := range calculations {
		fmt.Fprintf(w, "%s\t%s\t%s\t%g\n", c.Id, c.Function.Kind, c.Rule, c.Result)
	}
}

func printRulesTable(w *tabwriter.Writer, rules *api.RuleList) {
	fmt.Fprintln(w, "NAME\tDEFAULT")
	for _, name := range rules.Rules {
		fmt.Fprintf(w, "%s\t%t\n", name, name == rules.Default)
	}
}
