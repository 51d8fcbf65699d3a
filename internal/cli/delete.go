package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type DeleteOptions struct {
	GlobalOptions
}

func DefaultDeleteOptions() *DeleteOptions {
	return &DeleteOptions{
		GlobalOptions: DefaultGlobalOptions(),
	}
}

func NewCmdDelete() *cobra.Command {
	o := DefaultDeleteOptions()
	cmd := &cobra.Command{
		Use:   "delete TYPE/ID",
		Short: "Delete calculations from the service.",
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

func (o *DeleteOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)
}

func (o *DeleteOptions) Complete(cmd *cobra.Command, args []string) error {
	if err := o.GlobalOptions.Complete(cmd, args); err != nil {
		return err
	}

	return nil
}

func (o *DeleteOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}

	kind, id, err := parseAndValidateKindId(args[0])
	if err != nil {
		return err
	}
	if kind != CalculationKind {
		return fmt.Errorf("unsupported resource kind: %s", kind)
	}
	if id == nil {
		return fmt.Errorf("specify the calculation to delete as %s/ID", CalculationKind)
	}
	return nil
}

func (o *DeleteOptions) Run(ctx context.Context, args []string) error {
	c := o.Client()

	kind, id, err := parseAndValidateKindId(args[0])
	if err != nil {
		return err
	}

	if err := c.DeleteCalculation(ctx, *id); err != nil {
		return fmt.Errorf("deleting %s/%s: %w", kind, id, err)
	}
	fmt.Printf("%s/%s deleted\n", kind, id)

	return nil
}
