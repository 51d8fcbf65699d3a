package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dx3mirror/IntegralCalculator/internal/cli"
)

func main() {
	command := NewIntegralCommand()
	if err := command.Execute(); err != nil {
		os.Exit(1)
	}
}

func NewIntegralCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "integral [flags] [options]",
		Short: "integral computes definite integrals and manages the Integral Calculator service.",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
			os.Exit(1)
		},
	}
	cmd.AddCommand(cli.NewCmdCalculate())
	cmd.AddCommand(cli.NewCmdGet())
	cmd.AddCommand(cli.NewCmdDelete())
	cmd.AddCommand(cli.NewCmdVersion())

	return cmd
}
