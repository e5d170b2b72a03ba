package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "samplegen",
	Short:         "Generate sample_products.xlsx with the fixed sample catalog",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := boot()
		if err != nil {
			return err
		}
		run, err := app.samples.Generate(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✅ Created %s with valid integer stock values\n", app.cfg.OutputFile)
		fmt.Fprintf(cmd.OutOrStdout(), "   %s (%d rows)\n", run.Path, run.Rows)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
	rootCmd.AddCommand(historyCmd)
}
