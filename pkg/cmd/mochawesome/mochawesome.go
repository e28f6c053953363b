package mochawesome

import (
	"github.com/spf13/cobra"

	"github.com/leovegas/reportgen/internal/report/mochawesome"
	"github.com/leovegas/reportgen/pkg/cmd/cmdutil"
)

func NewCmdMochawesome() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "mochawesome",
		Example: "reportgen mochawesome --input cypress/results/mochawesome.json",
		Short:   "Render the mochawesome JSON report as HTML.",
		Long: `Render the mochawesome JSON report written by Cypress as a static HTML page.

The command fails when the JSON report is missing or is not valid JSON, and
no HTML is written in that case.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := cmdutil.ReportOptions(mochawesome.ReportName)
			opts.Stdout = cmd.OutOrStdout()
			return mochawesome.Generate(opts)
		},
	}
	cmdutil.AddReportFlags(cmd, mochawesome.ReportName, mochawesome.DefaultInput, mochawesome.DefaultOutput)

	return cmd
}
