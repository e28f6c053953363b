package surefire

import (
	"github.com/spf13/cobra"

	"github.com/leovegas/reportgen/internal/report/surefire"
	"github.com/leovegas/reportgen/pkg/cmd/cmdutil"
)

func NewCmdSurefire() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "surefire",
		Example: "reportgen surefire --input target/surefire-reports",
		Short:   "Render Surefire XML reports as an HTML table.",
		Long: `Render every TEST-*.xml file of the Surefire reports directory as a single
static HTML table.

Files that cannot be parsed are logged and skipped. A report is always
written, with zero counters when no file could be read.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := cmdutil.ReportOptions(surefire.ReportName)
			opts.Stdout = cmd.OutOrStdout()
			return surefire.Generate(opts)
		},
	}
	cmdutil.AddReportFlags(cmd, surefire.ReportName, surefire.DefaultInput, surefire.DefaultOutput)

	return cmd
}
