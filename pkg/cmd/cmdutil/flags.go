// Package cmdutil binds the report flags shared by the pipeline commands.
package cmdutil

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/leovegas/reportgen/internal/report"
)

const (
	FlagInput           = "input"
	FlagOutput          = "output"
	FlagSummaryFile     = "summary-file"
	FlagSpreadsheetFile = "xlsx-file"
	FlagShowSummary     = "show-summary"
)

// Key returns the viper key of a command flag, e.g. surefire.input. The
// environment variable is REPORTGEN_SUREFIRE_INPUT.
func Key(section, flag string) string {
	return section + "." + flag
}

// BindFlag binds a command flag to its viper key.
func BindFlag(cmd *cobra.Command, section, flag string) {
	if err := viper.BindPFlag(Key(section, flag), cmd.Flags().Lookup(flag)); err != nil {
		log.Warnf("Unable to bind flag %s\n", flag)
	}
}

// AddReportFlags registers the flags of a report pipeline under section.
func AddReportFlags(cmd *cobra.Command, section, input, output string) {
	cmd.Flags().StringP(FlagInput, "i", input, "Report input path.")
	cmd.Flags().StringP(FlagOutput, "o", output, "HTML report output file.")
	cmd.Flags().String(FlagSummaryFile, "", "Also save the run summary to this file (.json, .yaml).")
	cmd.Flags().String(FlagSpreadsheetFile, "", "Also save one row per test to this xlsx file.")
	cmd.Flags().Bool(FlagShowSummary, false, "Print the run summary after writing the report.")

	for _, flag := range []string{FlagInput, FlagOutput, FlagSummaryFile, FlagSpreadsheetFile, FlagShowSummary} {
		BindFlag(cmd, section, flag)
	}
}

// ReportOptions reads the pipeline options of section from viper.
func ReportOptions(section string) *report.Options {
	return &report.Options{
		Input:           viper.GetString(Key(section, FlagInput)),
		Output:          viper.GetString(Key(section, FlagOutput)),
		SummaryFile:     viper.GetString(Key(section, FlagSummaryFile)),
		SpreadsheetFile: viper.GetString(Key(section, FlagSpreadsheetFile)),
		ShowSummary:     viper.GetBool(Key(section, FlagShowSummary)),
	}
}
