package checks

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/leovegas/reportgen/internal/report/checks"
	"github.com/leovegas/reportgen/pkg/cmd/cmdutil"
)

const (
	flagJSONOutput = "json-output"
	flagHTMLOutput = "html-output"
	flagThreshold  = "threshold"
)

// legacyEnv keeps the variable names used by the CI jobs.
var legacyEnv = map[string]string{
	cmdutil.FlagInput: "CHECKS_PATH",
	flagJSONOutput:    "OUT_JSON",
	flagHTMLOutput:    "OUT_HTML",
	flagThreshold:     "CHECKS_THRESHOLD",
}

func NewCmdChecks() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "checks",
		Example: "CHECKS_THRESHOLD=95 reportgen checks",
		Short:   "Summarize assertion checks and gate on the pass percentage.",
		Long: `Summarize the assertion checks collected during an e2e run into JSON and HTML.

Exit codes: 2 when the checks file is missing or unreadable, 3 when a
threshold is set and the pass percentage is below it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return checks.Generate(&checks.Options{
				Input:      viper.GetString(cmdutil.Key(checks.ReportName, cmdutil.FlagInput)),
				JSONOutput: viper.GetString(cmdutil.Key(checks.ReportName, flagJSONOutput)),
				HTMLOutput: viper.GetString(cmdutil.Key(checks.ReportName, flagHTMLOutput)),
				Threshold:  checks.ParseThreshold(viper.GetString(cmdutil.Key(checks.ReportName, flagThreshold))),
				Stdout:     cmd.OutOrStdout(),
			})
		},
	}

	cmd.Flags().StringP(cmdutil.FlagInput, "i", checks.DefaultInput, "Checks file collected during the run.")
	cmd.Flags().String(flagJSONOutput, checks.DefaultJSONOutput, "JSON summary output file.")
	cmd.Flags().String(flagHTMLOutput, checks.DefaultHTMLOutput, "HTML summary output file.")
	cmd.Flags().String(flagThreshold, "", "Minimum pass percentage, the command exits with code 3 below it.")

	for flag, env := range legacyEnv {
		key := cmdutil.Key(checks.ReportName, flag)
		cmdutil.BindFlag(cmd, checks.ReportName, flag)
		if err := viper.BindEnv(key, cmdutil.EnvName(key), env); err != nil {
			log.Warnf("Unable to bind env %s\n", env)
		}
	}

	return cmd
}
