package publish

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/leovegas/reportgen/internal/publish"
	"github.com/leovegas/reportgen/pkg/cmd/cmdutil"
)

const section = "publish"

var publishFlags = []string{"bucket", "region", "endpoint", "key", "key-prefix", "path-style"}

func NewCmdPublish() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "publish report.html",
		Example: "reportgen publish target/site/surefire-report.html --bucket qa-reports --region eu-west-1",
		Short:   "Publish a generated report to S3.",
		Long: `Upload a generated report (HTML, summary or spreadsheet) to an S3 bucket.

AWS credentials are read from the default chain (environment, shared
credentials file, instance role). The bucket must already exist.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			location, err := publish.Publish(&publish.Input{
				File:      args[0],
				Bucket:    viper.GetString(cmdutil.Key(section, "bucket")),
				Region:    viper.GetString(cmdutil.Key(section, "region")),
				Endpoint:  viper.GetString(cmdutil.Key(section, "endpoint")),
				ObjectKey: viper.GetString(cmdutil.Key(section, "key")),
				KeyPrefix: viper.GetString(cmdutil.Key(section, "key-prefix")),
				PathStyle: viper.GetBool(cmdutil.Key(section, "path-style")),
			})
			if err != nil {
				return fmt.Errorf("could not publish report %s: %w", args[0], err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Published", location)
			return nil
		},
	}

	cmd.Flags().StringP("bucket", "b", "", "Destination bucket name.")
	cmd.Flags().StringP("region", "r", "us-east-1", "Destination bucket region.")
	cmd.Flags().String("endpoint", "", "Custom S3 endpoint, e.g. a MinIO server.")
	cmd.Flags().StringP("key", "k", "", "Object key, must end with the report file name. Default: <key-prefix>/<file name>.")
	cmd.Flags().String("key-prefix", publish.DefaultKeyPrefix, "Object key prefix used when --key is not set.")
	cmd.Flags().Bool("path-style", false, "Use path-style bucket addressing.")
	for _, flag := range publishFlags {
		cmdutil.BindFlag(cmd, section, flag)
	}

	return cmd
}
