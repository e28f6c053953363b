package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	logwriter "github.com/sirupsen/logrus/hooks/writer"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/leovegas/reportgen/internal/exitcode"
	"github.com/leovegas/reportgen/pkg/cmd/all"
	"github.com/leovegas/reportgen/pkg/cmd/checks"
	"github.com/leovegas/reportgen/pkg/cmd/cmdutil"
	"github.com/leovegas/reportgen/pkg/cmd/mochawesome"
	"github.com/leovegas/reportgen/pkg/cmd/publish"
	"github.com/leovegas/reportgen/pkg/cmd/surefire"
	"github.com/leovegas/reportgen/pkg/version"
)

const logFile = "reportgen/reportgen.log"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "reportgen",
	Short: "reportgen",
	Long:  `reportgen renders test run results (mochawesome JSON, Surefire XML, assertion checks) into static HTML reports`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Validate logging level
		loglevel := viper.GetString("log-level")
		logrusLevel, err := log.ParseLevel(loglevel)
		if err != nil {
			log.Fatal(err)
		}
		log.SetLevel(logrusLevel)

		log.SetFormatter(&log.TextFormatter{
			FullTimestamp: true,
		})
		log.SetOutput(os.Stderr)

		logPath, err := xdg.StateFile(logFile)
		if err != nil {
			log.Debugf("unable to resolve log file %s: %v", logFile, err)
			return
		}
		fdLog, err := os.OpenFile(logPath, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
		if err != nil {
			log.Debugf("error opening file %s: %v", logPath, err)
			return
		}
		log.AddHook(&logwriter.Hook{
			Writer: fdLog,
			LogLevels: []log.Level{
				log.PanicLevel,
				log.FatalLevel,
				log.ErrorLevel,
				log.WarnLevel,
				log.InfoLevel,
				log.DebugLevel,
			},
		})
	},
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitcode.FromError(err))
	}
}

func initBindFlag(flag string) {
	err := viper.BindPFlag(flag, rootCmd.PersistentFlags().Lookup(flag))
	if err != nil {
		log.Warnf("Unable to bind flag %s\n", flag)
	}
}

func init() {
	// A missing .env is fine; CI jobs export the variables directly.
	_ = godotenv.Load()

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (yaml, json or toml)")
	rootCmd.PersistentFlags().String("log-level", "info", "logging level")
	initBindFlag("config")
	initBindFlag("log-level")

	rootCmd.AddCommand(mochawesome.NewCmdMochawesome())
	rootCmd.AddCommand(surefire.NewCmdSurefire())
	rootCmd.AddCommand(checks.NewCmdChecks())
	rootCmd.AddCommand(all.NewCmdAll())
	rootCmd.AddCommand(publish.NewCmdPublish())
	rootCmd.AddCommand(version.NewCmdVersion())
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	viper.SetEnvPrefix(cmdutil.EnvPrefix)
	viper.SetEnvKeyReplacer(cmdutil.EnvKeyReplacer)
	viper.AutomaticEnv() // read in environment variables that match

	cfgFile := viper.GetString("config")
	if cfgFile == "" {
		return
	}
	viper.SetConfigFile(cfgFile)
	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("unable to read config file %s: %v", filepath.Clean(cfgFile), err)
	}
	log.Debugf("using config file %s", viper.ConfigFileUsed())
}
