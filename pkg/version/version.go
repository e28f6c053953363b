// Package version contains all identifiable versioning info for
// describing the reportgen project.
package version

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	projectName = "reportgen"
	version     = "unknown"
	commit      = "unknown"
)

var Version = VersionContext{
	Name:    projectName,
	Version: version,
	Commit:  commit,
}

type VersionContext struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
}

func (vc *VersionContext) String() string {
	return fmt.Sprintf("reportgen CLI: %s+%s", vc.Version, vc.Commit)
}

func NewCmdVersion() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print reportgen version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), Version.String())
			fmt.Fprintf(cmd.OutOrStdout(), "Go: %s\n", runtime.Version())
		},
	}
}
