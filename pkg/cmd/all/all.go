package all

import (
	"io"
	"sync"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/leovegas/reportgen/internal/report"
	"github.com/leovegas/reportgen/internal/report/mochawesome"
	"github.com/leovegas/reportgen/internal/report/surefire"
	"github.com/leovegas/reportgen/pkg/cmd/cmdutil"
)

type pipeline struct {
	name     string
	generate func(*report.Options) error
}

var pipelines = []pipeline{
	{name: mochawesome.ReportName, generate: mochawesome.Generate},
	{name: surefire.ReportName, generate: surefire.Generate},
}

func NewCmdAll() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Render the mochawesome and Surefire reports.",
		Long: `Render the mochawesome and Surefire reports concurrently, using the paths
configured for each command (flag defaults, config file or REPORTGEN_* env).

Both reports are always attempted; the command fails when the mochawesome
report could not be generated.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAll(cmd.OutOrStdout())
		},
	}
}

func runAll(stdout io.Writer) error {
	out := &lockedWriter{w: stdout}

	var g errgroup.Group
	for _, p := range pipelines {
		p := p
		opts := cmdutil.ReportOptions(p.name)
		opts.Stdout = out
		// summary tables of concurrent runs would interleave
		opts.ShowSummary = false
		g.Go(func() error {
			log.Debugf("generating %s report", p.name)
			return p.generate(opts)
		})
	}
	return g.Wait()
}

// lockedWriter serializes the confirmation lines of concurrent pipelines.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}
