// Command colada pretty-prints leveled JSON logs.
//
// It reads records from stdin, one per line, and writes one colorized
// summary line per record to stdout. Lines that are not records of the
// convention are copied through unchanged. Diagnostics go to stderr; set
// COLADA_LOG_LEVEL=debug to see them.
//
//	node server.js | colada
package main

import (
	"io"
	"os"

	"github.com/philipp01105/colada/formatter"
	"github.com/philipp01105/colada/handler"
	"github.com/philipp01105/colada/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var version = "0.1.0"

func newRootCmd(in io.Reader, out io.Writer, log *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:           "colada",
		Short:         "Pretty-print leveled JSON logs read from stdin",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			h := handler.NewConsoleHandler(handler.ConsoleConfig{
				Writer:    out,
				Formatter: formatter.NewPrettyFormatter(formatter.Config{}),
			})
			defer h.Close()

			err := handler.Stream(cmd.Context(), in, h)
			stats := h.Stats()
			log.Debug("stream finished",
				zap.Uint64("processed", stats.ProcessedTotal),
				zap.Uint64("failed", stats.FailedTotal))
			return err
		},
	}
}

func main() {
	log := logger.Default()
	code := run(os.Args[1:], os.Stdin, os.Stdout, log)
	_ = log.Sync()
	os.Exit(code)
}

// run executes the root command and maps a failure to exit code 1. The
// error is reported once, through log.
func run(args []string, in io.Reader, out io.Writer, log *zap.Logger) int {
	cmd := newRootCmd(in, out, log)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		log.Error("stream failed", zap.Error(err))
		return 1
	}
	return 0
}
