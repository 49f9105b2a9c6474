package commands

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/clog"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/reportconf"
	"github.com/urfave/cli/v3"
)

const (
	outputText = "text"
	outputYAML = "yaml"
)

// getLogger gets or creates a logger from context
func getLogger(ctx context.Context) *slog.Logger {
	if logger := ctxlog.From(ctx); logger != nil {
		return logger
	}
	return slog.New(clog.New(
		clog.WithWriter(os.Stderr),
		clog.WithLevel(slog.LevelWarn),
	))
}

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output format (text or yaml)",
		Value:   outputText,
		Sources: cli.EnvVars("REPORTCONF_OUTPUT"),
	}
}

// writeReport renders report to w in the format selected by the output flag
func writeReport(ctx context.Context, c *cli.Command, w io.Writer, report *reportconf.ReportConfig) error {
	opts := []reportconf.Option{
		reportconf.WithLogger(getLogger(ctx)),
		reportconf.WithDateLayout(c.String("date-layout")),
	}

	switch output := c.String("output"); output {
	case "", outputText:
		return report.Generate(w, opts...)
	case outputYAML:
		return report.Describe(w, opts...)
	default:
		return goerr.New("unsupported output format", goerr.V("output", output))
	}
}
