package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/clog"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/reportconf/cmd/reportconf/commands"
	"github.com/urfave/cli/v3"
)

var version = "dev"

func main() {
	if err := run(os.Args, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer) *cli.Command {
	return &cli.Command{
		Name:    "reportconf",
		Usage:   "Sales report configuration builder",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "date-layout",
				Usage:   "Go time layout used to print the report period",
				Value:   "02/01/2006",
				Sources: cli.EnvVars("REPORTCONF_DATE_LAYOUT"),
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Enable verbose logging",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			// Setup logger
			level := slog.LevelWarn
			if c.Bool("verbose") {
				level = slog.LevelInfo
			}
			if c.Bool("debug") {
				level = slog.LevelDebug
			}

			logger := slog.New(clog.New(
				clog.WithWriter(os.Stderr),
				clog.WithLevel(level),
			))

			ctx = ctxlog.With(ctx, logger)

			return ctx, nil
		},
		Commands: []*cli.Command{
			commands.NewDemoCommand(w),
			commands.NewBuildCommand(w),
			commands.NewPresetsCommand(w),
		},
	}
}

func run(args []string, w io.Writer) error {
	return newApp(w).Run(context.Background(), args)
}
