package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/reportconf/internal/scenario"
	"github.com/urfave/cli/v3"
)

// NewDemoCommand creates the demo command
func NewDemoCommand(w io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "demo",
		Usage: "Build and render the built-in sample reports",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "scenario",
				Aliases: []string{"s"},
				Usage:   "Render only the named scenario (monthly, quarterly, annual)",
			},
			outputFlag(),
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return runDemo(ctx, c, w)
		},
	}
}

func runDemo(ctx context.Context, c *cli.Command, w io.Writer) error {
	logger := getLogger(ctx)

	scenarios := scenario.All()
	if name := c.String("scenario"); name != "" {
		s, ok := scenario.Find(name)
		if !ok {
			return goerr.New("unknown scenario", goerr.V("scenario", name))
		}
		scenarios = []scenario.Scenario{s}
	}

	fmt.Fprintln(w, "=== Sales report system (builder) ===")

	for _, s := range scenarios {
		logger.Info("Building scenario", "name", s.Name, "description", s.Description)

		report, err := s.Build()
		if err != nil {
			return goerr.Wrap(err, "failed to build scenario", goerr.V("scenario", s.Name))
		}

		if err := writeReport(ctx, c, w, report); err != nil {
			return goerr.Wrap(err, "failed to render scenario", goerr.V("scenario", s.Name))
		}
	}

	return nil
}
