package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/m-mizutani/reportconf"
	"github.com/urfave/cli/v3"
)

// NewPresetsCommand creates the presets command
func NewPresetsCommand(w io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "presets",
		Usage: "List available presets",
		Action: func(ctx context.Context, c *cli.Command) error {
			for _, name := range reportconf.PresetNames() {
				fmt.Fprintln(w, name)
			}
			return nil
		},
	}
}
