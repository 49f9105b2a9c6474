package commands

import (
	"context"
	"io"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/reportconf"
	"github.com/urfave/cli/v3"
)

const dateFlagLayout = "2006-01-02"

// NewBuildCommand creates the build command
func NewBuildCommand(w io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "build",
		Usage: "Build a report configuration from flags and render it",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "preset", Usage: "Preset applied before the other flags"},
			&cli.StringFlag{Name: "title", Aliases: []string{"t"}, Usage: "Report title"},
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: "Output format of the report, e.g. PDF"},
			&cli.StringFlag{Name: "from", Usage: "Period start (YYYY-MM-DD)"},
			&cli.StringFlag{Name: "to", Usage: "Period end (YYYY-MM-DD)"},
			&cli.StringSliceFlag{Name: "column", Aliases: []string{"col"}, Usage: "Column name (repeatable)"},
			&cli.StringSliceFlag{Name: "filter", Usage: "Filter expression (repeatable)"},
			&cli.StringFlag{Name: "header", Usage: "Include a header with this text"},
			&cli.StringFlag{Name: "footer", Usage: "Include a footer with this text"},
			&cli.StringFlag{Name: "chart", Usage: "Include a chart of this type"},
			&cli.BoolFlag{Name: "summary", Usage: "Include a summary section"},
			&cli.BoolFlag{Name: "totals", Usage: "Include totals"},
			&cli.BoolFlag{Name: "page-numbers", Usage: "Include page numbers"},
			&cli.StringFlag{Name: "page-size", Usage: "Page size (default A4)"},
			&cli.StringFlag{Name: "orientation", Usage: "Page orientation (default Portrait)"},
			&cli.StringFlag{Name: "logo", Usage: "Company logo path"},
			&cli.StringFlag{Name: "watermark", Usage: "Watermark text"},
			&cli.StringFlag{Name: "sort-by", Usage: "Sort field"},
			&cli.StringFlag{Name: "group-by", Usage: "Group field"},
			outputFlag(),
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return runBuild(ctx, c, w)
		},
	}
}

func runBuild(ctx context.Context, c *cli.Command, w io.Writer) error {
	logger := getLogger(ctx)

	b, err := builderFromFlags(c)
	if err != nil {
		return err
	}

	report, err := b.Build()
	if err != nil {
		return goerr.Wrap(err, "failed to build report")
	}

	logger.Info("Report configuration built",
		"title", report.Title(),
		"format", report.Format(),
		"columns", len(report.Columns()))

	return writeReport(ctx, c, w, report)
}

// builderFromFlags maps flags onto builder calls. The preset goes first so
// explicit flags override it.
func builderFromFlags(c *cli.Command) (*reportconf.Builder, error) {
	b := reportconf.NewBuilder()

	if name := c.String("preset"); name != "" {
		preset, ok := reportconf.LookupPreset(name)
		if !ok {
			return nil, goerr.New("unknown preset", goerr.V("preset", name))
		}
		b.Apply(preset)
	}

	if c.IsSet("title") {
		b.WithTitle(c.String("title"))
	}
	if c.IsSet("format") {
		b.WithFormat(c.String("format"))
	}

	if c.IsSet("from") || c.IsSet("to") {
		start, err := parseDate(c, "from")
		if err != nil {
			return nil, err
		}
		end, err := parseDate(c, "to")
		if err != nil {
			return nil, err
		}
		b.WithPeriod(start, end)
	}

	b.AddColumns(c.StringSlice("column")...)
	b.AddFilters(c.StringSlice("filter")...)

	if c.IsSet("header") {
		b.IncludeHeader(c.String("header"))
	}
	if c.IsSet("footer") {
		b.IncludeFooter(c.String("footer"))
	}
	if c.IsSet("chart") {
		b.IncludeCharts(c.String("chart"))
	}
	if c.Bool("summary") {
		b.IncludeSummary()
	}
	if c.Bool("totals") {
		b.IncludeTotals()
	}
	if c.Bool("page-numbers") {
		b.IncludePageNumbers()
	}
	if c.IsSet("page-size") || c.IsSet("orientation") {
		b.Page(c.String("page-size"), c.String("orientation"))
	}
	if c.IsSet("logo") {
		b.WithCompanyLogo(c.String("logo"))
	}
	if c.IsSet("watermark") {
		b.WithWaterMark(c.String("watermark"))
	}
	if c.IsSet("sort-by") {
		b.SortBy(c.String("sort-by"))
	}
	if c.IsSet("group-by") {
		b.GroupBy(c.String("group-by"))
	}

	return b, nil
}

// parseDate returns the zero time for an unset flag, which Build reports as
// a missing period
func parseDate(c *cli.Command, name string) (time.Time, error) {
	value := c.String(name)
	if value == "" {
		return time.Time{}, nil
	}

	t, err := time.Parse(dateFlagLayout, value)
	if err != nil {
		return time.Time{}, goerr.Wrap(err, "invalid date", goerr.V("flag", name), goerr.V("value", value))
	}
	return t, nil
}
