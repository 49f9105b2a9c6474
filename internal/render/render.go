package render

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// Report is the read-only view of a report configuration that renderers consume
type Report interface {
	Title() string
	Format() string
	StartDate() time.Time
	EndDate() time.Time
	IncludeHeader() bool
	HeaderText() string
	IncludeFooter() bool
	FooterText() string
	IncludeCharts() bool
	ChartType() string
	IncludeSummary() bool
	Columns() []string
	Filters() []string
	SortBy() string
	GroupBy() string
	IncludeTotals() bool
	Orientation() string
	PageSize() string
	IncludePageNumbers() bool
	CompanyLogo() string
	WaterMark() string
}

// Config holds renderer settings
type Config struct {
	Logger     *slog.Logger
	DateLayout string
}

// Text writes a line oriented summary of the report to w. Disabled or empty
// optional settings produce no line.
func Text(w io.Writer, r Report, cfg Config) error {
	logger := cfg.logger()
	logger.Debug("Rendering text summary", slog.String("title", r.Title()))

	var sb strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&sb, format+"\n", args...)
	}

	line("\n=== Generating report: %s ===", r.Title())
	line("Format: %s", r.Format())
	line("Period: %s to %s", r.StartDate().Format(cfg.DateLayout), r.EndDate().Format(cfg.DateLayout))

	if r.IncludeHeader() {
		line("Header: %s", r.HeaderText())
	}
	if !isBlank(r.CompanyLogo()) {
		line("Logo: %s", r.CompanyLogo())
	}
	if r.IncludeCharts() {
		line("Chart: %s", r.ChartType())
	}
	if r.IncludeSummary() {
		line("Summary: yes")
	}

	line("Columns: %s", strings.Join(r.Columns(), ", "))

	if filters := r.Filters(); len(filters) > 0 {
		line("Filters: %s", strings.Join(filters, ", "))
	}
	if !isBlank(r.GroupBy()) {
		line("Grouped by: %s", r.GroupBy())
	}
	if !isBlank(r.SortBy()) {
		line("Sorted by: %s", r.SortBy())
	}
	if r.IncludeTotals() {
		line("Totals: yes")
	}
	if !isBlank(r.PageSize()) {
		line("Page: %s / %s", r.PageSize(), r.Orientation())
	}
	if r.IncludePageNumbers() {
		line("Page numbers: yes")
	}
	if !isBlank(r.WaterMark()) {
		line("Watermark: %s", r.WaterMark())
	}
	if r.IncludeFooter() {
		line("Footer: %s", r.FooterText())
	}

	line("Report generated successfully!")

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return goerr.Wrap(err, "failed to write report summary", goerr.V("title", r.Title()))
	}

	logger.Debug("Rendered text summary", slog.Int("bytes", sb.Len()))
	return nil
}

func (c Config) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
