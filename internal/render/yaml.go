package render

import (
	"io"
	"log/slog"

	"github.com/goccy/go-yaml"
	"github.com/m-mizutani/goerr/v2"
)

// Document is the YAML shape of a described report
type Document struct {
	Title       string   `yaml:"title"`
	Format      string   `yaml:"format"`
	Period      Span     `yaml:"period"`
	Header      string   `yaml:"header,omitempty"`
	Footer      string   `yaml:"footer,omitempty"`
	Chart       string   `yaml:"chart,omitempty"`
	Summary     bool     `yaml:"summary,omitempty"`
	Columns     []string `yaml:"columns"`
	Filters     []string `yaml:"filters,omitempty"`
	SortBy      string   `yaml:"sortBy,omitempty"`
	GroupBy     string   `yaml:"groupBy,omitempty"`
	Totals      bool     `yaml:"totals,omitempty"`
	Page        Page     `yaml:"page"`
	CompanyLogo string   `yaml:"companyLogo,omitempty"`
	WaterMark   string   `yaml:"waterMark,omitempty"`
}

// Span is a printed date range
type Span struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

// Page is the printed page layout
type Page struct {
	Size        string `yaml:"size"`
	Orientation string `yaml:"orientation"`
	Numbers     bool   `yaml:"numbers,omitempty"`
}

// NewDocument converts a report into its YAML document form
func NewDocument(r Report, dateLayout string) *Document {
	doc := &Document{
		Title:  r.Title(),
		Format: r.Format(),
		Period: Span{
			Start: r.StartDate().Format(dateLayout),
			End:   r.EndDate().Format(dateLayout),
		},
		Summary:     r.IncludeSummary(),
		Columns:     r.Columns(),
		Filters:     r.Filters(),
		SortBy:      r.SortBy(),
		GroupBy:     r.GroupBy(),
		Totals:      r.IncludeTotals(),
		CompanyLogo: r.CompanyLogo(),
		WaterMark:   r.WaterMark(),
		Page: Page{
			Size:        r.PageSize(),
			Orientation: r.Orientation(),
			Numbers:     r.IncludePageNumbers(),
		},
	}

	if r.IncludeHeader() {
		doc.Header = r.HeaderText()
	}
	if r.IncludeFooter() {
		doc.Footer = r.FooterText()
	}
	if r.IncludeCharts() {
		doc.Chart = r.ChartType()
	}

	return doc
}

// YAML writes the report as a YAML document to w
func YAML(w io.Writer, r Report, cfg Config) error {
	logger := cfg.logger()
	logger.Debug("Rendering YAML description", slog.String("title", r.Title()))

	data, err := yaml.Marshal(NewDocument(r, cfg.DateLayout))
	if err != nil {
		return goerr.Wrap(err, "failed to marshal report to YAML", goerr.V("title", r.Title()))
	}

	if _, err := w.Write(data); err != nil {
		return goerr.Wrap(err, "failed to write report YAML", goerr.V("title", r.Title()))
	}

	return nil
}
