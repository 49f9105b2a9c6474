package reportconf

import (
	"slices"
	"strings"
	"time"
)

const (
	DefaultOrientation = "Portrait"
	DefaultPageSize    = "A4"
)

// Builder accumulates report settings through chained calls. Nothing is
// validated until Build. A Builder is not safe for concurrent use.
type Builder struct {
	title     string
	format    string
	startDate *time.Time
	endDate   *time.Time

	includeHeader bool
	headerText    string
	includeFooter bool
	footerText    string

	includeCharts bool
	chartType     string

	includeSummary bool
	columns        []string
	filters        []string

	sortBy        string
	groupBy       string
	includeTotals bool

	orientation        string
	pageSize           string
	includePageNumbers bool

	companyLogo string
	waterMark   string
}

// NewBuilder creates an empty builder with Portrait/A4 page layout
func NewBuilder() *Builder {
	return &Builder{
		orientation: DefaultOrientation,
		pageSize:    DefaultPageSize,
	}
}

// WithTitle sets the report title
func (b *Builder) WithTitle(title string) *Builder {
	b.title = title
	return b
}

// WithFormat sets the output format
func (b *Builder) WithFormat(format string) *Builder {
	b.format = format
	return b
}

// WithPeriod sets the date range. Ordering is checked by Build.
func (b *Builder) WithPeriod(start, end time.Time) *Builder {
	b.startDate = &start
	b.endDate = &end
	return b
}

// IncludeHeader enables the header with the given text
func (b *Builder) IncludeHeader(headerText string) *Builder {
	b.includeHeader = true
	b.headerText = headerText
	return b
}

// IncludeFooter enables the footer with the given text
func (b *Builder) IncludeFooter(footerText string) *Builder {
	b.includeFooter = true
	b.footerText = footerText
	return b
}

// IncludeCharts enables charts of the given type
func (b *Builder) IncludeCharts(chartType string) *Builder {
	b.includeCharts = true
	b.chartType = chartType
	return b
}

func (b *Builder) IncludeSummary() *Builder {
	b.includeSummary = true
	return b
}

// AddColumn appends a column. Blank names are ignored.
func (b *Builder) AddColumn(column string) *Builder {
	if !isBlank(column) {
		b.columns = append(b.columns, column)
	}
	return b
}

// AddColumns appends each column following the AddColumn rule
func (b *Builder) AddColumns(columns ...string) *Builder {
	for _, c := range columns {
		b.AddColumn(c)
	}
	return b
}

// AddFilter appends a filter expression. Blank expressions are ignored.
func (b *Builder) AddFilter(filter string) *Builder {
	if !isBlank(filter) {
		b.filters = append(b.filters, filter)
	}
	return b
}

// AddFilters appends each filter following the AddFilter rule
func (b *Builder) AddFilters(filters ...string) *Builder {
	for _, f := range filters {
		b.AddFilter(f)
	}
	return b
}

func (b *Builder) SortBy(sortBy string) *Builder {
	b.sortBy = sortBy
	return b
}

func (b *Builder) GroupBy(groupBy string) *Builder {
	b.groupBy = groupBy
	return b
}

func (b *Builder) IncludeTotals() *Builder {
	b.includeTotals = true
	return b
}

// Page sets page size and orientation together. An empty page size means A4
// and an omitted or empty orientation means Portrait.
func (b *Builder) Page(pageSize string, orientation ...string) *Builder {
	b.pageSize = pageSize
	if b.pageSize == "" {
		b.pageSize = DefaultPageSize
	}

	b.orientation = DefaultOrientation
	if len(orientation) > 0 && orientation[0] != "" {
		b.orientation = orientation[0]
	}
	return b
}

func (b *Builder) IncludePageNumbers() *Builder {
	b.includePageNumbers = true
	return b
}

// WithCompanyLogo sets the logo path printed on the report
func (b *Builder) WithCompanyLogo(logoPath string) *Builder {
	b.companyLogo = logoPath
	return b
}

// WithWaterMark sets the watermark text
func (b *Builder) WithWaterMark(waterMark string) *Builder {
	b.waterMark = waterMark
	return b
}

// Build validates the accumulated settings and returns a new ReportConfig.
// On failure it returns a *ValidationError for the first violated rule and no
// config. The builder stays usable afterwards; later changes do not affect
// configs it already produced.
func (b *Builder) Build() (*ReportConfig, error) {
	for _, r := range buildRules {
		if r.violated(b) {
			return nil, &ValidationError{
				Rule:    r.err.Rule,
				Field:   r.err.Field,
				Message: r.err.Message,
			}
		}
	}

	return &ReportConfig{
		title:  b.title,
		format: b.format,
		period: Period{Start: *b.startDate, End: *b.endDate},

		includeHeader: b.includeHeader,
		headerText:    b.headerText,
		includeFooter: b.includeFooter,
		footerText:    b.footerText,

		includeCharts: b.includeCharts,
		chartType:     b.chartType,

		includeSummary: b.includeSummary,
		columns:        slices.Clone(b.columns),
		filters:        slices.Clone(b.filters),

		sortBy:        b.sortBy,
		groupBy:       b.groupBy,
		includeTotals: b.includeTotals,

		orientation:        b.orientation,
		pageSize:           b.pageSize,
		includePageNumbers: b.includePageNumbers,

		companyLogo: b.companyLogo,
		waterMark:   b.waterMark,
	}, nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
