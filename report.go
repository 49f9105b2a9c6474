package reportconf

import (
	"slices"
	"time"
)

// Period is the inclusive date range a report covers
type Period struct {
	Start time.Time
	End   time.Time
}

// ReportConfig is a validated, immutable sales report configuration.
// It can only be obtained from Builder.Build and is safe for concurrent reads.
type ReportConfig struct {
	title  string
	format string
	period Period

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

// Title returns the report title
func (r *ReportConfig) Title() string { return r.title }

// Format returns the output format, such as "PDF" or "Excel"
func (r *ReportConfig) Format() string { return r.format }

// Period returns the covered date range
func (r *ReportConfig) Period() Period { return r.period }

// StartDate returns the first day of the period
func (r *ReportConfig) StartDate() time.Time { return r.period.Start }

// EndDate returns the last day of the period
func (r *ReportConfig) EndDate() time.Time { return r.period.End }

func (r *ReportConfig) IncludeHeader() bool  { return r.includeHeader }
func (r *ReportConfig) HeaderText() string   { return r.headerText }
func (r *ReportConfig) IncludeFooter() bool  { return r.includeFooter }
func (r *ReportConfig) FooterText() string   { return r.footerText }
func (r *ReportConfig) IncludeCharts() bool  { return r.includeCharts }
func (r *ReportConfig) ChartType() string    { return r.chartType }
func (r *ReportConfig) IncludeSummary() bool { return r.includeSummary }

// Columns returns a copy of the column names in insertion order
func (r *ReportConfig) Columns() []string { return slices.Clone(r.columns) }

// Filters returns a copy of the filter expressions in insertion order.
// The result is never nil.
func (r *ReportConfig) Filters() []string {
	if r.filters == nil {
		return []string{}
	}
	return slices.Clone(r.filters)
}

func (r *ReportConfig) SortBy() string           { return r.sortBy }
func (r *ReportConfig) GroupBy() string          { return r.groupBy }
func (r *ReportConfig) IncludeTotals() bool      { return r.includeTotals }
func (r *ReportConfig) Orientation() string      { return r.orientation }
func (r *ReportConfig) PageSize() string         { return r.pageSize }
func (r *ReportConfig) IncludePageNumbers() bool { return r.includePageNumbers }
func (r *ReportConfig) CompanyLogo() string      { return r.companyLogo }
func (r *ReportConfig) WaterMark() string        { return r.waterMark }
