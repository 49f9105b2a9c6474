package reportconf

import (
	"io"

	"github.com/m-mizutani/reportconf/internal/render"
)

// DefaultDateLayout prints dates as dd/mm/yyyy
const DefaultDateLayout = "02/01/2006"

// Generate writes a human readable summary of the report to w
func (r *ReportConfig) Generate(w io.Writer, opts ...Option) error {
	o := applyOptions(opts)
	return render.Text(w, r, render.Config{Logger: o.Logger, DateLayout: o.DateLayout})
}

// Describe writes the report as a YAML document to w
func (r *ReportConfig) Describe(w io.Writer, opts ...Option) error {
	o := applyOptions(opts)
	return render.YAML(w, r, render.Config{Logger: o.Logger, DateLayout: o.DateLayout})
}
