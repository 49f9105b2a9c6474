package render_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/reportconf"
	"github.com/m-mizutani/reportconf/internal/render"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func fullReport(t *testing.T) *reportconf.ReportConfig {
	t.Helper()

	report, err := reportconf.NewBuilder().
		WithTitle("Vendas Mensais").
		WithFormat("PDF").
		WithPeriod(day(2024, time.January, 1), day(2024, time.January, 31)).
		IncludeHeader("Relatório de Vendas").
		IncludeFooter("Confidencial").
		WithCompanyLogo("logo.png").
		WithWaterMark("Confidencial").
		AddColumns("Produto", "Quantidade", "Valor").
		AddFilter("Status=Ativo").
		GroupBy("Categoria").
		SortBy("Valor").
		IncludeCharts("Bar").
		IncludeSummary().
		IncludeTotals().
		Page("A4", "Portrait").
		IncludePageNumbers().
		Build()
	gt.NoError(t, err)
	return report
}

func minimalReport(t *testing.T) *reportconf.ReportConfig {
	t.Helper()

	report, err := reportconf.NewBuilder().
		WithTitle("Relatório Trimestral").
		WithFormat("Excel").
		WithPeriod(day(2024, time.January, 1), day(2024, time.March, 31)).
		AddColumns("Vendedor", "Região", "Total").
		Build()
	gt.NoError(t, err)
	return report
}

var testConfig = render.Config{
	Logger:     slog.Default(),
	DateLayout: "02/01/2006",
}

func TestText(t *testing.T) {
	t.Run("Normal: every option enabled", func(t *testing.T) {
		var buf bytes.Buffer
		gt.NoError(t, render.Text(&buf, fullReport(t), testConfig))

		expected := strings.Join([]string{
			"",
			"=== Generating report: Vendas Mensais ===",
			"Format: PDF",
			"Period: 01/01/2024 to 31/01/2024",
			"Header: Relatório de Vendas",
			"Logo: logo.png",
			"Chart: Bar",
			"Summary: yes",
			"Columns: Produto, Quantidade, Valor",
			"Filters: Status=Ativo",
			"Grouped by: Categoria",
			"Sorted by: Valor",
			"Totals: yes",
			"Page: A4 / Portrait",
			"Page numbers: yes",
			"Watermark: Confidencial",
			"Footer: Confidencial",
			"Report generated successfully!",
			"",
		}, "\n")
		gt.Equal(t, buf.String(), expected)
	})

	t.Run("Normal: disabled options are omitted", func(t *testing.T) {
		var buf bytes.Buffer
		gt.NoError(t, render.Text(&buf, minimalReport(t), render.Config{DateLayout: time.DateOnly}))

		out := buf.String()
		gt.True(t, strings.Contains(out, "Period: 2024-01-01 to 2024-03-31\n"))
		gt.True(t, strings.Contains(out, "Columns: Vendedor, Região, Total\n"))
		gt.True(t, strings.Contains(out, "Page: A4 / Portrait\n"))
		for _, label := range []string{"Header:", "Footer:", "Logo:", "Chart:", "Summary:", "Filters:", "Grouped by:", "Sorted by:", "Totals:", "Page numbers:", "Watermark:"} {
			gt.False(t, strings.Contains(out, label))
		}
	})

	t.Run("Error: writer failure", func(t *testing.T) {
		err := render.Text(failingWriter{}, minimalReport(t), testConfig)
		gt.Error(t, err).Contains("failed to write report summary")
		gt.True(t, errors.Is(err, errWrite))
	})
}

func TestYAML(t *testing.T) {
	t.Run("Normal: populated fields", func(t *testing.T) {
		var buf bytes.Buffer
		gt.NoError(t, render.YAML(&buf, fullReport(t), testConfig))

		var doc render.Document
		gt.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
		gt.Equal(t, doc, *render.NewDocument(fullReport(t), testConfig.DateLayout))
		gt.Equal(t, doc.Title, "Vendas Mensais")
		gt.Equal(t, doc.Period, render.Span{Start: "01/01/2024", End: "31/01/2024"})
		gt.Equal(t, doc.Header, "Relatório de Vendas")
		gt.Equal(t, doc.Chart, "Bar")
		gt.Equal(t, doc.Columns, []string{"Produto", "Quantidade", "Valor"})
		gt.Equal(t, doc.Filters, []string{"Status=Ativo"})
		gt.Equal(t, doc.Page, render.Page{Size: "A4", Orientation: "Portrait", Numbers: true})
	})

	t.Run("Normal: disabled options are omitted", func(t *testing.T) {
		var buf bytes.Buffer
		gt.NoError(t, render.YAML(&buf, minimalReport(t), testConfig))

		var doc render.Document
		gt.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
		gt.Equal(t, doc.Title, "Relatório Trimestral")

		out := buf.String()
		for _, key := range []string{"header:", "footer:", "chart:", "filters:", "summary:", "totals:", "companyLogo:", "waterMark:"} {
			gt.False(t, strings.Contains(out, key))
		}
	})

	t.Run("Error: writer failure", func(t *testing.T) {
		err := render.YAML(failingWriter{}, minimalReport(t), testConfig)
		gt.Error(t, err).Contains("failed to write report YAML")
	})
}

var errWrite = errors.New("disk full")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errWrite
}
