// Package scenario holds the built-in sample reports used by the demo command
package scenario

import (
	"time"

	"github.com/m-mizutani/reportconf"
)

// Scenario is a named, reproducible builder chain
type Scenario struct {
	Name        string
	Description string
	Build       func() (*reportconf.ReportConfig, error)
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// All returns the built-in scenarios in presentation order
func All() []Scenario {
	return []Scenario{
		{
			Name:        "monthly",
			Description: "Complex monthly PDF configured call by call",
			Build:       Monthly,
		},
		{
			Name:        "quarterly",
			Description: "Quarterly Excel report with only the required settings and a chart",
			Build:       Quarterly,
		},
		{
			Name:        "annual",
			Description: "Annual report reusing the confidential PDF preset",
			Build:       Annual,
		},
	}
}

// Find returns the scenario with the given name
func Find(name string) (Scenario, bool) {
	for _, s := range All() {
		if s.Name == name {
			return s, true
		}
	}
	return Scenario{}, false
}

func Monthly() (*reportconf.ReportConfig, error) {
	return reportconf.NewBuilder().
		WithTitle("Vendas Mensais").
		WithFormat("PDF").
		WithPeriod(date(2024, time.January, 1), date(2024, time.January, 31)).
		IncludeHeader("Relatório de Vendas").
		IncludeFooter("Confidencial").
		WithCompanyLogo("logo.png").
		WithWaterMark("Confidencial").
		AddColumns("Produto", "Quantidade", "Valor").
		AddFilter("Status=Ativo").
		GroupBy("Categoria").
		SortBy("Valor").
		IncludeCharts("Bar").
		IncludeTotals().
		Page("A4", "Portrait").
		IncludePageNumbers().
		Build()
}

func Quarterly() (*reportconf.ReportConfig, error) {
	return reportconf.NewBuilder().
		WithTitle("Relatório Trimestral").
		WithFormat("Excel").
		WithPeriod(date(2024, time.January, 1), date(2024, time.March, 31)).
		AddColumns("Vendedor", "Região", "Total").
		IncludeCharts("Line").
		GroupBy("Região").
		IncludeTotals().
		Build()
}

// Annual starts from the confidential PDF preset and overrides its orientation
func Annual() (*reportconf.ReportConfig, error) {
	return reportconf.NewBuilder().
		WithTitle("Vendas Anuais").
		UseConfidentialPDFTemplate().
		WithPeriod(date(2024, time.January, 1), date(2024, time.December, 31)).
		AddColumns("Produto", "Quantidade", "Valor").
		IncludeCharts("Pie").
		IncludeTotals().
		Page("A4", "Landscape").
		Build()
}
