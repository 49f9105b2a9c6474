package reportconf_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/reportconf"
)

func TestConfidentialPDF(t *testing.T) {
	period := func(b *reportconf.Builder) *reportconf.Builder {
		return b.
			WithTitle("Vendas Anuais").
			WithPeriod(day(2024, time.January, 1), day(2024, time.December, 31)).
			AddColumns("Produto", "Quantidade", "Valor")
	}

	t.Run("Normal: preset equals manual calls", func(t *testing.T) {
		manual, err := period(reportconf.NewBuilder()).
			WithFormat("PDF").
			IncludeHeader("Relatório de Vendas").
			IncludeFooter("Confidencial").
			WithWaterMark("Confidencial").
			WithCompanyLogo("logo.png").
			Page("A4", "Portrait").
			IncludePageNumbers().
			Build()
		gt.NoError(t, err)

		preset, err := period(reportconf.NewBuilder()).UseConfidentialPDFTemplate().Build()
		gt.NoError(t, err)

		gt.Equal(t, fieldsOf(preset), fieldsOf(manual))
		gt.Equal(t, preset.Format(), "PDF")
		gt.Equal(t, preset.HeaderText(), "Relatório de Vendas")
		gt.Equal(t, preset.FooterText(), "Confidencial")
		gt.Equal(t, preset.WaterMark(), "Confidencial")
		gt.Equal(t, preset.CompanyLogo(), "logo.png")
		gt.True(t, preset.IncludePageNumbers())
	})

	t.Run("Normal: later calls override the preset", func(t *testing.T) {
		report, err := period(reportconf.NewBuilder()).
			Apply(reportconf.ConfidentialPDF).
			Page("A4", "Landscape").
			WithFormat("Excel").
			IncludeFooter("Interno").
			Build()
		gt.NoError(t, err)

		gt.Equal(t, report.Orientation(), "Landscape")
		gt.Equal(t, report.Format(), "Excel")
		gt.Equal(t, report.FooterText(), "Interno")
		gt.Equal(t, report.HeaderText(), "Relatório de Vendas")
	})

	t.Run("Normal: preset overrides earlier calls", func(t *testing.T) {
		report, err := period(reportconf.NewBuilder()).
			WithFormat("Excel").
			Apply(reportconf.ConfidentialPDF).
			Build()
		gt.NoError(t, err)
		gt.Equal(t, report.Format(), "PDF")
	})

	t.Run("Normal: nil preset is ignored", func(t *testing.T) {
		report, err := period(reportconf.NewBuilder()).WithFormat("CSV").Apply(nil).Build()
		gt.NoError(t, err)
		gt.Equal(t, report.Format(), "CSV")
	})
}

func TestLookupPreset(t *testing.T) {
	t.Run("Normal: registered preset", func(t *testing.T) {
		p, ok := reportconf.LookupPreset("confidential-pdf")
		gt.True(t, ok)

		report, err := reportconf.NewBuilder().
			WithTitle("T").
			WithPeriod(day(2024, time.January, 1), day(2024, time.January, 2)).
			AddColumn("A").
			Apply(p).
			Build()
		gt.NoError(t, err)
		gt.Equal(t, report.WaterMark(), "Confidencial")
	})

	t.Run("Error: unknown preset", func(t *testing.T) {
		_, ok := reportconf.LookupPreset("nope")
		gt.False(t, ok)
	})

	t.Run("Normal: names", func(t *testing.T) {
		gt.Equal(t, reportconf.PresetNames(), []string{"confidential-pdf"})
	})
}
