// Package reportconf builds validated, immutable sales report configurations.
//
// Settings are accumulated on a [Builder] through chained calls and checked
// once, when [Builder.Build] produces a [ReportConfig]. A ReportConfig cannot
// be created in an invalid state and never changes after it is built.
//
// # Basic Usage
//
//	report, err := reportconf.NewBuilder().
//	    WithTitle("Vendas Mensais").
//	    WithFormat("PDF").
//	    WithPeriod(start, end).
//	    AddColumns("Produto", "Quantidade", "Valor").
//	    IncludeCharts("Bar").
//	    Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := report.Generate(os.Stdout); err != nil {
//	    log.Fatal(err)
//	}
//
// # Presets
//
// A [Preset] applies a bundle of ordinary builder calls. Calls made after a
// preset override its values:
//
//	report, err := reportconf.NewBuilder().
//	    WithTitle("Vendas Anuais").
//	    UseConfidentialPDFTemplate().
//	    WithPeriod(start, end).
//	    AddColumn("Produto").
//	    Page("A4", "Landscape").
//	    Build()
//
// # Error Handling
//
// Build returns a [*ValidationError] for the first violated rule. Rules are
// checked in a fixed order: title, format, period presence, period order and
// columns first, then header, footer and chart payloads. Each rule has a
// sentinel that matches with errors.Is:
//
//	if errors.Is(err, reportconf.ErrColumnsRequired) {
//	    // add at least one column
//	}
//
//	var verr *reportconf.ValidationError
//	if errors.As(err, &verr) {
//	    fmt.Printf("rule %s failed on %s\n", verr.Rule, verr.Field)
//	}
package reportconf
