package reportconf

// buildRule pairs a violation predicate with the error reported for it
type buildRule struct {
	err      *ValidationError
	violated func(b *Builder) bool
}

// buildRules is evaluated in order by Build. Required fields come before the
// coherence checks on optional sections.
var buildRules = []buildRule{
	{
		err:      ErrTitleRequired,
		violated: func(b *Builder) bool { return isBlank(b.title) },
	},
	{
		err:      ErrFormatRequired,
		violated: func(b *Builder) bool { return isBlank(b.format) },
	},
	{
		err: ErrPeriodRequired,
		violated: func(b *Builder) bool {
			return b.startDate == nil || b.endDate == nil ||
				b.startDate.IsZero() || b.endDate.IsZero()
		},
	},
	{
		err:      ErrPeriodOrder,
		violated: func(b *Builder) bool { return b.startDate.After(*b.endDate) },
	},
	{
		err:      ErrColumnsRequired,
		violated: func(b *Builder) bool { return len(b.columns) == 0 },
	},
	{
		err:      ErrHeaderTextRequired,
		violated: func(b *Builder) bool { return b.includeHeader && isBlank(b.headerText) },
	},
	{
		err:      ErrFooterTextRequired,
		violated: func(b *Builder) bool { return b.includeFooter && isBlank(b.footerText) },
	},
	{
		err:      ErrChartTypeRequired,
		violated: func(b *Builder) bool { return b.includeCharts && isBlank(b.chartType) },
	},
}
