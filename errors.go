package reportconf

import "fmt"

// Rule identifies which construction rule a report configuration violated
type Rule string

const (
	RuleTitleRequired      Rule = "title_required"
	RuleFormatRequired     Rule = "format_required"
	RulePeriodRequired     Rule = "period_required"
	RulePeriodOrder        Rule = "period_order"
	RuleColumnsRequired    Rule = "columns_required"
	RuleHeaderTextRequired Rule = "header_text_required"
	RuleFooterTextRequired Rule = "footer_text_required"
	RuleChartTypeRequired  Rule = "chart_type_required"
)

// ValidationError represents a report configuration validation error.
// Build returns it for the first rule that does not hold.
type ValidationError struct {
	Rule    Rule
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error in field %s: %s", e.Field, e.Message)
}

// Is reports whether target is a *ValidationError for the same rule, so that
// errors.Is(err, ErrColumnsRequired) works regardless of message text.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return t.Rule == e.Rule
}

// Sentinel values for use with errors.Is
var (
	ErrTitleRequired      = &ValidationError{Rule: RuleTitleRequired, Field: "title", Message: "title is required"}
	ErrFormatRequired     = &ValidationError{Rule: RuleFormatRequired, Field: "format", Message: "format is required"}
	ErrPeriodRequired     = &ValidationError{Rule: RulePeriodRequired, Field: "period", Message: "start and end dates are required"}
	ErrPeriodOrder        = &ValidationError{Rule: RulePeriodOrder, Field: "period", Message: "start date must not be after end date"}
	ErrColumnsRequired    = &ValidationError{Rule: RuleColumnsRequired, Field: "columns", Message: "at least one column is required"}
	ErrHeaderTextRequired = &ValidationError{Rule: RuleHeaderTextRequired, Field: "header_text", Message: "header text is required when header is included"}
	ErrFooterTextRequired = &ValidationError{Rule: RuleFooterTextRequired, Field: "footer_text", Message: "footer text is required when footer is included"}
	ErrChartTypeRequired  = &ValidationError{Rule: RuleChartTypeRequired, Field: "chart_type", Message: "chart type is required when charts are included"}
)
