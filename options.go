package reportconf

import "log/slog"

// options represents rendering options
type options struct {
	// Logger for logging rendering operations
	Logger *slog.Logger

	// DateLayout is the time layout used to print the period
	DateLayout string
}

// Option is a function that configures options
type Option func(*options)

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.Logger = logger
	}
}

// WithDateLayout sets the layout used to print dates. Empty keeps the default.
func WithDateLayout(layout string) Option {
	return func(o *options) {
		if layout != "" {
			o.DateLayout = layout
		}
	}
}

// applyOptions applies option functions to options
func applyOptions(opts []Option) *options {
	o := &options{
		Logger:     slog.New(slog.DiscardHandler),
		DateLayout: DefaultDateLayout,
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}
