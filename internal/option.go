package internal

import "io"

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config *Config
	stdout io.Writer
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithOutput redirects the report output, used by tests.
func WithOutput(w io.Writer) Option {
	return func(a *application) {
		a.stdout = w
	}
}
