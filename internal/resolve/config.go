package resolve

import "log/slog"

// Config holds configuration for the resolution pass.
type Config struct {
	// PinsRule names the static rule whose rows are Rockchip pin
	// configurations (bank, pin, function, config).
	PinsRule string
	// GPIORule names the dynamic rule whose data cells are (pin, ..., flags).
	GPIORule string
	// Strict makes Run return an error when any warning was recorded.
	Strict bool
}

// DefaultConfig returns the default resolution configuration.
func DefaultConfig() Config {
	return Config{
		PinsRule: "rockchip,pins",
		GPIORule: "gpio",
		Strict:   false,
	}
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithConfig replaces the default configuration.
func WithConfig(cfg Config) Option {
	return func(r *Resolver) {
		r.config = cfg
	}
}

// WithLogger sets the logger used for debug tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}
