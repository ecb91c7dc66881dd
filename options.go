package tgrender

// RenderOptions holds options for rendering and splitting messages.
type RenderOptions struct {
	Flavor           *Flavor
	MaxMessageLength int
	TrimSpace        bool
}

// Option is a function that configures RenderOptions.
type Option func(*RenderOptions)

// WithFlavor sets the markup flavor.
func WithFlavor(fl *Flavor) Option {
	return func(opts *RenderOptions) {
		if fl != nil {
			opts.Flavor = fl
		}
	}
}

// WithConfig applies every field of config. An unknown flavor name keeps
// the current flavor and is logged.
func WithConfig(config *RenderConfig) Option {
	return func(opts *RenderOptions) {
		if config == nil {
			return
		}
		applyConfig(opts, config)
	}
}

// WithMaxMessageLength sets the chunk limit in UTF-16 code units. Values
// <= 0 select DefaultMaxMessageLength.
func WithMaxMessageLength(n int) Option {
	return func(opts *RenderOptions) {
		opts.MaxMessageLength = n
	}
}

// WithTrimSpace sets whether surrounding whitespace is trimmed before
// splitting.
func WithTrimSpace(enable bool) Option {
	return func(opts *RenderOptions) {
		opts.TrimSpace = enable
	}
}

func applyConfig(opts *RenderOptions, config *RenderConfig) {
	if fl, ok := LookupFlavor(config.Flavor); ok {
		opts.Flavor = fl
	} else {
		Logger.Warn().
			Str("flavor", config.Flavor).
			Str("fallback", opts.Flavor.Name()).
			Msg("unknown flavor")
	}
	opts.MaxMessageLength = config.MaxMessageLength
	opts.TrimSpace = config.TrimSpace
}

// defaultRenderOptions returns the options described by DefaultConfig.
func defaultRenderOptions() *RenderOptions {
	opts := &RenderOptions{Flavor: HTML}
	applyConfig(opts, DefaultConfig())
	return opts
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *RenderOptions {
	options := defaultRenderOptions()
	for _, opt := range opts {
		opt(options)
	}
	if options.MaxMessageLength <= 0 {
		options.MaxMessageLength = DefaultMaxMessageLength
	}
	return options
}
