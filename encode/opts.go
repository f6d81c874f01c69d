package encode

// Options are the presentation toggles of a Renderer.
type Options struct {
	// Color styles values with terminal escape codes.
	Color bool
	// Null renders null leaves; when false they are skipped.
	Null bool
	// Quotes wraps string values in double quotes.
	Quotes bool
	// Numbers prefixes every line with its 1-based value number.
	Numbers bool
	// EndOfLine marks the end of every line with '$'.
	EndOfLine bool
}

// DefaultOptions renders with colors, nulls and quoted strings.
func DefaultOptions() Options {
	return Options{
		Color:  true,
		Null:   true,
		Quotes: true,
	}
}

type Option func(*Options)

func WithOptions(o Options) Option {
	return func(opts *Options) { *opts = o }
}
func WithColor(v bool) Option {
	return func(opts *Options) { opts.Color = v }
}
func WithNull(v bool) Option {
	return func(opts *Options) { opts.Null = v }
}
func WithQuotes(v bool) Option {
	return func(opts *Options) { opts.Quotes = v }
}
func WithNumbers(v bool) Option {
	return func(opts *Options) { opts.Numbers = v }
}
func WithEndOfLine(v bool) Option {
	return func(opts *Options) { opts.EndOfLine = v }
}
