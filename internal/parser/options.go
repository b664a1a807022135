package parser

import (
	"io"
	"log/slog"
)

// OptFunc sets values in Opts structure.
type OptFunc func(opt *Opts)

// Opts specifies different parsing options.
type Opts struct {
	// Convention decides prefixes, meta arguments and which
	// arguments are eligible for a given word.
	Convention Convention

	// Logger receives debug traces of the parse loop decisions.
	Logger *slog.Logger

	// FlagDivider joins words of long names derived from field names.
	FlagDivider string

	// ParseAll specifies either to scan all exported fields or only tagged ones.
	ParseAll bool
}

// DefOpts returns the default parsing options: Unix conventions,
// no logging, dash-separated long names, tagged fields only.
func DefOpts() *Opts {
	return &Opts{
		Convention:  Unix(),
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		FlagDivider: "-",
	}
}

// Apply applies the given options to the current options.
func (o *Opts) Apply(optFuncs ...OptFunc) *Opts {
	for _, f := range optFuncs {
		(f)(o)
	}

	return o
}

// WithConvention sets the command-line convention used by the parser.
func WithConvention(conv Convention) OptFunc {
	return func(opt *Opts) {
		if conv != nil {
			opt.Convention = conv
		}
	}
}

// WithLogger sets the logger receiving parse traces.
func WithLogger(logger *slog.Logger) OptFunc {
	return func(opt *Opts) {
		if logger != nil {
			opt.Logger = logger
		}
	}
}

// FlagDivider sets custom divider for long names. It is dash by default. e.g. "flag-name".
func FlagDivider(val string) OptFunc { return func(opt *Opts) { opt.FlagDivider = val } }

// ParseAll orders the scanner to declare an argument for all exported struct fields.
func ParseAll() OptFunc { return func(opt *Opts) { opt.ParseAll = true } }
