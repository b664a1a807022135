// Package targ parses command lines into typed Go values.
//
// A program declares the arguments it accepts, positionals and options, as
// an ordered list bound to its own variables or struct fields. A parser then
// walks the command line once: each word is offered to the declared arguments
// in declaration order, and the first one accepting it consumes it, along
// with the words its value needs. Word consumption depends on the value:
// switches take no word, scalars exactly one, repeated values all words up to
// the next flag, and optional values one word if there is a usable one.
//
// Arguments are declared either with builders:
//
//	var verbose bool
//	var output = "a.out"
//	var files []string
//
//	parser := targ.New()
//	err := parser.Register(
//	    targ.Switch(&verbose, targ.Short('v'), targ.Long("verbose")),
//	    targ.Scalar(&output, targ.Short('o')),
//	    targ.Positionals("files", &files),
//	)
//
// or with struct tags, through Bind, ParseInto and Parse:
//
//	type config struct {
//	    Verbose bool     `short:"v" long:"verbose" description:"Print commands"`
//	    Output  string   `short:"o" default:"a.out"`
//	    Files   []string `arg:"files"`
//	}
//
//	cfg, err := targ.Parse[config](os.Args[1:])
//
// Command-line conventions are pluggable: the default Unix convention reads
// `-s` and `--long` flags and stops reading flags after `--`.
//
// For useful, pre-built value types like Counter,
// see the subpackage at "github.com/reeflective/targ/types".
package targ

import (
	"fmt"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/reeflective/targ/internal/errors"
	"github.com/reeflective/targ/internal/gen/pflags"
	"github.com/reeflective/targ/internal/interfaces"
	"github.com/reeflective/targ/internal/parser"
	"github.com/reeflective/targ/internal/values"
)

// === Core types ===

// Parser is an ordered list of arguments and the convention used to read them.
// A parser is good for one parse pass.
type Parser = parser.Parser

// Descriptor is a declared argument, positional or option.
type Descriptor = parser.Descriptor

// ParseError is the error returned by a failed parse pass. It gives the
// index of the failing word, and unwraps to the reason of the failure.
type ParseError = parser.ParseError

// Convention is a command-line syntax family: flag prefixes, meta arguments,
// and which arguments are eligible for each word.
type Convention = parser.Convention

// Value is the interface for custom argument types.
// It is the pflag.Value interface.
type Value = values.Value

// Commander is implemented by bound structs running a command.
// Its Execute method is bound to cobra.Command.RunE.
type Commander = interfaces.Commander

// Runner is a simpler command interface bound to cobra.Command.Run.
// It is ignored if the struct also implements Commander.
type Runner = interfaces.Runner

// Completer is the interface for value types that can provide their own
// shell completion suggestions.
type Completer = interfaces.Completer

// === Primary entry points ===

// New returns an empty parser, to which arguments are added with Register.
func New(opts ...Option) *Parser {
	return parser.New(toInternalOpts(opts)...)
}

// Bind declares an argument for each tagged field of a struct, in field
// order, and registers them into a new parser. The data must be a pointer
// to a struct. Fields still holding their zero value get their `default`
// tags.
func Bind(data any, opts ...Option) (*Parser, error) {
	internal := parser.DefOpts().Apply(toInternalOpts(opts)...)

	args, err := parser.Scan(data, internal)
	if err != nil {
		return nil, fmt.Errorf("failed to scan arguments: %w", err)
	}

	p := parser.NewWith(internal)
	if err := p.Register(args...); err != nil {
		return nil, fmt.Errorf("failed to register arguments: %w", err)
	}

	return p, nil
}

// ParseInto binds a struct and parses the words into it. On error, the
// fields matched before the failing word have already been written.
func ParseInto(data any, args []string, opts ...Option) error {
	p, err := Bind(data, opts...)
	if err != nil {
		return err
	}

	return p.Parse(args)
}

// Parse parses the words into a new T, which must be a struct type.
// All exported fields of T are arguments, tagged or not.
// It returns nil on any error, never a partial result.
func Parse[T any](args []string, opts ...Option) (*T, error) {
	data := new(T)

	opts = append([]Option{WithParseAll()}, opts...)
	if err := ParseInto(data, args, opts...); err != nil {
		return nil, err
	}

	return data, nil
}

// FlagSet returns the options of the parser as a pflag flag set, sharing
// their values. Positionals have no pflag equivalent and are left out.
func FlagSet(p *Parser, name string) *pflag.FlagSet {
	return pflags.Generate(p, name)
}

// === Configuration (Functional Options) ===

// Option is a functional option for configuring parsers.
type Option func(o *parser.Opts)

func toInternalOpts(opts []Option) []parser.OptFunc {
	internalOpts := make([]parser.OptFunc, len(opts))
	for i, opt := range opts {
		internalOpts[i] = parser.OptFunc(opt)
	}

	return internalOpts
}

// WithConvention sets the command-line convention. It is Unix by default.
func WithConvention(conv Convention) Option {
	return Option(parser.WithConvention(conv))
}

// WithLogger sets a logger receiving the parse decisions at debug level.
// Parsers are silent by default.
func WithLogger(logger *slog.Logger) Option {
	return Option(parser.WithLogger(logger))
}

// WithFlagDivider sets the character used to separate words
// in long flag names derived from field names.
func WithFlagDivider(divider string) Option {
	return Option(parser.FlagDivider(divider))
}

// WithParseAll declares an argument for all exported fields,
// not only the tagged ones.
func WithParseAll() Option {
	return Option(parser.ParseAll())
}

// Unix returns the `-s`/`--long` convention, where `--` ends options.
func Unix() Convention { return parser.Unix() }

// Plain returns a convention using the given flag prefixes,
// with no meta arguments: "/" and "/" for DOS-like flags.
func Plain(short, long string) Convention { return parser.Plain(short, long) }

// === Public Errors ===

var (
	// ErrParse is matched by all errors returned by a parse pass.
	ErrParse = errors.ErrParse

	// ErrExpectedArgument indicates an option given without its required value.
	ErrExpectedArgument = errors.ErrExpectedArgument

	// ErrUnknownFlag indicates a flag-like word matching no option.
	ErrUnknownFlag = errors.ErrUnknownFlag

	// ErrUnknownArgument indicates a word that no argument consumed.
	ErrUnknownArgument = errors.ErrUnknownArgument

	// ErrInvalidValue indicates a word not convertible to the argument type.
	ErrInvalidValue = errors.ErrInvalidValue

	// ErrRequired indicates a required argument never given.
	ErrRequired = errors.ErrRequired

	// ErrDuplicatedFlag indicates that a short or long flag has been
	// defined more than once.
	ErrDuplicatedFlag = errors.ErrDuplicatedFlag

	// ErrInvalidOption indicates an option declaration unusable by the convention.
	ErrInvalidOption = errors.ErrInvalidOption

	// ErrInvalidPositional indicates a positional with a strategy it cannot use.
	ErrInvalidPositional = errors.ErrInvalidPositional

	// ErrParsed indicates a parser used for a second pass.
	ErrParsed = errors.ErrParsed

	// ErrRegistered indicates an argument registered twice.
	ErrRegistered = errors.ErrRegistered

	// ErrNotPointerToStruct indicates that a provided data container is not
	// a pointer to a struct.
	ErrNotPointerToStruct = errors.ErrNotPointerToStruct

	// ErrInvalidTag indicates an invalid tag or invalid use of an existing tag.
	ErrInvalidTag = errors.ErrInvalidTag

	// ErrNotValue indicates an argument type that cannot be parsed from words.
	ErrNotValue = errors.ErrNotValue
)
