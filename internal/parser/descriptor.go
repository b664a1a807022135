package parser

import (
	stderrors "errors"
	"strings"

	"github.com/reeflective/targ/internal/sink"
	"github.com/reeflective/targ/internal/values"
)

// Kind tells how an argument is identified on the command line.
type Kind int

const (
	// KindPositional arguments are identified by their position.
	KindPositional Kind = iota
	// KindOption arguments are identified by a prefixed flag.
	KindOption
)

func (k Kind) String() string {
	if k == KindOption {
		return "option"
	}

	return "positional"
}

// Descriptor is a declared argument: a positional or an option, owning the
// strategy that consumes words into its value. Descriptors are inert until
// registered into a Parser, which gives them read access to its prefixes.
type Descriptor struct {
	kind     Kind
	name     string
	short    rune
	long     string
	usage    string
	required bool

	// Negation
	negatable bool
	negation  string
	negates   *Descriptor // set on the companion switch only

	fallback    *string
	completions []string
	sink        sink.Sink
	owner       *Parser // read-only, outlives the descriptor
	matched     int
}

// ArgOpt configures a descriptor when building it.
type ArgOpt func(d *Descriptor)

// Short sets the short flag name of an option.
func Short(name rune) ArgOpt { return func(d *Descriptor) { d.short = name } }

// Long sets the long flag name of an option.
func Long(name string) ArgOpt { return func(d *Descriptor) { d.long = name } }

// Name sets the display name of an argument.
func Name(name string) ArgOpt { return func(d *Descriptor) { d.name = name } }

// Usage sets the description of an argument.
func Usage(usage string) ArgOpt { return func(d *Descriptor) { d.usage = usage } }

// Required makes the parse fail if the argument was never matched.
func Required() ArgOpt { return func(d *Descriptor) { d.required = true } }

// OptionalValue sets the word written by an optional option
// that is given no value on the command line.
func OptionalValue(word string) ArgOpt {
	return func(d *Descriptor) { d.fallback = &word }
}

// Negatable adds a companion switch writing false into a switch option.
// An empty name defaults to "no-<long>".
func Negatable(name string) ArgOpt {
	return func(d *Descriptor) {
		d.negatable = true
		d.negation = name
	}
}

// Completion adds a shell completion directive to the argument,
// like "Files", "Dirs" or "FilterExt,json,yaml".
func Completion(directive string) ArgOpt {
	return func(d *Descriptor) { d.completions = append(d.completions, directive) }
}

// NewOption returns an option consuming words into val with the given strategy.
func NewOption(kind sink.Kind, val values.Value, opts ...ArgOpt) *Descriptor {
	desc := &Descriptor{kind: KindOption}
	for _, opt := range opts {
		opt(desc)
	}

	if kind == sink.KindOptional {
		desc.sink = sink.NewOptional(val, desc.fallback)
	} else {
		desc.sink = sink.New(kind, val)
	}

	return desc
}

// NewPositional returns a positional argument consuming words into val.
// An optional positional declines stop words and cannot have an optional
// value: registering one with OptionalValue fails.
func NewPositional(name string, kind sink.Kind, val values.Value, opts ...ArgOpt) *Descriptor {
	desc := &Descriptor{kind: KindPositional, name: name}
	for _, opt := range opts {
		opt(desc)
	}

	desc.sink = sink.New(kind, val)

	return desc
}

// Kind returns whether the argument is a positional or an option.
func (d *Descriptor) Kind() Kind { return d.kind }

// Name returns the display name: the positional name, or
// the long name of an option, or its short one if it has none.
func (d *Descriptor) Name() string {
	switch {
	case d.name != "":
		return d.name
	case d.long != "":
		return d.long
	case d.short != 0:
		return string(d.short)
	default:
		return ""
	}
}

// Short returns the short name of an option, or 0.
func (d *Descriptor) Short() rune { return d.short }

// Long returns the long name of an option.
func (d *Descriptor) Long() string { return d.long }

// Usage returns the argument description.
func (d *Descriptor) Usage() string { return d.usage }

// IsRequired returns true if the argument must be matched.
func (d *Descriptor) IsRequired() bool { return d.required }

// Strategy returns the kind of consumption used by the argument.
func (d *Descriptor) Strategy() sink.Kind { return d.sink.Kind() }

// Value returns the value words are written to.
func (d *Descriptor) Value() values.Value { return d.sink.Value() }

// OptionalValue returns the word written by an optional option given no value.
func (d *Descriptor) OptionalValue() (string, bool) {
	if d.fallback == nil {
		return "", false
	}

	return *d.fallback, true
}

// Completions returns the shell completion directives of the argument.
func (d *Descriptor) Completions() []string { return d.completions }

// Matched returns how many times the argument consumed words.
func (d *Descriptor) Matched() int { return d.matched }

// Spellings returns the flag words matching the option, short first.
// It is empty for positionals and unregistered descriptors.
func (d *Descriptor) Spellings() []string {
	if d.kind != KindOption || d.owner == nil {
		return nil
	}

	short, long := d.owner.Prefixes()

	var spellings []string
	if d.short != 0 {
		spellings = append(spellings, short+string(d.short))
	}
	if d.long != "" {
		spellings = append(spellings, long+d.long)
	}

	return spellings
}

// Matches returns true if the word is one of the option's spellings,
// with or without an attached value.
func (d *Descriptor) Matches(token string) bool {
	_, matched := d.match(token)

	return matched
}

// AttemptConsume offers the words starting at the current one to the argument.
// It returns 0 if the argument does not match, or the number of words
// consumed. An error means the argument matched but its words are unusable,
// and the count is then the offset of the faulty word in tokens.
// The stop function reports words that end repeated and optional values.
func (d *Descriptor) AttemptConsume(tokens []string, stop func(string) bool) (int, error) {
	if len(tokens) == 0 {
		return 0, nil
	}

	switch d.kind {
	case KindOption:
		inline, matched := d.match(tokens[0])
		if !matched {
			return 0, nil
		}

		window := sink.Window{Tokens: tokens[1:], Inline: inline, Stop: stop}

		consumed, err := d.sink.Consume(window)
		if err != nil {
			if offset, ok := wordOffset(err); ok {
				return offset + 1, err
			}

			return 0, err
		}

		d.matched++

		return consumed + 1, nil

	case KindPositional:
		if d.saturated() {
			return 0, nil
		}

		// A repeated positional refuses to start on a stop word,
		// and must not drop its defaults when declining.
		if d.sink.Kind() == sink.KindRepeated && stop != nil && stop(tokens[0]) {
			return 0, nil
		}

		consumed, err := d.sink.Consume(sink.Window{Tokens: tokens, Stop: stop})
		if err != nil {
			offset, _ := wordOffset(err)

			return offset, err
		}

		if consumed == 0 {
			return 0, nil
		}

		d.matched++

		return consumed, nil
	}

	return 0, nil
}

func wordOffset(err error) (int, bool) {
	var werr *sink.WordError
	if !stderrors.As(err, &werr) {
		return 0, false
	}

	return werr.Offset, true
}

// saturated is true for single-valued positionals already holding their word.
func (d *Descriptor) saturated() bool {
	return d.matched > 0 && d.sink.Kind() != sink.KindRepeated
}

// match checks the word against the option spellings,
// and returns the value attached to the long one, if any.
func (d *Descriptor) match(token string) (*string, bool) {
	if d.kind != KindOption || d.owner == nil {
		return nil, false
	}

	short, long := d.owner.Prefixes()

	if d.short != 0 && token == short+string(d.short) {
		return nil, true
	}

	if d.long == "" {
		return nil, false
	}

	spelling := long + d.long
	if token == spelling {
		return nil, true
	}

	if value, found := strings.CutPrefix(token, spelling+"="); found {
		return &value, true
	}

	return nil, false
}

// negationOf builds the companion switch of a negatable option.
func negationOf(d *Descriptor) *Descriptor {
	name := d.negation
	if name == "" {
		name = "no-" + d.long
	}

	inverter := &values.Inverter{Target: d.Value()}

	negation := NewOption(sink.KindSwitch, inverter, Long(name), Usage(d.usage))
	negation.negates = d

	return negation
}

// given is true if the argument, or its negation, consumed words.
func (d *Descriptor) given() bool {
	if d.matched > 0 {
		return true
	}

	if d.owner == nil {
		return false
	}

	for _, arg := range d.owner.args {
		if arg.negates == d && arg.matched > 0 {
			return true
		}
	}

	return false
}
