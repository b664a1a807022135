package parser

import (
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"github.com/reeflective/targ/internal/errors"
	"github.com/reeflective/targ/internal/sink"
	"github.com/reeflective/targ/internal/values"
)

// Parser is a parser description: an ordered list of arguments and the
// convention used to read them. Declaration order is match precedence:
// when two arguments could consume the same word, the first one wins.
//
// A Parser is used for one parse pass: once parsing started, it accepts
// neither new arguments nor another pass.
type Parser struct {
	conv      Convention
	log       *slog.Logger
	args      []*Descriptor
	spellings map[string]*Descriptor
	program   string
	parsed    bool
}

// New returns a parser ready for arguments to be registered.
func New(optFuncs ...OptFunc) *Parser {
	return NewWith(DefOpts().Apply(optFuncs...))
}

// NewWith returns a parser built from already applied options.
func NewWith(opts *Opts) *Parser {
	return &Parser{
		conv:      opts.Convention,
		log:       opts.Logger,
		spellings: make(map[string]*Descriptor),
	}
}

// Convention returns the parser convention.
func (p *Parser) Convention() Convention { return p.conv }

// Prefixes returns the short and long flag prefixes of the convention.
func (p *Parser) Prefixes() (short, long string) { return p.conv.Prefixes() }

// Program returns the program path given to ParseCommandLine.
func (p *Parser) Program() string { return p.program }

// Descriptors returns the registered arguments in declaration order.
func (p *Parser) Descriptors() []*Descriptor {
	args := make([]*Descriptor, len(p.args))
	copy(args, p.args)

	return args
}

// Register appends arguments to the parser, in order. It fails on the first
// argument that is invalid, already registered, or using a flag spelling
// that is already taken; arguments before it stay registered.
func (p *Parser) Register(args ...*Descriptor) error {
	for _, arg := range args {
		if err := p.register(arg); err != nil {
			return err
		}

		if arg.negatable {
			if err := p.register(negationOf(arg)); err != nil {
				return err
			}
		}
	}

	return nil
}

func (p *Parser) register(arg *Descriptor) error {
	switch {
	case p.parsed:
		return errors.ErrParsed
	case arg == nil:
		return errors.ErrNilObject
	case arg.owner != nil:
		return fmt.Errorf("%w: %s", errors.ErrRegistered, arg.Name())
	}

	if err := p.check(arg); err != nil {
		return err
	}

	// The descriptor needs the prefixes to compute its spellings.
	arg.owner = p

	spellings := arg.Spellings()
	for _, spelling := range spellings {
		if _, taken := p.spellings[spelling]; taken {
			arg.owner = nil

			return fmt.Errorf("%w: %s", errors.ErrDuplicatedFlag, spelling)
		}
	}

	for _, spelling := range spellings {
		p.spellings[spelling] = arg
	}

	p.args = append(p.args, arg)

	return nil
}

// check validates an argument declaration against the convention.
func (p *Parser) check(arg *Descriptor) error {
	if arg.sink.Value() == nil {
		return fmt.Errorf("%w: %s has no usable value", errors.ErrNotValue, arg.Name())
	}

	if arg.kind == KindPositional {
		switch {
		case arg.sink.Kind() == sink.KindSwitch:
			return fmt.Errorf("%w: %s cannot be a switch", errors.ErrInvalidPositional, arg.Name())
		case arg.negatable:
			return fmt.Errorf("%w: %s cannot be negated", errors.ErrInvalidPositional, arg.Name())
		case arg.fallback != nil:
			return fmt.Errorf("%w: %s cannot have an optional value", errors.ErrInvalidPositional, arg.Name())
		}

		return nil
	}

	short, long := p.conv.Prefixes()

	switch {
	case arg.short == 0 && arg.long == "":
		return fmt.Errorf("%w: option has neither a short nor a long name", errors.ErrInvalidOption)
	case arg.short != 0 && (unicode.IsSpace(arg.short) || arg.short == '=' ||
		strings.ContainsRune(short+long, arg.short)):
		return fmt.Errorf("%w: invalid short name %q", errors.ErrInvalidOption, arg.short)
	case strings.ContainsFunc(arg.long, unicode.IsSpace) || strings.Contains(arg.long, "="):
		return fmt.Errorf("%w: invalid long name %q", errors.ErrInvalidOption, arg.long)
	case arg.negatable && !negatable(arg):
		return fmt.Errorf("%w: %s cannot be negated", errors.ErrInvalidOption, arg.Name())
	}

	return nil
}

// negatable is true for plain boolean switches with a name to derive
// the negation from. Cumulative switches like counters cannot be negated.
func negatable(arg *Descriptor) bool {
	val := arg.sink.Value()

	return arg.sink.Kind() == sink.KindSwitch && values.IsBool(val) &&
		!values.IsCumulative(val) && (arg.long != "" || arg.negation != "")
}

// ParseCommandLine parses a process argument vector, whose first word is the program path.
func (p *Parser) ParseCommandLine(argv []string) error {
	if len(argv) > 0 {
		p.program = argv[0]
		argv = argv[1:]
	}

	return p.Parse(argv)
}

// Parse consumes all words into the registered arguments. It stops at the
// first word that an argument cannot use, or that nothing recognizes.
// Everything matched before that word has already been applied.
func (p *Parser) Parse(args []string) error {
	if p.parsed {
		return errors.ErrParsed
	}

	p.parsed = true

	if resetter, ok := p.conv.(Resetter); ok {
		resetter.Reset()
	}

	for index := 0; index < len(args); {
		if p.conv.Metaparse(args[index]) {
			p.log.Debug("meta argument", "index", index, "token", args[index])
			index++

			continue
		}

		consumed, _, err := p.dispatch(args, index)
		if err != nil {
			return err
		}

		index += consumed
	}

	return p.checkRequired(len(args))
}

// dispatch offers the current word to all eligible arguments, in order.
// It returns the number of words used, and the argument that used them.
func (p *Parser) dispatch(args []string, index int) (int, *Descriptor, error) {
	token := args[index]

	for _, arg := range p.args {
		if !p.conv.ShouldConsider(arg) {
			continue
		}

		consumed, err := arg.AttemptConsume(args[index:], p.stops)
		if err != nil {
			faulty := index + consumed

			return 0, arg, &ParseError{Index: faulty, Token: args[faulty], Argument: arg.Name(), Err: err}
		}

		if consumed > 0 {
			p.log.Debug("argument matched", "index", index, "token", token,
				"argument", arg.Name(), "consumed", consumed)

			return consumed, arg, nil
		}
	}

	p.log.Debug("unknown argument", "index", index, "token", token)

	return 0, nil, p.unknown(index, token)
}

// stops reports words ending repeated and optional values:
// convention delimiters, and spellings of options still eligible.
func (p *Parser) stops(token string) bool {
	if delimiter, ok := p.conv.(Delimiter); ok && delimiter.Delimits(token) {
		return true
	}

	for _, arg := range p.args {
		if arg.kind == KindOption && p.conv.ShouldConsider(arg) && arg.Matches(token) {
			return true
		}
	}

	return false
}

// unknown builds the error for a word nothing consumed.
func (p *Parser) unknown(index int, token string) error {
	perr := &ParseError{Index: index, Token: token, Err: errors.ErrUnknownArgument}

	if !p.isFlagLike(token) {
		return perr
	}

	perr.Err = errors.ErrUnknownFlag

	name, _, _ := strings.Cut(token, "=")
	var known []string
	for _, arg := range p.args {
		known = append(known, arg.Spellings()...)
	}

	if closest, dist := closestChoice(name, known); closest != "" && dist <= maxSuggestDistance {
		perr.Suggestion = closest
	}

	return perr
}

func (p *Parser) isFlagLike(token string) bool {
	if delimiter, ok := p.conv.(Delimiter); ok {
		return delimiter.Delimits(token)
	}

	short, long := p.conv.Prefixes()

	return (short != "" && len(token) > len(short) && strings.HasPrefix(token, short)) ||
		(long != "" && len(token) > len(long) && strings.HasPrefix(token, long))
}

// checkRequired fails on the first required argument never matched.
// A negatable argument is satisfied by its negation as well.
func (p *Parser) checkRequired(count int) error {
	for _, arg := range p.args {
		if arg.required && !arg.given() {
			return &ParseError{Index: count, Argument: arg.Name(), Err: errors.ErrRequired}
		}
	}

	return nil
}
