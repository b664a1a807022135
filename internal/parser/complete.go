package parser

import (
	stderrors "errors"

	"github.com/reeflective/targ/internal/errors"
	"github.com/reeflective/targ/internal/sink"
)

// Candidates are the arguments a word being completed may belong to.
type Candidates struct {
	// Value is the option taking the word as its value, if any.
	// The word can also be a flag when that value is optional.
	Value *Descriptor

	// Options are the options still accepted.
	Options []*Descriptor

	// Positional is the first positional still accepting words.
	Positional *Descriptor
}

// Complete walks the words preceding the one being completed, the way a
// parse pass would, and returns what the next word may be. Words that fail
// to parse are skipped. Like Parse, it can be called once per parser.
func (p *Parser) Complete(args []string) Candidates {
	var cands Candidates

	if p.parsed {
		return cands
	}

	p.parsed = true

	if resetter, ok := p.conv.(Resetter); ok {
		resetter.Reset()
	}

	for index := 0; index < len(args); {
		if p.conv.Metaparse(args[index]) {
			index++

			continue
		}

		start := index

		consumed, arg, err := p.dispatch(args, index)
		if err != nil {
			if stderrors.Is(err, errors.ErrExpectedArgument) && index == len(args)-1 {
				return Candidates{Value: arg}
			}

			index++

			continue
		}

		index += consumed

		if index == len(args) && expectsMore(arg, args[start], consumed) {
			cands.Value = arg
		}
	}

	for _, arg := range p.args {
		switch {
		case arg.kind == KindOption && p.conv.ShouldConsider(arg):
			cands.Options = append(cands.Options, arg)
		case arg.kind == KindPositional && cands.Positional == nil && !arg.saturated():
			cands.Positional = arg
		}
	}

	return cands
}

// expectsMore is true when an option that used the last words
// would also take the next one as a value.
func expectsMore(arg *Descriptor, flag string, consumed int) bool {
	if arg.kind != KindOption {
		return false
	}

	if inline, _ := arg.match(flag); inline != nil {
		return false
	}

	switch arg.sink.Kind() {
	case sink.KindRepeated:
		return true
	case sink.KindOptional:
		return consumed == 1
	default:
		return false
	}
}
