// Package sink implements the strategies used by arguments to consume
// command-line words into their value: switches, scalars, repeated lists
// and optional values. Each strategy owns a value and reports how many
// words it used, so that callers never branch on the value's type.
package sink

import (
	"fmt"

	"github.com/reeflective/targ/internal/errors"
	"github.com/reeflective/targ/internal/values"
)

// Kind identifies a consumption strategy.
type Kind int

const (
	// KindSwitch consumes no word: presence sets the value.
	KindSwitch Kind = iota
	// KindScalar consumes exactly one word.
	KindScalar
	// KindRepeated consumes words until a stop token or the end of the line.
	KindRepeated
	// KindOptional consumes one word if there is a usable one.
	KindOptional
)

func (k Kind) String() string {
	switch k {
	case KindSwitch:
		return "switch"
	case KindScalar:
		return "scalar"
	case KindRepeated:
		return "repeated"
	case KindOptional:
		return "optional"
	default:
		return "unknown"
	}
}

// Window is what a sink is offered once its argument matched.
type Window struct {
	// Tokens are the words following an option flag,
	// or the words starting at the current one for a positional.
	Tokens []string

	// Inline holds a value attached to the flag itself (--name=value).
	Inline *string

	// Stop reports whether a word ends a repeated or optional run.
	Stop func(token string) bool
}

func (w Window) stops(token string) bool {
	return w.Stop != nil && w.Stop(token)
}

// Sink consumes words from a window into a value.
type Sink interface {
	// Kind returns the strategy implemented by the sink.
	Kind() Kind

	// Consume returns the number of words of w.Tokens it used.
	// The inline value, if any, is not counted.
	Consume(w Window) (int, error)

	// Value returns the value words are written to.
	Value() values.Value
}

// New returns the sink implementing kind on top of val.
func New(kind Kind, val values.Value) Sink {
	switch kind {
	case KindSwitch:
		return NewSwitch(val)
	case KindRepeated:
		return NewRepeated(val)
	case KindOptional:
		return NewOptional(val, nil)
	default:
		return NewScalar(val)
	}
}

// KindOf returns the strategy that suits a value best:
// switches for booleans, repeated for cumulative values, scalar otherwise.
func KindOf(val values.Value) Kind {
	switch {
	case values.IsBool(val):
		return KindSwitch
	case values.IsCumulative(val):
		return KindRepeated
	default:
		return KindScalar
	}
}

// WordError is a conversion failure of one of the window tokens.
// Offset is the position of the word in Window.Tokens.
type WordError struct {
	Offset int
	Word   string
	Err    error
}

func (e *WordError) Error() string { return e.Err.Error() }

func (e *WordError) Unwrap() error { return e.Err }

// set writes a word into the value, marking conversion failures.
func set(val values.Value, word string) error {
	if err := val.Set(word); err != nil {
		return fmt.Errorf("%w %q: %w", errors.ErrInvalidValue, word, err)
	}

	return nil
}

// setToken writes the window token at offset into the value.
func setToken(val values.Value, tokens []string, offset int) error {
	if err := set(val, tokens[offset]); err != nil {
		return &WordError{Offset: offset, Word: tokens[offset], Err: err}
	}

	return nil
}
