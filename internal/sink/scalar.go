package sink

import (
	"github.com/reeflective/targ/internal/errors"
	"github.com/reeflective/targ/internal/values"
)

type scalarSink struct {
	value values.Value
}

// NewScalar returns a sink converting exactly one word. The word is taken
// as is, even when it looks like a flag: the argument asked for it.
func NewScalar(val values.Value) Sink {
	return &scalarSink{value: val}
}

func (s *scalarSink) Kind() Kind          { return KindScalar }
func (s *scalarSink) Value() values.Value { return s.value }

func (s *scalarSink) Consume(w Window) (int, error) {
	if w.Inline != nil {
		return 0, set(s.value, *w.Inline)
	}

	if len(w.Tokens) == 0 {
		return 0, errors.ErrExpectedArgument
	}

	return 1, setToken(s.value, w.Tokens, 0)
}
