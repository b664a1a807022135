package sink

import "github.com/reeflective/targ/internal/values"

type optionalSink struct {
	value    values.Value
	fallback *string
}

// NewOptional returns a sink taking the next word when there is one that
// does not stop the run. Otherwise the fallback word is set if given,
// and the value keeps its default if not.
func NewOptional(val values.Value, fallback *string) Sink {
	return &optionalSink{value: val, fallback: fallback}
}

func (s *optionalSink) Kind() Kind          { return KindOptional }
func (s *optionalSink) Value() values.Value { return s.value }

func (s *optionalSink) Consume(w Window) (int, error) {
	if w.Inline != nil {
		return 0, set(s.value, *w.Inline)
	}

	if len(w.Tokens) > 0 && !w.stops(w.Tokens[0]) {
		return 1, setToken(s.value, w.Tokens, 0)
	}

	if s.fallback != nil {
		return 0, set(s.value, *s.fallback)
	}

	return 0, nil
}
