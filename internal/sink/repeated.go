package sink

import "github.com/reeflective/targ/internal/values"

type repeatedSink struct {
	value   values.Value
	started bool
}

// NewRepeated returns a sink appending words until a stop token or the end
// of the window. On its first use, the value drops its default contents when
// it implements values.Resetter; later matches accumulate.
func NewRepeated(val values.Value) Sink {
	return &repeatedSink{value: val}
}

func (s *repeatedSink) Kind() Kind          { return KindRepeated }
func (s *repeatedSink) Value() values.Value { return s.value }

func (s *repeatedSink) Consume(w Window) (int, error) {
	s.reset()

	if w.Inline != nil {
		return 0, set(s.value, *w.Inline)
	}

	count := 0

	for count < len(w.Tokens) && !w.stops(w.Tokens[count]) {
		if err := setToken(s.value, w.Tokens, count); err != nil {
			return count, err
		}
		count++
	}

	return count, nil
}

func (s *repeatedSink) reset() {
	if s.started {
		return
	}

	s.started = true

	if resetter, ok := s.value.(values.Resetter); ok {
		resetter.Reset()
	}
}
