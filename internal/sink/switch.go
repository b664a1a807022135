package sink

import "github.com/reeflective/targ/internal/values"

type switchSink struct {
	value values.Value
}

// NewSwitch returns a sink setting its value to true on each match.
// Cumulative switches like counters see one Set per occurrence.
func NewSwitch(val values.Value) Sink {
	return &switchSink{value: val}
}

func (s *switchSink) Kind() Kind          { return KindSwitch }
func (s *switchSink) Value() values.Value { return s.value }

func (s *switchSink) Consume(w Window) (int, error) {
	word := "true"
	if w.Inline != nil {
		word = *w.Inline
	}

	return 0, set(s.value, word)
}
