package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reeflective/targ/internal/sink"
)

func TestComplete(t *testing.T) {
	t.Parallel()

	names := func(args []*Descriptor) []string {
		var names []string
		for _, arg := range args {
			names = append(names, arg.Name())
		}

		return names
	}

	allOptions := []string{
		"S", "verbose", "no-verbose", "x", "arch", "output", "multiple", "color",
	}

	tests := []struct {
		name       string
		args       []string
		value      string
		options    []string
		positional string
	}{
		{
			name:       "nothing yet",
			args:       nil,
			options:    allOptions,
			positional: "files",
		},
		{
			name:  "scalar value",
			args:  []string{"-v", "--output"},
			value: "output",
		},
		{
			name:       "scalar done",
			args:       []string{"--output", "x"},
			options:    allOptions,
			positional: "files",
		},
		{
			name:       "repeated value",
			args:       []string{"-m", "a"},
			value:      "multiple",
			options:    allOptions,
			positional: "files",
		},
		{
			name:       "inline repeated value",
			args:       []string{"--multiple=a"},
			options:    allOptions,
			positional: "files",
		},
		{
			name:       "optional value",
			args:       []string{"--color"},
			value:      "color",
			options:    allOptions,
			positional: "files",
		},
		{
			name:       "optional done",
			args:       []string{"--color", "never"},
			options:    allOptions,
			positional: "files",
		},
		{
			name:       "after terminator",
			args:       []string{"--", "-v"},
			positional: "files",
		},
		{
			name:  "unknown words are skipped",
			args:  []string{"--bogus", "-o"},
			value: "output",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			p := newCompiler(t, &compiler{})
			cands := p.Complete(test.args)

			if test.value == "" {
				assert.Nil(t, cands.Value)
			} else {
				require.NotNil(t, cands.Value)
				assert.Equal(t, test.value, cands.Value.Name())
			}

			assert.Equal(t, test.options, names(cands.Options))

			if test.positional == "" {
				assert.Nil(t, cands.Positional)
			} else {
				require.NotNil(t, cands.Positional)
				assert.Equal(t, test.positional, cands.Positional.Name())
			}
		})
	}
}

func TestComplete_SaturatedPositionals(t *testing.T) {
	t.Parallel()

	var src, dst string

	p := New()
	require.NoError(t, p.Register(
		NewPositional("src", sink.KindScalar, valueOf(t, &src)),
		NewPositional("dst", sink.KindScalar, valueOf(t, &dst)),
	))

	cands := p.Complete([]string{"a"})
	require.NotNil(t, cands.Positional)
	assert.Equal(t, "dst", cands.Positional.Name())
	assert.Equal(t, "a", src)
}
