package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reeflective/targ/internal/errors"
	"github.com/reeflective/targ/internal/sink"
)

func TestIsFlagLike(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"-v":        true,
		"--verbose": true,
		"--":        true,
		"-Wall":     true,
		"-":         false,
		"":          false,
		"file":      false,
		"-5":        false,
		"-0.25":     false,
		"-1e3":      false,
	}

	for token, want := range tests {
		assert.Equal(t, want, IsFlagLike(token), token)
	}
}

func TestUnixConvention(t *testing.T) {
	t.Parallel()

	option := &Descriptor{kind: KindOption}
	positional := &Descriptor{kind: KindPositional}

	conv := Unix()

	assert.False(t, conv.Metaparse("-v"))
	assert.True(t, conv.ShouldConsider(option))
	assert.False(t, conv.ShouldConsider(positional))
	assert.True(t, conv.Delimits("-v"))

	assert.False(t, conv.Metaparse("file"))
	assert.True(t, conv.ShouldConsider(option))
	assert.True(t, conv.ShouldConsider(positional))
	assert.False(t, conv.Delimits("file"))

	assert.True(t, conv.Metaparse("--"))
	assert.True(t, conv.OptionsDone())

	// Only the first terminator is a meta argument.
	assert.False(t, conv.Metaparse("--"))
	assert.False(t, conv.ShouldConsider(option))
	assert.True(t, conv.ShouldConsider(positional))
	assert.False(t, conv.Delimits("-v"))
	assert.False(t, conv.Delimits("--"))
}

func TestPlainConvention(t *testing.T) {
	t.Parallel()

	var (
		output  string
		verbose bool
	)

	newParser := func() *Parser {
		p := New(WithConvention(Plain("/", "/")))
		require.NoError(t, p.Register(
			NewOption(sink.KindScalar, valueOf(t, &output), Short('o'), Long("output")),
			NewOption(sink.KindSwitch, valueOf(t, &verbose), Long("verbose")),
		))

		return p
	}

	p := newParser()
	assert.Equal(t, []string{"/o", "/output"}, p.Descriptors()[0].Spellings())

	require.NoError(t, p.Parse([]string{"/output", "x.bin", "/verbose"}))
	assert.Equal(t, "x.bin", output)
	assert.True(t, verbose)

	// Dashes mean nothing to this convention.
	err := newParser().Parse([]string{"--verbose"})
	require.ErrorIs(t, err, errors.ErrUnknownArgument)

	err = newParser().Parse([]string{"/verbos"})
	require.ErrorIs(t, err, errors.ErrUnknownFlag)
}
