package sink

import (
	stderrors "errors"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reeflective/targ/internal/errors"
	"github.com/reeflective/targ/internal/values"
	"github.com/reeflective/targ/types"
)

func valueOf(t *testing.T, ptr any) values.Value {
	t.Helper()

	val := values.NewValue(reflect.ValueOf(ptr).Elem())
	require.NotNil(t, val)

	return val
}

func strP(s string) *string { return &s }

func isFlag(token string) bool { return strings.HasPrefix(token, "-") }

func TestKindOf(t *testing.T) {
	t.Parallel()

	var (
		verbose bool
		count   types.Counter
		output  string
		files   []string
	)

	assert.Equal(t, KindSwitch, KindOf(valueOf(t, &verbose)))
	assert.Equal(t, KindSwitch, KindOf(valueOf(t, &count)))
	assert.Equal(t, KindScalar, KindOf(valueOf(t, &output)))
	assert.Equal(t, KindRepeated, KindOf(valueOf(t, &files)))
	assert.Equal(t, "optional", KindOptional.String())
}

func TestSwitch(t *testing.T) {
	t.Parallel()

	var verbose bool
	s := New(KindSwitch, valueOf(t, &verbose))

	n, err := s.Consume(Window{Tokens: []string{"value", "rest"}})
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.True(t, verbose)

	n, err = s.Consume(Window{Inline: strP("false")})
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.False(t, verbose)

	_, err = s.Consume(Window{Inline: strP("perhaps")})
	require.ErrorIs(t, err, errors.ErrInvalidValue)
}

func TestScalar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		window  Window
		want    string
		wantN   int
		wantErr error
	}{
		{name: "next word", window: Window{Tokens: []string{"out.bin", "main.c"}}, want: "out.bin", wantN: 1},
		{name: "flag-like word", window: Window{Tokens: []string{"-v"}, Stop: isFlag}, want: "-v", wantN: 1},
		{name: "inline", window: Window{Tokens: []string{"main.c"}, Inline: strP("out.bin")}, want: "out.bin"},
		{name: "missing", window: Window{}, want: "a.out", wantErr: errors.ErrExpectedArgument},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			output := "a.out"
			n, err := NewScalar(valueOf(t, &output)).Consume(test.window)

			if test.wantErr != nil {
				require.ErrorIs(t, err, test.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, test.wantN, n)
			}

			assert.Equal(t, test.want, output)
		})
	}
}

func TestScalar_Conversion(t *testing.T) {
	t.Parallel()

	jobs := 1
	_, err := NewScalar(valueOf(t, &jobs)).Consume(Window{Tokens: []string{"many"}})
	require.ErrorIs(t, err, errors.ErrInvalidValue)
	assert.Contains(t, err.Error(), `"many"`)
	assert.Equal(t, 1, jobs)
}

func TestRepeated(t *testing.T) {
	t.Parallel()

	files := []string{"default.c"}
	s := NewRepeated(valueOf(t, &files))

	n, err := s.Consume(Window{Tokens: []string{"a.c", "b.c", "-o", "out"}, Stop: isFlag})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"a.c", "b.c"}, files)

	// A second match accumulates instead of resetting.
	n, err = s.Consume(Window{Tokens: []string{"c.c"}, Stop: isFlag})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []string{"a.c", "b.c", "c.c"}, files)

	n, err = s.Consume(Window{Inline: strP("d.c"), Tokens: []string{"e.c"}})
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, []string{"a.c", "b.c", "c.c", "d.c"}, files)

	n, err = s.Consume(Window{Tokens: []string{"-x"}, Stop: isFlag})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRepeated_StopsAtEndWithoutStopFunc(t *testing.T) {
	t.Parallel()

	var ports []int
	s := NewRepeated(valueOf(t, &ports))

	n, err := s.Consume(Window{Tokens: []string{"80", "-443", "8080"}})
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []int{80, -443, 8080}, ports)

	n, err = s.Consume(Window{Tokens: []string{"22", "ssh"}})
	require.ErrorIs(t, err, errors.ErrInvalidValue)
	assert.Equal(t, 1, n)

	var werr *WordError
	require.ErrorAs(t, err, &werr)
	assert.Equal(t, 1, werr.Offset)
	assert.Equal(t, "ssh", werr.Word)
}

func TestWordError_InlineValuesAreNotWords(t *testing.T) {
	t.Parallel()

	var ports []int

	_, err := NewRepeated(valueOf(t, &ports)).Consume(Window{Inline: strP("http")})
	require.ErrorIs(t, err, errors.ErrInvalidValue)

	var werr *WordError
	assert.False(t, stderrors.As(err, &werr))

	jobs := 1
	_, err = NewScalar(valueOf(t, &jobs)).Consume(Window{Tokens: []string{"many"}})
	require.ErrorAs(t, err, &werr)
	assert.Zero(t, werr.Offset)
	assert.Equal(t, "many", werr.Word)
}

func TestOptional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		window   Window
		fallback *string
		want     string
		wantN    int
	}{
		{name: "next word", window: Window{Tokens: []string{"fast"}}, want: "fast", wantN: 1},
		{name: "stop word", window: Window{Tokens: []string{"-v"}, Stop: isFlag}, want: "default"},
		{name: "end of line", window: Window{}, want: "default"},
		{name: "fallback", window: Window{}, fallback: strP("auto"), want: "auto"},
		{name: "inline", window: Window{Inline: strP("slow"), Tokens: []string{"x"}}, want: "slow"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			mode := "default"
			n, err := NewOptional(valueOf(t, &mode), test.fallback).Consume(test.window)
			require.NoError(t, err)
			assert.Equal(t, test.wantN, n)
			assert.Equal(t, test.want, mode)
		})
	}
}
