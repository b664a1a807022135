package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCounter_Set(t *testing.T) {
	t.Parallel()

	initial := 0
	counter := (*Counter)(&initial)

	require.Equal(t, "0", counter.String())
	require.Equal(t, 0, counter.Get())
	require.True(t, counter.IsBoolFlag())
	require.True(t, counter.IsCumulative())
	require.Equal(t, "count", counter.Type())

	require.NoError(t, counter.Set(""))
	require.NoError(t, counter.Set("true"))
	require.Equal(t, 2, initial)

	require.NoError(t, counter.Set("10"))
	require.Equal(t, 10, initial)
	require.Equal(t, "10", counter.String())

	require.Error(t, counter.Set("b"))
	require.Equal(t, 10, initial)
}
