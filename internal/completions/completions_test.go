package completions

import (
	"testing"

	"github.com/rsteube/carapace"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reeflective/targ/internal/parser"
)

type build struct {
	Verbose bool     `short:"v" long:"verbose" description:"Print commands"`
	Config  string   `short:"c" long:"config" complete:"FilterExt,json,yaml"`
	Mode    string   `long:"mode" complete:"Values,fast,safe"`
	Tags    []string `long:"tag"`
	Target  string   `arg:"target" complete:"Dirs"`
	Files   []string `arg:"files"`
}

func newBuildParser() (*parser.Parser, error) {
	opts := parser.DefOpts()

	args, err := parser.Scan(&build{}, opts)
	if err != nil {
		return nil, err
	}

	p := parser.NewWith(opts)

	return p, p.Register(args...)
}

// TestCompletions calls the carapace engine test routine
// on a command whose words are all completed by a parser.
func TestCompletions(t *testing.T) {
	rootCmd := &cobra.Command{Use: "build", DisableFlagParsing: true}
	comps := Generate(rootCmd, newBuildParser)
	require.NotNil(t, comps)

	carapace.Test(t)
}

func TestComplete(t *testing.T) {
	t.Parallel()

	contexts := []carapace.Context{
		{Value: ""},
		{Value: "-"},
		{Value: "--ver"},
		{Args: []string{"-c"}, Value: ""},
		{Args: []string{"--tag", "a"}, Value: "-"},
		{Args: []string{"--mode", "fast", "dir"}, Value: ""},
		{Args: []string{"--", "-v"}, Value: "-"},
	}

	for _, ctx := range contexts {
		p, err := newBuildParser()
		require.NoError(t, err)

		assert.NotPanics(t, func() { Complete(p, ctx) })
	}
}

func TestIsFlagPrefix(t *testing.T) {
	t.Parallel()

	assert.True(t, isFlagPrefix("-", "-", "--"))
	assert.True(t, isFlagPrefix("--out", "-", "--"))
	assert.True(t, isFlagPrefix("/o", "/", "/"))
	assert.False(t, isFlagPrefix("", "-", "--"))
	assert.False(t, isFlagPrefix("file", "-", "--"))
	assert.False(t, isFlagPrefix("-x", "", ""))
}
