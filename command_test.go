package targ_test

import (
	"io"
	"testing"

	"github.com/rsteube/carapace"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reeflective/targ"
)

type deploy struct {
	Force   bool     `short:"f" long:"force"`
	Region  string   `long:"region" default:"eu-west-1" complete:"Values,eu-west-1,us-east-1"`
	Target  string   `arg:"target" required:"true"`
	Plugins []string `arg:"plugins" complete:"Files"`

	executed []string
}

func (d *deploy) Execute(args []string) error {
	d.executed = args

	return nil
}

// Commands are not tested in parallel: carapace
// keeps its completion registry in global state.
func execute(t *testing.T, cmd *cobra.Command, args ...string) error {
	t.Helper()

	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	return cmd.Execute()
}

func TestCommand(t *testing.T) {
	cfg := &deploy{}

	var ran []string

	cmd, err := targ.Command("deploy", cfg, func(args []string) error {
		ran = args

		return nil
	})
	require.NoError(t, err)
	assert.True(t, cmd.DisableFlagParsing)

	require.NoError(t, execute(t, cmd, "-f", "prod", "a.so", "b.so"))

	assert.True(t, cfg.Force)
	assert.Equal(t, "eu-west-1", cfg.Region)
	assert.Equal(t, "prod", cfg.Target)
	assert.Equal(t, []string{"a.so", "b.so"}, cfg.Plugins)
	assert.Equal(t, []string{"-f", "prod", "a.so", "b.so"}, ran)
	assert.Nil(t, cfg.executed, "an explicit run function replaces Execute")
}

func TestCommand_Commander(t *testing.T) {
	cfg := &deploy{}

	cmd, err := targ.Command("deploy", cfg, nil)
	require.NoError(t, err)

	require.NoError(t, execute(t, cmd, "--region", "us-east-1", "staging"))
	assert.Equal(t, "us-east-1", cfg.Region)
	assert.Equal(t, []string{"--region", "us-east-1", "staging"}, cfg.executed)
}

func TestCommand_ParseErrors(t *testing.T) {
	cmd, err := targ.Command("deploy", &deploy{}, nil)
	require.NoError(t, err)

	err = execute(t, cmd, "--forse", "prod")
	require.ErrorIs(t, err, targ.ErrUnknownFlag)

	cmd, err = targ.Command("deploy", &deploy{}, nil)
	require.NoError(t, err)

	err = execute(t, cmd, "-f")
	require.ErrorIs(t, err, targ.ErrRequired)
}

func TestBindCommand(t *testing.T) {
	var ran bool

	cmd := &cobra.Command{
		Use: "deploy",
		Run: func(*cobra.Command, []string) { ran = true },
	}

	cfg := &deploy{}
	require.NoError(t, targ.BindCommand(cmd, cfg))
	require.NoError(t, execute(t, cmd, "prod"))

	assert.True(t, ran)
	assert.Nil(t, cfg.executed)
	assert.Equal(t, "prod", cfg.Target)

	err := targ.BindCommand(&cobra.Command{}, deploy{})
	require.ErrorIs(t, err, targ.ErrNotPointerToStruct)
}

// TestCommand_Completions calls the carapace engine test routine
// on the completions attached to bound commands.
func TestCommand_Completions(t *testing.T) {
	_, err := targ.Command("deploy", &deploy{}, nil)
	require.NoError(t, err)

	carapace.Test(t)
}
