// Command example is a compiler driver front-end showing how
// a struct is bound to a cobra command with targ.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rsteube/carapace"

	"github.com/reeflective/targ"
	"github.com/reeflective/targ/types"
)

//
// This file contains the root command, and its arguments.
//

type buildCommand struct {
	Verbose types.Counter `short:"v" long:"verbose" description:"Increase verbosity (repeatable)"`
	Host    Remote        `short:"H" long:"host" description:"Build on a remote user@host"`
	Output  string        `short:"o" long:"output" default:"a.out" description:"Output file" complete:"Files"`
	Jobs    int           `short:"j" long:"jobs" default:"1" description:"Parallel jobs"`
	Defines []string      `short:"D" description:"Preprocessor definitions, until the next flag"`
	Color   string        `long:"color" optional-value:"auto" description:"Colorize output" complete:"Values,auto,always,never"`
	Cache   bool          `long:"cache" default:"true" negatable:"" description:"Use the build cache"`
	Sources []string      `arg:"sources" required:"true" description:"Source files" complete:"FilterExt,.c,.h"`
}

// Execute prints what the parse produced.
func (b *buildCommand) Execute(_ []string) error {
	host := b.Host.String()
	if host == "" {
		host = "localhost"
	}

	fmt.Printf("building %s on %s with %d job(s), verbosity %d\n",
		strings.Join(b.Sources, " "), host, b.Jobs, b.Verbose)
	fmt.Printf("output: %s, defines: %v, color: %q, cache: %t\n",
		b.Output, b.Defines, b.Color, b.Cache)

	return nil
}

func main() {
	rootCmd, err := targ.Command("build", &buildCommand{}, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	rootCmd.Short = "A compiler driver showing how command-line words are dispatched to arguments."
	rootCmd.SilenceUsage = true

	// Completions are already bound, only make them standalone.
	carapace.Gen(rootCmd).Standalone()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
