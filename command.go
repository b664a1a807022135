package targ

import (
	"fmt"
	"reflect"

	"github.com/spf13/cobra"

	"github.com/reeflective/targ/internal/completions"
	"github.com/reeflective/targ/internal/interfaces"
	"github.com/reeflective/targ/internal/parser"
)

// Command returns a new cobra command whose words are parsed into data,
// a pointer to a struct, before run is called with them. If run is nil
// and data implements Commander or Runner, that implementation is used.
//
// Shell completions are generated and attached automatically.
func Command(use string, data any, run func(args []string) error, opts ...Option) (*cobra.Command, error) {
	cmd := &cobra.Command{Use: use}

	if err := BindCommand(cmd, data, opts...); err != nil {
		return nil, err
	}

	if run != nil {
		cmd.Run = nil
		cmd.RunE = func(_ *cobra.Command, args []string) error {
			return run(args)
		}
	}

	return cmd, nil
}

// BindCommand binds a struct to an existing cobra command: cobra flag
// parsing is disabled, and the command words are parsed into data when
// cobra validates its arguments. Each execution uses a new parser.
//
// Shell completions for the command words are generated and attached automatically.
func BindCommand(cmd *cobra.Command, data any, opts ...Option) error {
	// 1. Check the declarations once, writing defaults.
	if _, err := Bind(data, opts...); err != nil {
		return fmt.Errorf("failed to bind command: %w", err)
	}

	// 2. Parse the command words as its arguments.
	cmd.DisableFlagParsing = true
	cmd.Args = func(_ *cobra.Command, args []string) error {
		p, err := Bind(data, opts...)
		if err != nil {
			return err
		}

		return p.Parse(args)
	}

	bindRunners(cmd, data)

	// 3. Add shell completions, parsing into throwaway data.
	completions.Generate(cmd, func() (*parser.Parser, error) {
		return Bind(zeroOf(data), opts...)
	})

	return nil
}

// bindRunners uses the command implementation of the
// struct, if any, when the command has none.
func bindRunners(cmd *cobra.Command, data any) {
	if cmd.Run != nil || cmd.RunE != nil {
		return
	}

	switch impl := data.(type) {
	case interfaces.Commander:
		cmd.RunE = func(_ *cobra.Command, args []string) error {
			return impl.Execute(args)
		}
	case interfaces.Runner:
		cmd.Run = func(_ *cobra.Command, args []string) {
			impl.Run(args)
		}
	}
}

// zeroOf returns a pointer to a new zero value of the struct pointed to by data.
func zeroOf(data any) any {
	return reflect.New(reflect.TypeOf(data).Elem()).Interface()
}
