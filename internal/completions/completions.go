// Package completions attaches shell completions to a command whose
// arguments are parsed by a targ parser. Completion walks the words
// already typed with a fresh parser, so it always agrees with parsing.
package completions

import (
	"strings"

	"github.com/rsteube/carapace"
	"github.com/spf13/cobra"

	"github.com/reeflective/targ/internal/parser"
	"github.com/reeflective/targ/internal/sink"
)

// ParserFunc returns a new parser, bound to throwaway data.
type ParserFunc func() (*parser.Parser, error)

// Generate registers completions for all words of the command.
// Returns the carapace, so you can work with completions should you like.
func Generate(cmd *cobra.Command, newParser ParserFunc) *carapace.Carapace {
	comps := carapace.Gen(cmd)

	handler := func(ctx carapace.Context) carapace.Action {
		p, err := newParser()
		if err != nil {
			return carapace.ActionMessage(err.Error())
		}

		return Complete(p, ctx)
	}

	comps.PositionalAnyCompletion(carapace.ActionCallback(handler))

	return comps
}

// Complete returns the completions of the current word, given the
// words before it. The parser is used up.
func Complete(p *parser.Parser, ctx carapace.Context) carapace.Action {
	cands := p.Complete(ctx.Args)
	short, long := p.Prefixes()

	var actions []carapace.Action

	if cands.Value != nil {
		actions = append(actions, valueAction(ctx, cands.Value))

		if cands.Value.Strategy() == sink.KindScalar {
			return actions[0]
		}
	}

	wantsFlag := isFlagPrefix(ctx.Value, short, long) ||
		(ctx.Value == "" && cands.Value == nil && cands.Positional == nil)

	switch {
	case wantsFlag && len(cands.Options) > 0:
		actions = append(actions, flagsAction(cands.Options))
	case cands.Value == nil && cands.Positional != nil:
		actions = append(actions, valueAction(ctx, cands.Positional))
	}

	if len(actions) == 0 {
		return carapace.ActionValues()
	}

	return carapace.Batch(actions...).ToA()
}

func isFlagPrefix(word, short, long string) bool {
	return word != "" &&
		((short != "" && strings.HasPrefix(word, short)) ||
			(long != "" && strings.HasPrefix(word, long)))
}

// flagsAction proposes all spellings of the options, with their usage.
func flagsAction(options []*parser.Descriptor) carapace.Action {
	vals := make([]string, 0, len(options)*4)

	for _, option := range options {
		for _, spelling := range option.Spellings() {
			vals = append(vals, spelling, option.Usage())
		}
	}

	return carapace.ActionValuesDescribed(vals...)
}
