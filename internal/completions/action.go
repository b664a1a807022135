package completions

import (
	"strings"

	"github.com/rsteube/carapace"

	"github.com/reeflective/targ/internal/interfaces"
	"github.com/reeflective/targ/internal/parser"
	"github.com/reeflective/targ/internal/values"
)

const completeTagMaxParts = 2

// valueAction returns the completions for the value of an argument.
// Values completing themselves come first, then the argument's
// completion directives, then defaults for its type.
func valueAction(ctx carapace.Context, arg *parser.Descriptor) carapace.Action {
	val := arg.Value()

	if completer, ok := val.(interfaces.Completer); ok {
		return completer.Complete(ctx)
	}

	if directives := arg.Completions(); len(directives) > 0 {
		return directivesAction(directives)
	}

	switch {
	case values.IsBool(val):
		return carapace.ActionValues("true", "false")
	case arg.Kind() == parser.KindPositional:
		return carapace.ActionFiles()
	default:
		return carapace.ActionValues()
	}
}

// directivesAction merges the actions of several directives.
//
//	Args struct {
//	    File   string   `complete:"Files"`
//	    Config string   `complete:"FilterExt,json,yaml"`
//	    Dir    string   `complete:"Dirs"`
//	    Mode   string   `complete:"Values,fast,safe"`
//	}
func directivesAction(directives []string) carapace.Action {
	actions := make([]carapace.Action, 0, len(directives))

	for _, directive := range directives {
		if strings.TrimSpace(directive) == "" {
			continue
		}

		items := strings.SplitN(directive, ",", completeTagMaxParts)

		name, value := items[0], ""
		if len(items) > 1 {
			value = items[1]
		}

		actions = append(actions, directiveAction(name, value))
	}

	return carapace.Batch(actions...).ToA()
}

func directiveAction(name, value string) carapace.Action {
	var list []string
	if value != "" {
		list = strings.Split(value, ",")
	}

	switch name {
	case "NoSpace":
		return carapace.ActionValues().NoSpace()
	case "FilterExt", "Files":
		return carapace.ActionFiles(list...)
	case "FilterDirs", "Dirs":
		return carapace.ActionDirectories()
	case "Values":
		return carapace.ActionValues(list...)
	default:
		return carapace.ActionValues()
	}
}
