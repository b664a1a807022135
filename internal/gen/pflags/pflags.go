// Package pflags exports the options of a parser as a pflag.FlagSet,
// for programs that need pflag interop (usage listings, cobra flag
// sets...). The flags share their values with the parser arguments.
package pflags

import (
	"github.com/spf13/pflag"

	"github.com/reeflective/targ/internal/parser"
	"github.com/reeflective/targ/internal/sink"
)

// RequiredAnnotation marks required flags in their annotations.
const RequiredAnnotation = "targ_required"

// flagSet describes interface,
// that's implemented by pflag library and required by targ.
type flagSet interface {
	VarPF(value pflag.Value, name, shorthand, usage string) *pflag.Flag
	Lookup(name string) *pflag.Flag
}

var _ flagSet = (*pflag.FlagSet)(nil)

// Generate returns a new flag set holding all options of the parser.
// Positionals have no pflag equivalent and are left out.
func Generate(p *parser.Parser, name string) *pflag.FlagSet {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)

	GenerateTo(p.Descriptors(), flags)

	return flags
}

// GenerateTo adds options to dst. Options with only a short name use it
// as their long name as well. An option whose name is already taken in
// dst is skipped, and shorthands pflag cannot represent are dropped.
func GenerateTo(args []*parser.Descriptor, dst flagSet) {
	for _, arg := range args {
		if arg.Kind() != parser.KindOption {
			continue
		}

		name, shorthand := names(arg)
		if dst.Lookup(name) != nil {
			continue
		}

		flag := dst.VarPF(arg.Value(), name, shorthand, arg.Usage())
		flag.NoOptDefVal = noOptDefVal(arg)

		if arg.IsRequired() {
			flag.Annotations = map[string][]string{RequiredAnnotation: {"true"}}
		}
	}
}

func names(arg *parser.Descriptor) (name, shorthand string) {
	if short := arg.Short(); short != 0 && short < 0x80 {
		shorthand = string(short)
	}

	name = arg.Long()
	if name == "" {
		name = string(arg.Short())
	}

	return name, shorthand
}

// noOptDefVal is the word used by pflag when the flag has no value.
func noOptDefVal(arg *parser.Descriptor) string {
	switch arg.Strategy() {
	case sink.KindSwitch:
		// Like the flag library: a bare switch is set to true.
		return "true"
	case sink.KindOptional:
		if fallback, ok := arg.OptionalValue(); ok {
			return fallback
		}

		return arg.Value().String()
	default:
		return ""
	}
}
