package targ

import (
	"reflect"

	"github.com/reeflective/targ/internal/parser"
	"github.com/reeflective/targ/internal/sink"
	"github.com/reeflective/targ/internal/values"
	"github.com/reeflective/targ/types"
)

// Strategy is the way an argument consumes words.
type Strategy = sink.Kind

const (
	// StrategySwitch takes no word: presence sets the value to true.
	StrategySwitch = sink.KindSwitch
	// StrategyScalar takes exactly one word.
	StrategyScalar = sink.KindScalar
	// StrategyRepeated takes all words up to a flag or the end of the line.
	StrategyRepeated = sink.KindRepeated
	// StrategyOptional takes one word if there is a usable one.
	StrategyOptional = sink.KindOptional
)

// ArgOpt configures an argument built by Switch, Scalar, Positional...
type ArgOpt = parser.ArgOpt

// Short sets the short flag name of an option, as in `-v`.
func Short(name rune) ArgOpt { return parser.Short(name) }

// Long sets the long flag name of an option, as in `--verbose`.
func Long(name string) ArgOpt { return parser.Long(name) }

// Name sets the display name of an argument.
func Name(name string) ArgOpt { return parser.Name(name) }

// Usage sets the description of an argument.
func Usage(usage string) ArgOpt { return parser.Usage(usage) }

// Required makes the parse fail when the argument is never given.
func Required() ArgOpt { return parser.Required() }

// OptionalValue sets the word an Optional option writes when given no value.
func OptionalValue(word string) ArgOpt { return parser.OptionalValue(word) }

// Negatable adds a `--no-<long>` switch writing false into a Switch,
// or a switch with the given long name.
func Negatable(name string) ArgOpt { return parser.Negatable(name) }

// Completion adds a shell completion directive to the argument.
func Completion(directive string) ArgOpt { return parser.Completion(directive) }

// Switch returns an option setting its slot to true when present.
func Switch(slot *bool, opts ...ArgOpt) *Descriptor {
	return parser.NewOption(sink.KindSwitch, valueOf(slot), opts...)
}

// Counter returns an option incrementing its slot each time it is present.
func Counter(slot *types.Counter, opts ...ArgOpt) *Descriptor {
	var val Value
	if slot != nil {
		val = slot
	}

	return parser.NewOption(sink.KindSwitch, val, opts...)
}

// Scalar returns an option converting the word following it into its slot.
func Scalar[T any](slot *T, opts ...ArgOpt) *Descriptor {
	return parser.NewOption(sink.KindScalar, valueOf(slot), opts...)
}

// Repeated returns an option appending the words following it to its slot.
// The slot contents are dropped on the first match.
func Repeated[T any](slot *[]T, opts ...ArgOpt) *Descriptor {
	return parser.NewOption(sink.KindRepeated, valueOf(slot), opts...)
}

// Optional returns an option converting the word following it when there is
// one that is not a flag. Otherwise the slot gets the OptionalValue word if
// one is set, and keeps its value if not.
func Optional[T any](slot *T, opts ...ArgOpt) *Descriptor {
	return parser.NewOption(sink.KindOptional, valueOf(slot), opts...)
}

// Positional returns a positional taking a single word.
func Positional[T any](name string, slot *T, opts ...ArgOpt) *Descriptor {
	return parser.NewPositional(name, sink.KindScalar, valueOf(slot), opts...)
}

// Positionals returns a positional taking all words up to a flag
// or the end of the line. The slot contents are dropped on the first match.
func Positionals[T any](name string, slot *[]T, opts ...ArgOpt) *Descriptor {
	return parser.NewPositional(name, sink.KindRepeated, valueOf(slot), opts...)
}

// Var returns an option consuming words into any value with the given strategy.
func Var(val Value, strategy Strategy, opts ...ArgOpt) *Descriptor {
	return parser.NewOption(strategy, val, opts...)
}

// PositionalVar returns a positional consuming words into any value.
func PositionalVar(name string, val Value, strategy Strategy, opts ...ArgOpt) *Descriptor {
	return parser.NewPositional(name, strategy, val, opts...)
}

// valueOf adapts a slot to a value. Slots of unsupported types give a nil
// value, which makes the argument fail to register with ErrNotValue.
func valueOf(slot any) Value {
	return values.NewValue(reflect.ValueOf(slot).Elem())
}
