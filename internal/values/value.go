package values

import "github.com/spf13/pflag"

// Value is the interface to the dynamic value stored in an argument slot.
// It is the pflag interface, so that any pflag.Value can be bound as is.
type Value = pflag.Value

// BoolFlag is implemented by values that do not require a word:
// their mere presence on the command line sets them.
type BoolFlag interface {
	Value
	IsBoolFlag() bool
}

// RepeatableFlag is implemented by values that accumulate
// each word they are given instead of overwriting themselves.
type RepeatableFlag interface {
	Value
	IsCumulative() bool
}

// Resetter is implemented by accumulating values able to drop
// their default contents before the first word of a parse pass.
type Resetter interface {
	Reset()
}

// Unmarshaler is the interface implemented by types that can unmarshal a flag
// argument to themselves. The provided value is directly passed from the
// command line.
type Unmarshaler interface {
	UnmarshalFlag(value string) error
}

// Marshaler is the interface implemented by types that can marshal themselves
// to a string representation of the flag.
type Marshaler interface {
	MarshalFlag() (string, error)
}

// IsBool returns true if the value behaves like a switch.
func IsBool(val Value) bool {
	boolFlag, ok := val.(BoolFlag)

	return ok && boolFlag.IsBoolFlag()
}

// IsCumulative returns true if the value accumulates words.
func IsCumulative(val Value) bool {
	repeatable, ok := val.(RepeatableFlag)

	return ok && repeatable.IsCumulative()
}
