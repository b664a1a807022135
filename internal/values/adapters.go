package values

import (
	"encoding"
	"fmt"
	"reflect"
)

// methodValue binds a user type that converts words with its own methods.
// The format function may be nil, in which case fmt.Stringer is tried.
type methodValue struct {
	target any
	parse  func(word string) error
	format func() (string, error)
}

// flagMethods builds a value around UnmarshalFlag and MarshalFlag.
func flagMethods(target any, unmarshaler Unmarshaler) Value {
	val := &methodValue{target: target, parse: unmarshaler.UnmarshalFlag}
	if marshaler, ok := target.(Marshaler); ok {
		val.format = marshaler.MarshalFlag
	}

	return val
}

// textMethods builds a value around UnmarshalText and MarshalText.
func textMethods(target any, unmarshaler encoding.TextUnmarshaler) Value {
	val := &methodValue{
		target: target,
		parse:  func(word string) error { return unmarshaler.UnmarshalText([]byte(word)) },
	}

	if marshaler, ok := target.(encoding.TextMarshaler); ok {
		val.format = func() (string, error) {
			text, err := marshaler.MarshalText()

			return string(text), err
		}
	}

	return val
}

func (v *methodValue) Set(word string) error {
	return v.parse(word)
}

func (v *methodValue) String() string {
	if v.format != nil {
		if text, err := v.format(); err == nil {
			return text
		}
	}

	if stringer, ok := v.target.(fmt.Stringer); ok {
		return stringer.String()
	}

	return ""
}

// Type is the bare name of the user type, without its package.
func (v *methodValue) Type() string {
	return reflect.TypeOf(v.target).Elem().Name()
}
