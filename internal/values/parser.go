package values

import (
	"encoding"
	"reflect"
)

// NewValue creates a new value instance for an option or a positional argument
// based on its reflect.Value. It uses a tiered strategy to find the best way to
// handle the type, and returns nil if the type cannot be parsed from words.
// The value must be addressable (a struct field, or the element of a pointer).
func NewValue(val reflect.Value) Value {
	if !val.IsValid() || !val.CanAddr() {
		return nil
	}

	ptr := val.Addr().Interface()

	// 1. Direct Value implementation, on the pointer or the type itself.
	if v, ok := ptr.(Value); ok {
		return v
	}
	if val.Kind() != reflect.Ptr && val.CanInterface() {
		if v, ok := val.Interface().(Value); ok {
			return v
		}
	}

	// 2. go-flags style unmarshalers.
	if unmarshaler, ok := ptr.(Unmarshaler); ok {
		return flagMethods(ptr, unmarshaler)
	}

	// 3. Standard library text unmarshalers (net.IP, time.Time, big.Int...).
	if unmarshaler, ok := ptr.(encoding.TextUnmarshaler); ok {
		return textMethods(ptr, unmarshaler)
	}

	// 4. Pointers are allocated only when a word is actually set.
	if val.Kind() == reflect.Ptr {
		if !supported(val.Type().Elem()) {
			return nil
		}

		return &ptrValue{value: val}
	}

	// 5. Reflective fallback, for all primitives, slices and maps of them.
	if !supported(val.Type()) {
		return nil
	}

	return newReflectiveValue(val)
}

var (
	valueType       = reflect.TypeOf((*Value)(nil)).Elem()
	unmarshalerType = reflect.TypeOf((*Unmarshaler)(nil)).Elem()
	textType        = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

// supported reports whether NewValue can build a value for the type.
func supported(typ reflect.Type) bool {
	ptrType := reflect.PointerTo(typ)
	if typ.Implements(valueType) || ptrType.Implements(valueType) ||
		ptrType.Implements(unmarshalerType) || ptrType.Implements(textType) {
		return true
	}

	switch typ.Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	case reflect.Slice, reflect.Ptr:
		return supported(typ.Elem())
	case reflect.Map:
		return supported(typ.Key()) && supported(typ.Elem())
	default:
		return false
	}
}

// ptrValue allocates its target on the first Set,
// so that a nil default survives an unmatched argument.
type ptrValue struct {
	value reflect.Value
}

func (v *ptrValue) Set(s string) error {
	if v.value.IsNil() {
		v.value.Set(reflect.New(v.value.Type().Elem()))
	}

	return NewValue(v.value.Elem()).Set(s)
}

func (v *ptrValue) String() string {
	if v.value.IsNil() {
		return ""
	}

	return NewValue(v.value.Elem()).String()
}

func (v *ptrValue) Type() string {
	return v.value.Type().Elem().String()
}

func (v *ptrValue) IsBoolFlag() bool {
	return v.value.Type().Elem().Kind() == reflect.Bool
}

// Reset empties the slice or map behind the pointer, if one is allocated.
func (v *ptrValue) Reset() {
	if v.value.IsNil() {
		return
	}

	if resetter, ok := NewValue(v.value.Elem()).(Resetter); ok {
		resetter.Reset()
	}
}

func (v *ptrValue) IsCumulative() bool {
	kind := v.value.Type().Elem().Kind()

	return kind == reflect.Slice || kind == reflect.Map
}
