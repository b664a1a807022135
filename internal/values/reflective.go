package values

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/reeflective/targ/internal/errors"
)

var durationType = reflect.TypeOf(time.Duration(0))

// reflectiveValue is a fallback parser that uses reflection to handle
// any type based on its Kind, including primitives, slices, and maps.
// Slices and maps accumulate one element per word.
type reflectiveValue struct {
	value reflect.Value
}

// newReflectiveValue creates a new reflective parser.
func newReflectiveValue(val reflect.Value) Value {
	return &reflectiveValue{value: val}
}

func (v *reflectiveValue) Set(s string) error {
	switch v.value.Kind() {
	case reflect.Slice:
		return v.appendElem(s)
	case reflect.Map:
		return v.setMapIndex(s)
	default:
		return setPrimitive(v.value, s)
	}
}

func (v *reflectiveValue) String() string {
	return fmt.Sprintf("%v", v.value.Interface())
}

func (v *reflectiveValue) Type() string {
	return v.value.Type().String()
}

// IsBoolFlag makes boolean fields behave as switches.
func (v *reflectiveValue) IsBoolFlag() bool {
	return v.value.Kind() == reflect.Bool
}

// IsCumulative reports whether each word is accumulated.
func (v *reflectiveValue) IsCumulative() bool {
	return v.value.Kind() == reflect.Slice || v.value.Kind() == reflect.Map
}

// Reset empties a slice or map, dropping its default contents.
func (v *reflectiveValue) Reset() {
	switch v.value.Kind() {
	case reflect.Slice:
		v.value.Set(reflect.MakeSlice(v.value.Type(), 0, 0))
	case reflect.Map:
		v.value.Set(reflect.MakeMap(v.value.Type()))
	}
}

// appendElem parses a word into a new element and appends it to the slice.
func (v *reflectiveValue) appendElem(s string) error {
	elem := reflect.New(v.value.Type().Elem()).Elem()

	elemValue := NewValue(elem)
	if elemValue == nil {
		return fmt.Errorf("%w: unsupported slice element type %v", errors.ErrNotValue, elem.Type())
	}

	if err := elemValue.Set(s); err != nil {
		return err
	}

	v.value.Set(reflect.Append(v.value, elem))

	return nil
}

// setMapIndex parses a `key:value` word into the map.
func (v *reflectiveValue) setMapIndex(s string) error {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return fmt.Errorf("map value must be in 'key:value' format, got %q", s)
	}

	key := reflect.New(v.value.Type().Key()).Elem()
	val := reflect.New(v.value.Type().Elem()).Elem()

	keyValue, valValue := NewValue(key), NewValue(val)
	if keyValue == nil || valValue == nil {
		return fmt.Errorf("%w: unsupported map key or value type", errors.ErrNotValue)
	}

	if err := keyValue.Set(parts[0]); err != nil {
		return err
	}
	if err := valValue.Set(parts[1]); err != nil {
		return err
	}

	if v.value.IsNil() {
		v.value.Set(reflect.MakeMap(v.value.Type()))
	}

	v.value.SetMapIndex(key, val)

	return nil
}

// setPrimitive converts a word into a value of a basic kind.
func setPrimitive(val reflect.Value, s string) error {
	switch val.Kind() {
	case reflect.String:
		val.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		val.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		// time.Duration is an int64 with its own syntax.
		if val.Type() == durationType {
			d, err := time.ParseDuration(s)
			if err != nil {
				return err
			}
			val.SetInt(int64(d))

			return nil
		}
		n, err := strconv.ParseInt(s, 0, val.Type().Bits())
		if err != nil {
			return err
		}
		val.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 0, val.Type().Bits())
		if err != nil {
			return err
		}
		val.SetUint(n)
	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(s, val.Type().Bits())
		if err != nil {
			return err
		}
		val.SetFloat(n)
	default:
		return fmt.Errorf("%w: unsupported type for conversion: %v", errors.ErrNotValue, val.Type())
	}

	return nil
}
