package parser

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/reeflective/targ/internal/errors"
)

// Tag is the parsed struct tag of a field. A key may appear several times.
type Tag map[string][]string

// argumentTags are the keys turning a field into an argument.
var argumentTags = []string{
	"short", "long", "arg", "desc", "description", "help",
	"default", "optional", "optional-value", "negatable", "required", "complete",
}

// GetFieldTag returns the struct tags for a given field,
// and whether the field carries no tag at all.
func GetFieldTag(field reflect.StructField) (*Tag, bool, error) {
	tag := Tag{}
	if err := tag.parse(string(field.Tag)); err != nil {
		return nil, true, fmt.Errorf("%w: field %s: %w", errors.ErrInvalidTag, field.Name, err)
	}

	return &tag, len(tag) == 0, nil
}

// Get returns the first value of a tag.
func (t *Tag) Get(key string) (string, bool) {
	if val, ok := (*t)[key]; ok {
		return val[0], true
	}

	return "", false
}

// GetMany returns all the values of a tag.
func (t *Tag) GetMany(key string) []string {
	return (*t)[key]
}

// IsSet returns true if the key is present, whatever its value.
func (t *Tag) IsSet(key string) bool {
	_, ok := (*t)[key]

	return ok
}

// isArgument returns true if any tag key declares an argument.
func (t *Tag) isArgument() bool {
	for _, key := range argumentTags {
		if t.IsSet(key) {
			return true
		}
	}

	return false
}

// usage returns the description from any of its aliases.
func (t *Tag) usage() string {
	for _, key := range []string{"description", "desc", "help"} {
		if usage, isSet := t.Get(key); isSet {
			return usage
		}
	}

	return ""
}

// parse reads a raw struct tag, keeping repeated keys,
// which reflect.StructTag.Lookup would not do.
func (t *Tag) parse(raw string) error {
	for raw != "" {
		raw = strings.TrimLeft(raw, " ")
		if raw == "" {
			break
		}

		// The key ends at the colon. Spaces, quotes and control characters are invalid.
		end := 0
		for end < len(raw) && raw[end] > ' ' && raw[end] != ':' && raw[end] != '"' && raw[end] != 0x7f {
			end++
		}

		if end == 0 || end+1 >= len(raw) || raw[end] != ':' || raw[end+1] != '"' {
			return fmt.Errorf("invalid syntax near %q", raw)
		}

		key := raw[:end]
		raw = raw[end+1:]

		// Find the closing quote, skipping escaped characters.
		end = 1
		for end < len(raw) && raw[end] != '"' {
			if raw[end] == '\\' {
				end++
			}
			end++
		}

		if end >= len(raw) {
			return fmt.Errorf("unterminated value for key %q", key)
		}

		quoted := raw[:end+1]
		raw = raw[end+1:]

		value, ok := reflect.StructTag(key + ":" + quoted).Lookup(key)
		if !ok {
			return fmt.Errorf("invalid value for key %q", key)
		}

		(*t)[key] = append((*t)[key], value)
	}

	return nil
}

// IsStringFalsy returns true if a string is considered "falsy" (empty, "false", "no", or "0").
func IsStringFalsy(s string) bool {
	return s == "" || s == "false" || s == "no" || s == "0"
}
