package parser

import (
	"fmt"
	"reflect"
	"unicode/utf8"

	"github.com/reeflective/targ/internal/errors"
	"github.com/reeflective/targ/internal/sink"
	"github.com/reeflective/targ/internal/values"
)

// Scan builds the arguments declared by the fields of a struct, in field
// order, bound to the fields themselves. The data must be a pointer to a
// struct. Embedded structs, and fields tagged `group`, are scanned in place.
func Scan(data any, opts *Opts) ([]*Descriptor, error) {
	if data == nil {
		return nil, errors.ErrNilObject
	}

	ptrval := reflect.ValueOf(data)

	if ptrval.Kind() != reflect.Ptr || ptrval.Type().Elem().Kind() != reflect.Struct {
		return nil, errors.ErrNotPointerToStruct
	}

	if ptrval.IsNil() {
		return nil, errors.ErrNilObject
	}

	return scanStruct(ptrval.Elem(), opts)
}

func scanStruct(val reflect.Value, opts *Opts) ([]*Descriptor, error) {
	var args []*Descriptor

	stype := val.Type()

	for i := range stype.NumField() {
		field := stype.Field(i)

		tag, skip, err := GetFieldTag(field)
		if err != nil {
			return nil, err
		}

		if !field.IsExported() {
			if tag.isArgument() {
				return nil, fmt.Errorf("%w: field %s is not exported but has argument tags",
					errors.ErrInvalidTag, field.Name)
			}

			continue
		}

		fieldArgs, err := scanField(val.Field(i), field, tag, skip, opts)
		if err != nil {
			return nil, err
		}

		args = append(args, fieldArgs...)
	}

	return args, nil
}

// scanField dispatches a field to a group, a positional or an option.
func scanField(val reflect.Value, field reflect.StructField, tag *Tag, skip bool, opts *Opts) ([]*Descriptor, error) {
	if long, _ := tag.Get("long"); long == "-" || tag.IsSet("no-flag") {
		return nil, nil
	}

	if isGroup(val, field, tag) {
		return scanStruct(val, opts)
	}

	if skip && !opts.ParseAll {
		return nil, nil
	}

	pvalue := values.NewValue(val)
	if pvalue == nil {
		return nil, fmt.Errorf("%w: field %s of type %s", errors.ErrNotValue, field.Name, field.Type)
	}

	if err := applyDefaults(pvalue, val, field, tag); err != nil {
		return nil, err
	}

	if name, isArg := tag.Get("arg"); isArg {
		if name == "" {
			name = field.Name
		}

		return []*Descriptor{newTaggedPositional(name, pvalue, tag)}, nil
	}

	option, err := newTaggedOption(pvalue, field, tag, opts)
	if err != nil {
		return nil, err
	}

	return []*Descriptor{option}, nil
}

// isGroup is true for embedded or `group` tagged structs that are not values themselves.
func isGroup(val reflect.Value, field reflect.StructField, tag *Tag) bool {
	if val.Kind() != reflect.Struct || !(field.Anonymous || tag.IsSet("group")) {
		return false
	}

	return values.NewValue(val) == nil
}

func newTaggedPositional(name string, val values.Value, tag *Tag) *Descriptor {
	kind := sink.KindOf(val)
	if kind == sink.KindSwitch {
		kind = sink.KindScalar
	}

	opts := []ArgOpt{Usage(tag.usage())}
	if isRequired(tag) {
		opts = append(opts, Required())
	}

	for _, directive := range tag.GetMany("complete") {
		opts = append(opts, Completion(directive))
	}

	return NewPositional(name, kind, val, opts...)
}

func newTaggedOption(val values.Value, field reflect.StructField, tag *Tag, scanOpts *Opts) (*Descriptor, error) {
	var opts []ArgOpt

	short, hasShort := tag.Get("short")
	if hasShort {
		if utf8.RuneCountInString(short) != 1 {
			return nil, fmt.Errorf("%w: field %s: short name %q must be a single character",
				errors.ErrInvalidTag, field.Name, short)
		}

		name, _ := utf8.DecodeRuneInString(short)
		opts = append(opts, Short(name))
	}

	long, hasLong := tag.Get("long")
	if !hasLong && !hasShort {
		long = CamelToFlag(field.Name, scanOpts.FlagDivider)
	}

	if long != "" {
		opts = append(opts, Long(long))
	}

	opts = append(opts, Usage(tag.usage()))

	kind := sink.KindOf(val)

	if fallback, isSet := tag.Get("optional-value"); isSet {
		opts = append(opts, OptionalValue(fallback))
		kind = sink.KindOptional
	} else if tag.IsSet("optional") {
		kind = sink.KindOptional
	}

	if negation, isSet := tag.Get("negatable"); isSet {
		opts = append(opts, Negatable(negation))
	}

	if isRequired(tag) {
		opts = append(opts, Required())
	}

	for _, directive := range tag.GetMany("complete") {
		opts = append(opts, Completion(directive))
	}

	return NewOption(kind, val, opts...), nil
}

// applyDefaults writes the `default` tags into fields still holding their zero value.
func applyDefaults(pvalue values.Value, val reflect.Value, field reflect.StructField, tag *Tag) error {
	defaults := tag.GetMany("default")
	if len(defaults) == 0 || !val.IsZero() {
		return nil
	}

	for _, word := range defaults {
		if err := pvalue.Set(word); err != nil {
			return fmt.Errorf("%w: field %s: default %q: %w", errors.ErrInvalidTag, field.Name, word, err)
		}
	}

	return nil
}

func isRequired(tag *Tag) bool {
	required, isSet := tag.Get("required")

	return isSet && (required == "" || !IsStringFalsy(required))
}
