package errors

import "errors"

var (
	// ErrParse is a general error used to wrap more specific parsing errors.
	ErrParse = errors.New("parse error")

	// ErrExpectedArgument indicates that an option was given without its required value.
	ErrExpectedArgument = errors.New("expected argument")

	// ErrUnknownFlag indicates an option-like token that matches no declared option.
	ErrUnknownFlag = errors.New("unknown flag")

	// ErrUnknownArgument indicates a token that no descriptor and no meta-argument consumed.
	ErrUnknownArgument = errors.New("unrecognized argument")

	// ErrInvalidValue indicates that a token could not be converted to the argument's type.
	ErrInvalidValue = errors.New("invalid value")

	// ErrRequired indicates that a required argument was not provided.
	ErrRequired = errors.New("required argument")

	// ErrDuplicatedFlag indicates that a short or long flag has been
	// defined more than once.
	ErrDuplicatedFlag = errors.New("duplicated flag")

	// ErrInvalidOption indicates an option declared without a usable name.
	ErrInvalidOption = errors.New("invalid option declaration")

	// ErrInvalidPositional indicates a positional declared with a strategy it cannot use.
	ErrInvalidPositional = errors.New("invalid positional declaration")

	// ErrParsed is returned when a parser is used for a second pass,
	// or when arguments are registered after parsing started.
	ErrParsed = errors.New("parser already used")

	// ErrRegistered is returned when a descriptor is registered twice.
	ErrRegistered = errors.New("argument already registered")

	// ErrNotPointerToStruct indicates that a provided data container is not
	// a pointer to a struct.
	ErrNotPointerToStruct = errors.New("object must be a pointer to struct")

	// ErrInvalidTag indicates an invalid tag or invalid use of an existing tag.
	ErrInvalidTag = errors.New("invalid tag")

	// ErrNotValue indicates that a struct field type for an argument
	// cannot be converted from command-line words.
	ErrNotValue = errors.New("field type cannot be parsed from the command line")

	// ErrNilObject indicates that an object is nil although it should not.
	ErrNilObject = errors.New("object cannot be nil")
)
