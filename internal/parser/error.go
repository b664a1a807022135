package parser

import (
	"fmt"

	"github.com/reeflective/targ/internal/errors"
)

// ParseError is the error returned by a failed parse pass.
// It always matches errors.ErrParse, and unwraps to the
// specific reason (expected argument, unknown flag...).
type ParseError struct {
	// Index of the word that failed in the parsed words.
	// It is the word count when a required argument is missing.
	Index int

	// Token is the failing word, if any.
	Token string

	// Argument is the name of the argument that failed, if any.
	Argument string

	// Suggestion is the closest known flag for unknown flags.
	Suggestion string

	Err error
}

func (e *ParseError) Error() string {
	var subject string

	switch {
	case e.Argument != "" && e.Token != "":
		subject = fmt.Sprintf("%s (%q)", e.Argument, e.Token)
	case e.Argument != "":
		subject = e.Argument
	default:
		subject = fmt.Sprintf("%q", e.Token)
	}

	msg := fmt.Sprintf("%v: %s: %v", errors.ErrParse, subject, e.Err)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %s?)", e.Suggestion)
	}

	return msg
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is makes all parse errors match errors.ErrParse.
func (e *ParseError) Is(target error) bool {
	return target == errors.ErrParse
}
