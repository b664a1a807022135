package parser

import (
	"strconv"
	"strings"
)

// Convention is a command-line syntax family: it provides the flag prefixes
// read by option arguments, intercepts meta arguments before any argument is
// tried, and decides which arguments may match the current word.
//
// Conventions may keep mode state across words: a parser calls Metaparse
// once for each word it starts dispatching, then ShouldConsider for each of
// its arguments, in declaration order.
type Convention interface {
	// Prefixes returns the short and long flag prefixes.
	Prefixes() (short, long string)

	// Metaparse returns true if the word is a meta argument,
	// in which case it is consumed and offered to no argument.
	Metaparse(token string) bool

	// ShouldConsider returns false to hide an argument
	// from the word currently being dispatched.
	ShouldConsider(arg *Descriptor) bool
}

// Delimiter is implemented by conventions recognizing words that end
// repeated and optional values, other than the spellings of known options.
type Delimiter interface {
	Delimits(token string) bool
}

// Resetter is implemented by conventions keeping state across words.
// A parser resets its convention when a parse pass starts.
type Resetter interface {
	Reset()
}

// PlainConvention uses arbitrary prefixes, has no meta arguments
// and lets every argument match every word.
type PlainConvention struct {
	short string
	long  string
}

// Plain returns a convention with the given prefixes, like "/" and "/".
func Plain(short, long string) *PlainConvention {
	return &PlainConvention{short: short, long: long}
}

// Prefixes returns the prefixes given to Plain.
func (c *PlainConvention) Prefixes() (string, string) {
	return c.short, c.long
}

// Metaparse returns false: no word has a meaning of its own.
func (c *PlainConvention) Metaparse(string) bool {
	return false
}

// ShouldConsider returns true: positionals take flag-like words as well.
func (c *PlainConvention) ShouldConsider(*Descriptor) bool {
	return true
}

// Terminator is the Unix end-of-options marker.
const Terminator = "--"

// UnixConvention implements the usual `-s`/`--long` syntax.
//
// The first "--" word is consumed and turns options off: all later words
// resolve as positionals. Until then, a word that looks like a flag is never
// given to positionals, so that unknown flags are reported as such.
type UnixConvention struct {
	optionsDone bool
	flagLike    bool
}

// Unix returns a new Unix convention.
func Unix() *UnixConvention {
	return &UnixConvention{}
}

// Prefixes returns "-" and "--".
func (c *UnixConvention) Prefixes() (string, string) { return "-", "--" }

// Reset forgets the terminator, for a new parse pass.
func (c *UnixConvention) Reset() {
	c.optionsDone = false
	c.flagLike = false
}

// Metaparse consumes the first terminator, and records
// whether the word looks like a flag for ShouldConsider.
func (c *UnixConvention) Metaparse(token string) bool {
	if !c.optionsDone && token == Terminator {
		c.optionsDone = true
		c.flagLike = false

		return true
	}

	c.flagLike = !c.optionsDone && IsFlagLike(token)

	return false
}

// ShouldConsider hides options after the terminator,
// and positionals from flag-like words before it.
func (c *UnixConvention) ShouldConsider(arg *Descriptor) bool {
	switch arg.Kind() {
	case KindOption:
		return !c.optionsDone
	case KindPositional:
		return !c.flagLike
	default:
		return true
	}
}

// Delimits returns true for the terminator and for flag-like
// words, as long as options are still being parsed.
func (c *UnixConvention) Delimits(token string) bool {
	return !c.optionsDone && (token == Terminator || IsFlagLike(token))
}

// OptionsDone returns true once the terminator has been seen.
func (c *UnixConvention) OptionsDone() bool {
	return c.optionsDone
}

// IsFlagLike returns true for words starting with a dash that are
// neither a lone dash (often stdin) nor a negative number.
func IsFlagLike(token string) bool {
	if len(token) < 2 || !strings.HasPrefix(token, "-") {
		return false
	}

	_, err := strconv.ParseFloat(token, 64)

	return err != nil
}
