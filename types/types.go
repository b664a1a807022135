// Package types provides ready-made argument value types
// whose behavior goes beyond a plain conversion of one word.
package types

import (
	"fmt"
	"strconv"
)

// Counter is a switch type that increments its value each time it appears on
// the command line (`-v -v -v`). An explicit number resets it (`--verbose=3`).
type Counter int

// Set implements the Value interface.
func (c *Counter) Set(val string) error {
	if val == "" || val == "true" {
		*c++

		return nil
	}

	parsed, err := strconv.ParseInt(val, 0, 0)
	if err != nil {
		return fmt.Errorf("invalid value for counter: %w", err)
	}

	*c = Counter(parsed)

	return nil
}

// Get returns the inner value of the Counter.
func (c *Counter) Get() any { return int(*c) }

// IsBoolFlag returns true, because a Counter is used without a value.
func (c *Counter) IsBoolFlag() bool { return true }

// IsCumulative returns true: each occurrence adds to the count,
// so a Counter cannot be negated.
func (c *Counter) IsCumulative() bool { return true }

func (c *Counter) String() string { return strconv.Itoa(int(*c)) }

// Type implements the Value interface.
func (c *Counter) Type() string { return "count" }
