package values

import (
	"strconv"
)

// Inverter writes the opposite of every boolean it is given into
// another value. It backs the `--no-<name>` companion of negatable switches.
type Inverter struct {
	// Target is the switch value being negated.
	Target Value
}

func (i *Inverter) String() string {
	return i.Target.String()
}

// IsBoolFlag makes the inverter a switch itself.
func (i *Inverter) IsBoolFlag() bool {
	return true
}

// Set parses the word as a boolean and stores its negation in the target.
func (i *Inverter) Set(s string) error {
	val, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}

	return i.Target.Set(strconv.FormatBool(!val))
}

func (i *Inverter) Type() string {
	return i.Target.Type()
}
