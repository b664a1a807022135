// Package interfaces holds the interfaces a bound struct or
// a value type may implement to take part in command execution
// and shell completion.
package interfaces

import (
	"github.com/rsteube/carapace"
)

// Commander is implemented by bound structs running a command
// once their arguments are parsed. It is bound to cobra.Command.RunE.
type Commander interface {
	Execute(args []string) error
}

// Runner is the equivalent of cobra cmd.Run(cmd *cobra.Command, args []string).
// It is ignored if the struct also implements Commander.
type Runner interface {
	Run(args []string)
}

// Completer is the interface for value types that can provide their own
// shell completion suggestions.
type Completer interface {
	Complete(ctx carapace.Context) carapace.Action
}
