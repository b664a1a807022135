package main

import (
	"fmt"
	"strings"

	"github.com/rsteube/carapace"
	"github.com/rsteube/carapace-bin/pkg/actions/net/ssh"
	osactions "github.com/rsteube/carapace-bin/pkg/actions/os"
)

// Remote is a build machine, given as "host" or "user@host".
type Remote struct {
	User string
	Host string
}

func (r *Remote) Set(word string) error {
	user, host, hasUser := strings.Cut(word, "@")
	if !hasUser {
		user, host = "", word
	}

	if host == "" || strings.Contains(host, "@") || (hasUser && user == "") {
		return fmt.Errorf("invalid remote %q: want [user@]host", word)
	}

	r.User, r.Host = user, host

	return nil
}

func (r *Remote) String() string {
	if r.User == "" {
		return r.Host
	}

	return r.User + "@" + r.Host
}

func (r *Remote) Type() string { return "remote" }

// Complete offers local users first, then the hosts known to ssh.
func (r *Remote) Complete(_ carapace.Context) carapace.Action {
	return carapace.ActionMultiParts("@", func(c carapace.Context) carapace.Action {
		if len(c.Parts) == 0 {
			return osactions.ActionUsers().Suffix("@").NoSpace('@')
		}

		if len(c.Parts) == 1 {
			return ssh.ActionHosts()
		}

		return carapace.ActionValues()
	})
}
