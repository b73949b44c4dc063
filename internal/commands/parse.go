package commands

import "strings"

// sourceKeyword introduces the source role, as in "qdoc QString::split from 5.2".
const sourceKeyword = "from"

// Invocation is a command line split into its roles.
type Invocation struct {
	Name   string
	Object string
	Source string
}

// Args returns the positional arguments for Resolve. The source is only
// included when present so one-argument commands are not affected.
func (inv Invocation) Args() []string {
	if inv.Source == "" {
		return []string{inv.Object}
	}
	return []string{inv.Object, inv.Source}
}

// ParseLine splits a typed line into command name, object and source text.
// Only commands taking a source split on "from", at its last standalone
// occurrence; for every other name the object is the whole remaining text.
// Words are rejoined with a single space.
func (r *Registry) ParseLine(line string) (Invocation, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Invocation{}, ErrEmptyInput
	}

	inv := Invocation{Name: fields[0]}
	rest := fields[1:]
	if spec, ok := r.Get(inv.Name); !ok || spec.Arity < 2 {
		inv.Object = strings.Join(rest, " ")
		return inv, nil
	}
	for i := len(rest) - 1; i >= 0; i-- {
		if rest[i] == sourceKeyword {
			inv.Source = strings.Join(rest[i+1:], " ")
			rest = rest[:i]
			break
		}
	}
	inv.Object = strings.Join(rest, " ")
	return inv, nil
}
