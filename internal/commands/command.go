package commands

// Template renders a destination URL from the already validated arguments.
// args[0] is the object text; args[1], when the command takes two arguments,
// is the source text. Templates must be pure.
type Template func(args []string) string

// SlotKind tells the encoder where a command's arguments end up in the URL.
type SlotKind int

const (
	// SlotQuery arguments are placed in a query string value.
	SlotQuery SlotKind = iota
	// SlotPath arguments are placed in a path segment.
	SlotPath
)

func (k SlotKind) String() string {
	switch k {
	case SlotPath:
		return "path"
	default:
		return "query"
	}
}

// Spec describes a single launcher command.
type Spec struct {
	Name        string   // Unique command name (e.g., "qtbug")
	Arity       int      // Number of required text arguments, 1 or 2
	Description string   // Brief help text
	Slot        SlotKind // Where the arguments are substituted
	Template    Template
}

// Usage returns the invocation syntax shown in help output.
func (s Spec) Usage() string {
	if s.Arity == 2 {
		return s.Name + " <object> from <source>"
	}
	return s.Name + " <object>"
}

// Pattern renders the template with placeholders instead of user text.
func (s Spec) Pattern() string {
	args := []string{"{object}", "{source}"}
	return s.Template(args[:s.Arity])
}
