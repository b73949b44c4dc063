package commands

// Builtin returns the fixed command table the launcher ships with.
// A fresh slice is returned on every call.
func Builtin() []Spec {
	var specs []Spec
	specs = append(specs, qtCommands()...)
	specs = append(specs, xrefCommands()...)
	specs = append(specs, symbianCommands()...)
	return specs
}

// NewBuiltinRegistry builds the registry used by the launcher.
func NewBuiltinRegistry() *Registry {
	return MustRegistry(Builtin()...)
}
