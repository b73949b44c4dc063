package commands

import "strings"

// androidProjects is the project filter androidxref needs to search the whole tree.
var androidProjects = []string{
	"abi", "bionic", "bootable", "build", "cts", "dalvik", "developers",
	"development", "device", "docs", "external", "frameworks", "hardware",
	"libcore", "libnativehelper", "ndk", "packages", "pdk", "prebuilts",
	"sdk", "system", "tools",
}

var androidProjectQuery = "&project=" + strings.Join(androidProjects, "&project=")

func xrefCommands() []Spec {
	return []Spec{
		{
			Name:        "xref-android",
			Arity:       1,
			Description: "Searches Android 4.3 sources for a symbol definition.",
			Slot:        SlotQuery,
			Template: func(args []string) string {
				return "http://androidxref.com/4.3_r2.1/search?q=&defs=" + args[0] +
					"&refs=&path=&hist=" + androidProjectQuery
			},
		},
		{
			Name:        "xref-linux",
			Arity:       1,
			Description: "Looks up an identifier in the Linux cross reference.",
			Slot:        SlotQuery,
			Template: func(args []string) string {
				return "http://lxr.free-electrons.com/ident?i=" + args[0]
			},
		},
		{
			Name:        "xref-qemu",
			Arity:       1,
			Description: "Searches QEMU sources for a symbol definition.",
			Slot:        SlotQuery,
			Template: func(args []string) string {
				return "http://code.metager.de/source/search?q=&defs=" + args[0] +
					"&refs=&path=&hist=&type="
			},
		},
	}
}
