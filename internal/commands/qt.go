package commands

import "strings"

const (
	qtDocBaseURL = "http://doc.qt-project.org/"
	qtBugBaseURL = "http://bugreports.qt-project.org/browse/"
)

// qtCommands covers the Qt reference documentation and the Qt bug tracker.
func qtCommands() []Spec {
	return []Spec{
		{
			Name:        "qdoc",
			Arity:       2,
			Description: "Opens the Qt snapshot documentation for a class or member (e.g. qdoc QString::split from 5.2).",
			Slot:        SlotPath,
			Template: func(args []string) string {
				// Only the first "::" separates class and member in the page name.
				symbol := strings.Replace(args[0], "::", "-", 1)
				return qtDocBaseURL + args[1] + "-snapshot/" + symbol + ".html"
			},
		},
		{
			Name:        "qtbug",
			Arity:       1,
			Description: "Opens a QTBUG issue by number.",
			Slot:        SlotPath,
			Template: func(args []string) string {
				return qtBugBaseURL + "QTBUG-" + args[0]
			},
		},
		{
			Name:        "qtmbug",
			Arity:       1,
			Description: "Opens a QTMOBILITY issue by number.",
			Slot:        SlotPath,
			Template: func(args []string) string {
				return qtBugBaseURL + "QTMOBILITY-" + args[0]
			},
		},
	}
}
