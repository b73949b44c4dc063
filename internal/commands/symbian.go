package commands

const symbianBaseURL = "http://developer.symbian.org/"

func symbianCommands() []Spec {
	return []Spec{
		{
			Name:        "symdoc",
			Arity:       1,
			Description: "Searches the Symbian developer library.",
			Slot:        SlotQuery,
			Template: func(args []string) string {
				return symbianBaseURL + "search/search_results.php?txtSearch=" + args[0] + "&site=sdl_collection"
			},
		},
		{
			Name:        "symbug",
			Arity:       1,
			Description: "Opens a Symbian bug by id.",
			Slot:        SlotQuery,
			Template: func(args []string) string {
				return symbianBaseURL + "bugs/show_bug.cgi?id=" + args[0]
			},
		},
		{
			Name:        "sympkg",
			Arity:       1,
			Description: "Opens a Symbian source package page.",
			Slot:        SlotPath,
			Template: func(args []string) string {
				return symbianBaseURL + "main/source/packages/" + args[0]
			},
		},
		{
			Name:        "symmcl",
			Arity:       1,
			Description: "Opens a repository in the Symbian master codeline.",
			Slot:        SlotPath,
			Template: func(args []string) string {
				return symbianBaseURL + "oss/MCL/" + args[0]
			},
		},
		{
			Name:        "symfcl",
			Arity:       1,
			Description: "Opens a repository in the Symbian feature codeline.",
			Slot:        SlotPath,
			Template: func(args []string) string {
				return symbianBaseURL + "oss/FCL/" + args[0]
			},
		},
	}
}
