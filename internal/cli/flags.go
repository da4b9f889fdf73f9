package cli

import "github.com/performer-tools/cli/internal/dispatchers"

var (
	RootFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--help", "-h"},
			Description: "Show help",
			Scope:       dispatchers.FlagScopeGlobal,
		},
		{
			Names:       []string{"--version", "-v"},
			Description: "Show version",
			Scope:       dispatchers.FlagScopeGlobal,
		},
		{
			Names:       []string{"--no-color"},
			Description: "Disable colored output",
			Scope:       dispatchers.FlagScopeGlobal,
		},
		{
			Names:       []string{"--no-pager"},
			Description: "Do not use pager for output",
			Scope:       dispatchers.FlagScopeGlobal,
		},
		{
			Names:       []string{"--pager"},
			ValueHint:   "<cmd>",
			Description: "Use specified pager for this command",
			Scope:       dispatchers.FlagScopeGlobal,
		},
	}

	SelectionFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--roots"},
			ValueHint:   "<p1,p2>",
			Description: "Search these root directories instead of the configured ones",
			Scope:       dispatchers.FlagScopeLocal,
		},
		{
			Names:       []string{"--full-path"},
			Description: "Present and return candidates as full paths",
			Scope:       dispatchers.FlagScopeLocal,
		},
		{
			Names:       []string{"--name-only"},
			Description: "Present and return candidates as bare directory names",
			Scope:       dispatchers.FlagScopeLocal,
		},
	}

	PickFlags = append([]dispatchers.FlagDescriptor{
		{
			Names:       []string{"--min-score"},
			ValueHint:   "<n>",
			Description: "Minimum similarity score (1-100) a query must reach",
			Scope:       dispatchers.FlagScopeLocal,
		},
	}, SelectionFlags...)

	ListFlags = append([]dispatchers.FlagDescriptor{
		{
			Names:       []string{"--count"},
			Description: "Print only the number of candidates",
			Scope:       dispatchers.FlagScopeLocal,
		},
	}, SelectionFlags...)

	ConfigUnsetFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--all"},
			Description: "Delete all the config key=value pairs",
			Scope:       dispatchers.FlagScopeLocal,
		},
	}
)
