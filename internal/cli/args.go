package cli

import "github.com/performer-tools/cli/internal/dispatchers"

var (
	OptionalQueryArg = []dispatchers.ArgSpec{
		{
			Name:        "query",
			Description: "Performer name to resolve (opens the prompt when omitted)",
			Required:    false,
		},
	}

	RootPathArg = []dispatchers.ArgSpec{
		{
			Name:        "path",
			Description: "Performer root directory",
			Required:    true,
		},
	}

	ConfigKeyArg = []dispatchers.ArgSpec{
		{
			Name:        "key",
			Description: "Configuration key",
			Required:    true,
		},
	}

	ConfigKeyValueArgs = []dispatchers.ArgSpec{
		{
			Name:        "key",
			Description: "Configuration key",
			Required:    true,
		},
		{
			Name:        "value",
			Description: "Value to assign",
			Required:    true,
		},
	}

	ThemeNameArg = []dispatchers.ArgSpec{
		{
			Name:        "name",
			Description: "Theme name (e.g., default, mono-dark)",
			Required:    true,
		},
	}
)
