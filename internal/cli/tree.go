package cli

import (
	"github.com/performer-tools/cli/internal/actions"
	configactions "github.com/performer-tools/cli/internal/actions/config"
	"github.com/performer-tools/cli/internal/actions/performers"
	rootactions "github.com/performer-tools/cli/internal/actions/roots"
	themeactions "github.com/performer-tools/cli/internal/actions/theme"
	"github.com/performer-tools/cli/internal/dispatchers"
)

func BuildTree() *dispatchers.DispatchNode {
	root := dispatchers.NewNode(
		"psel",
		nil,
		"Fuzzy-select performer directories",
		"psel <command> [flags]",
		RootFlags,
		nil,
		nil,
	)

	dispatchers.NewNode(
		"pick",
		root,
		"Resolve a performer by fuzzy query, or prompt interactively",
		"psel pick [query] [flags]",
		PickFlags,
		OptionalQueryArg,
		performers.Pick,
	).Category = dispatchers.CategorySelect

	dispatchers.NewNode(
		"list",
		root,
		"List every performer directory under the configured roots",
		"psel list [flags]",
		ListFlags,
		nil,
		performers.List,
	).Category = dispatchers.CategorySelect

	roots := dispatchers.NewNode(
		"roots",
		root,
		"Manage performer root directories",
		"psel roots <command>",
		nil,
		nil,
		nil,
	)
	roots.Category = dispatchers.CategoryRoots

	dispatchers.NewNode(
		"list",
		roots,
		"Show configured roots in search order",
		"psel roots list",
		nil,
		nil,
		rootactions.List,
	).Category = dispatchers.CategoryRoots

	dispatchers.NewNode(
		"add",
		roots,
		"Add a root directory",
		"psel roots add <path>",
		nil,
		RootPathArg,
		rootactions.Add,
	).Category = dispatchers.CategoryRoots

	dispatchers.NewNode(
		"remove",
		roots,
		"Remove a root directory",
		"psel roots remove <path>",
		nil,
		RootPathArg,
		rootactions.Remove,
	).Category = dispatchers.CategoryRoots

	config := dispatchers.NewNode(
		"config",
		root,
		"Manage configuration",
		"psel config <command>",
		nil,
		nil,
		nil,
	)
	config.Category = dispatchers.CategoryConfig

	dispatchers.NewNode(
		"get",
		config,
		"Get a config value",
		"psel config get <key>",
		nil,
		ConfigKeyArg,
		configactions.Get,
	).Category = dispatchers.CategoryConfig

	dispatchers.NewNode(
		"set",
		config,
		"Set a config value",
		"psel config set <key> <value>",
		nil,
		ConfigKeyValueArgs,
		configactions.Set,
	).Category = dispatchers.CategoryConfig

	dispatchers.NewNode(
		"unset",
		config,
		"Remove a config value",
		"psel config unset <key>",
		ConfigUnsetFlags,
		nil,
		configactions.Unset,
	).Category = dispatchers.CategoryConfig

	dispatchers.NewNode(
		"list",
		config,
		"Show all config values",
		"psel config list",
		nil,
		nil,
		configactions.List,
	).Category = dispatchers.CategoryConfig

	theme := dispatchers.NewNode(
		"theme",
		root,
		"Manage the color theme",
		"psel theme <command>",
		nil,
		nil,
		nil,
	)
	theme.Category = dispatchers.CategoryTheme

	dispatchers.NewNode(
		"list",
		theme,
		"List available themes",
		"psel theme list",
		nil,
		nil,
		themeactions.List,
	).Category = dispatchers.CategoryTheme

	dispatchers.NewNode(
		"set",
		theme,
		"Set the color theme",
		"psel theme set <name>",
		nil,
		ThemeNameArg,
		themeactions.Set,
	).Category = dispatchers.CategoryTheme

	dispatchers.NewNode(
		"version",
		root,
		"Show psel version",
		"psel version",
		nil,
		nil,
		actions.ShowVersion,
	).Category = dispatchers.CategoryInfo

	dispatchers.NewNode(
		"help",
		root,
		"Show help for a command",
		"psel help [command]",
		nil,
		nil,
		nil,
	)

	return root
}
