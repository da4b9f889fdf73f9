package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/performer-tools/cli/internal/dispatchers"
	"github.com/performer-tools/cli/internal/ui/style"
)

func List(args []string, flags *dispatchers.ParsedFlags) error {
	return list(args, flags, DefaultDeps())
}

func list(_ []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	current, _ := deps.Get("theme")
	if current == "" {
		current = "default"
	}
	current = style.ResolveThemeName(current)

	_, _ = deps.Println("Available themes (* = current)\n")

	for _, name := range deps.ThemeNames {
		marker := "  "
		if name == current {
			marker = style.Success("* ")
		}

		theme := deps.Themes[name]
		preview := renderColorPreview(theme)

		_, _ = deps.Printf("%s%-16s %s\n", marker, name, preview)
	}

	_, _ = deps.Println("\nUse 'psel theme set <name>' to change")

	return nil
}

// renderColorPreview returns colored text samples for a theme.
func renderColorPreview(cfg style.ColorConfig) string {
	colorize := func(text, color string) string {
		if color == "" || color == "bold" {
			return lipgloss.NewStyle().Bold(true).Render(text)
		}
		return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(text)
	}

	return colorize("success ", cfg.Success) +
		colorize("warning ", cfg.Warning) +
		colorize("error ", cfg.Error) +
		colorize("info ", cfg.Info) +
		colorize("muted ", cfg.Muted) +
		colorize("highlight", cfg.Highlight)
}
