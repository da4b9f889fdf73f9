package theme

import (
	"fmt"
	"strings"
	"testing"

	"github.com/performer-tools/cli/internal/ui/style"
	"github.com/performer-tools/cli/internal/usage"
	"github.com/stretchr/testify/require"
)

func captureDeps(out *strings.Builder) Deps {
	return Deps{
		Get: func(string) (string, bool) { return "", false },
		Printf: func(format string, a ...any) (int, error) {
			out.WriteString(fmt.Sprintf(format, a...))
			return 0, nil
		},
		Println: func(a ...any) (int, error) {
			out.WriteString(fmt.Sprintln(a...))
			return 0, nil
		},
		ThemeNames: style.ThemeNames,
		Themes:     style.Themes,
	}
}

func TestList_ShowsAllThemes(t *testing.T) {
	var out strings.Builder
	deps := captureDeps(&out)

	err := list(nil, nil, deps)

	require.NoError(t, err)
	for _, name := range style.ThemeNames {
		require.Contains(t, out.String(), name)
	}
}

func TestSet_WritesTheme(t *testing.T) {
	var out strings.Builder
	var written []string
	deps := captureDeps(&out)
	deps.ReadLines = func() ([]string, error) { return nil, nil }
	deps.Set = func(lines []string, key, value string) ([]string, bool) {
		return append(lines, key+"="+value), false
	}
	deps.WriteLines = func(lines []string) error {
		written = lines
		return nil
	}

	err := setTheme([]string{"mono"}, nil, deps)

	require.NoError(t, err)
	require.Equal(t, []string{"theme=mono"}, written)
	require.Contains(t, out.String(), "theme set to")
}

func TestSet_UnknownTheme(t *testing.T) {
	var out strings.Builder
	deps := captureDeps(&out)

	err := setTheme([]string{"neon"}, nil, deps)

	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown theme")
	require.Contains(t, out.String(), "available themes:")
}

func TestSet_MissingArgument(t *testing.T) {
	deps := Deps{}

	err := setTheme(nil, nil, deps)

	var ue *usage.Error
	require.ErrorAs(t, err, &ue)
	require.Equal(t, usage.ErrMissingArgument, ue.Kind)
}
